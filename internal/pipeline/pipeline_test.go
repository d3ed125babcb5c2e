package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	procpkg "github.com/pranshuparmar/shut/internal/proc"
	"github.com/pranshuparmar/shut/pkg/model"
)

type stubProbe struct {
	open  bool
	ports []model.Port
}

func (s *stubProbe) IsOpen(ctx context.Context, port model.Port) bool {
	s.ports = append(s.ports, port)
	return s.open
}

type stubResolver struct {
	ids   model.PIDSet
	calls int
}

func (s *stubResolver) Resolve(ctx context.Context, port model.Port) model.PIDSet {
	s.calls++
	return s.ids
}

type stubTerminator struct {
	got   [][]model.ProcessID
	calls int
}

func (s *stubTerminator) Terminate(ctx context.Context, ids model.PIDSet) procpkg.Report {
	s.calls++
	s.got = append(s.got, ids.Slice())
	return procpkg.Report{}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		open      bool
		ids       model.PIDSet
		dryRun    bool
		want      Outcome
		wantLog   string
		wantNoLog string
		resolves  int
		kills     int
	}{
		{
			name:      "port closed",
			open:      false,
			want:      OutcomeNotListening,
			wantLog:   "Port 6969 is not open",
			wantNoLog: "Process(es) found",
		},
		{
			name:      "open without owners",
			open:      true,
			want:      OutcomeNoProcess,
			wantLog:   "No processes found",
			wantNoLog: "Process(es) found",
			resolves:  1,
		},
		{
			name:     "open with owners",
			open:     true,
			ids:      model.NewPIDSet(41, 42),
			want:     OutcomeTerminated,
			wantLog:  "Process(es) found: [41, 42]",
			resolves: 1,
			kills:    1,
		},
		{
			name:     "dry run",
			open:     true,
			ids:      model.NewPIDSet(7),
			dryRun:   true,
			want:     OutcomeListed,
			wantLog:  "Process(es) found: [7]",
			resolves: 1,
			kills:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pr := &stubProbe{open: tt.open}
			res := &stubResolver{ids: tt.ids}
			term := &stubTerminator{}
			p := &Pipeline{
				Probe:     pr,
				Sockets:   res,
				Terminate: term,
				DryRun:    tt.dryRun,
				Log:       zerolog.New(&buf),
			}

			got := p.Run(context.Background(), 6969)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []model.Port{6969}, pr.ports)
			assert.Equal(t, tt.resolves, res.calls)
			assert.Equal(t, tt.kills, term.calls)
			assert.Contains(t, buf.String(), tt.wantLog)
			if tt.wantNoLog != "" {
				assert.NotContains(t, buf.String(), tt.wantNoLog)
			}
			if tt.kills > 0 {
				assert.Equal(t, tt.ids.Slice(), term.got[0])
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "terminated", OutcomeTerminated.String())
	assert.Equal(t, "not listening", OutcomeNotListening.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}
