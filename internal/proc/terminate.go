package proc

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pranshuparmar/shut/internal/output"
	"github.com/pranshuparmar/shut/pkg/model"
)

// Report summarises one termination pass. It is informational only.
type Report struct {
	Matched []model.ProcessHandle
	Failed  []model.ProcessID
}

// Attempted is the number of matched processes; in dry-run mode none of
// them were signalled.
func (r Report) Attempted() int {
	return len(r.Matched)
}

type Terminator struct {
	List ProcessLister
	Log  zerolog.Logger
	// Width bounds the command line shown in log lines; 0 shows it in full.
	Width int
	// DryRun logs matches without terminating them.
	DryRun bool
}

func NewTerminator(log zerolog.Logger, width int, dryRun bool) *Terminator {
	return &Terminator{List: ListProcesses, Log: log, Width: width, DryRun: dryRun}
}

// Terminate sends a termination request to every running process whose id is
// in ids. Failures are logged per process and never stop the batch.
func (t *Terminator) Terminate(ctx context.Context, ids model.PIDSet) Report {
	var report Report
	if ids.Len() == 0 {
		return report
	}

	procs, err := t.List(ctx)
	if err != nil {
		t.Log.Debug().Err(err).Msg("process enumeration failed")
		return report
	}

	for _, p := range procs {
		pid := p.PID()
		if !ids.Contains(pid) {
			continue
		}

		h := model.ProcessHandle{PID: pid}
		if name, err := p.Name(ctx); err == nil {
			h.Name = name
		}
		if cmd, err := p.Cmdline(ctx); err == nil {
			h.Cmdline = cmd
		}
		report.Matched = append(report.Matched, h)

		if t.DryRun {
			t.Log.Info().Msgf("Would kill %s", output.DescribeProcess(h, t.Width))
			continue
		}

		t.Log.Info().Msgf("Killed %s", output.DescribeProcess(h, t.Width))
		if err := p.Terminate(ctx); err != nil {
			t.Log.Error().Msgf("Error: %v", err)
			report.Failed = append(report.Failed, pid)
		}
	}
	return report
}
