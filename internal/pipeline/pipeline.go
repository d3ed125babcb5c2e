// Package pipeline runs one shut invocation: probe the port, resolve its
// owners, terminate them.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pranshuparmar/shut/internal/config"
	"github.com/pranshuparmar/shut/internal/probe"
	procpkg "github.com/pranshuparmar/shut/internal/proc"
	"github.com/pranshuparmar/shut/pkg/model"
)

type Outcome int

const (
	// OutcomeTerminated means owners were found and a termination pass ran.
	OutcomeTerminated Outcome = iota
	// OutcomeListed is the dry-run counterpart of OutcomeTerminated.
	OutcomeListed
	OutcomeNotListening
	OutcomeNoProcess
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTerminated:
		return "terminated"
	case OutcomeListed:
		return "listed"
	case OutcomeNotListening:
		return "not listening"
	case OutcomeNoProcess:
		return "no process"
	}
	return "unknown"
}

type Prober interface {
	IsOpen(ctx context.Context, port model.Port) bool
}

type Resolver interface {
	Resolve(ctx context.Context, port model.Port) model.PIDSet
}

type Terminator interface {
	Terminate(ctx context.Context, ids model.PIDSet) procpkg.Report
}

type Pipeline struct {
	Probe     Prober
	Sockets   Resolver
	Terminate Terminator
	DryRun    bool
	Log       zerolog.Logger
}

// New wires the host implementations of every step.
func New(cfg config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		Probe:     probe.New(cfg.ProbeTimeout),
		Sockets:   procpkg.NewSocketTable(log, cfg.AllMatches),
		Terminate: procpkg.NewTerminator(log, cfg.Width, cfg.DryRun),
		DryRun:    cfg.DryRun,
		Log:       log,
	}
}

func (p *Pipeline) Run(ctx context.Context, port model.Port) Outcome {
	p.Log.Debug().Msgf("Trying to shut port %d", port)

	if !p.Probe.IsOpen(ctx, port) {
		p.Log.Info().Msgf("Port %d is not open", port)
		return OutcomeNotListening
	}
	p.Log.Debug().Msgf("Port %d is open", port)

	ids := p.Sockets.Resolve(ctx, port)
	if ids.Len() == 0 {
		p.Log.Error().Msg("No processes found")
		return OutcomeNoProcess
	}
	p.Log.Info().Msgf("Process(es) found: %s", ids)

	done := make(chan procpkg.Report, 1)
	go func() {
		done <- p.Terminate.Terminate(ctx, ids)
	}()
	report := <-done

	p.Log.Debug().
		Int("matched", report.Attempted()).
		Int("failed", len(report.Failed)).
		Msg("termination pass finished")

	if p.DryRun {
		return OutcomeListed
	}
	return OutcomeTerminated
}
