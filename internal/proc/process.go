package proc

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/pranshuparmar/shut/pkg/model"
)

// Candidate is a live process seen by one enumeration pass.
type Candidate interface {
	PID() model.ProcessID
	Name(ctx context.Context) (string, error)
	Cmdline(ctx context.Context) (string, error)
	// Terminate asks the process to stop: SIGTERM on unix,
	// TerminateProcess on Windows.
	Terminate(ctx context.Context) error
}

// ProcessLister enumerates running processes.
type ProcessLister func(ctx context.Context) ([]Candidate, error)

// ListProcesses returns every process gopsutil can open. Processes that vanish
// or cannot be inspected while listing are left out.
func ListProcesses(ctx context.Context) ([]Candidate, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	out := make([]Candidate, 0, len(procs))
	for _, p := range procs {
		out = append(out, psProcess{p})
	}
	return out, nil
}

type psProcess struct {
	p *process.Process
}

func (p psProcess) PID() model.ProcessID { return model.ProcessID(p.p.Pid) }

func (p psProcess) Name(ctx context.Context) (string, error) {
	return p.p.NameWithContext(ctx)
}

func (p psProcess) Cmdline(ctx context.Context) (string, error) {
	return p.p.CmdlineWithContext(ctx)
}

func (p psProcess) Terminate(ctx context.Context) error {
	if err := p.p.TerminateWithContext(ctx); err != nil {
		return fmt.Errorf("terminate PID %d failed: %w", p.p.Pid, err)
	}
	return nil
}
