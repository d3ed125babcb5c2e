package model

// ProcessHandle describes a matched process for one termination pass.
// Name and Cmdline are empty when they could not be read.
type ProcessHandle struct {
	PID     ProcessID
	Name    string
	Cmdline string
}
