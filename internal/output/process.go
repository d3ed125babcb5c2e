package output

import (
	"fmt"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/pranshuparmar/shut/pkg/model"
)

// DescribeProcess renders a process for log lines, e.g.
// `"nginx" (PID: 42) nginx: master process`. The command line is cut to
// width cells with a trailing ellipsis; width <= 0 disables the cut.
func DescribeProcess(h model.ProcessHandle, width int) string {
	s := fmt.Sprintf("(PID: %d)", h.PID)
	if h.Name != "" {
		s = fmt.Sprintf("%q %s", h.Name, s)
	}
	if h.Cmdline == "" {
		return s
	}
	return s + " " + truncateCmdline(h.Cmdline, width)
}

func truncateCmdline(cmd string, width int) string {
	if width <= 0 || ansi.PrintableRuneWidth(cmd) <= width {
		return cmd
	}
	return truncate.StringWithTail(cmd, uint(width), "…")
}
