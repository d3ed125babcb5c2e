//go:build !linux && !darwin && !freebsd && !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"shut is only supported on Linux, macOS, FreeBSD and Windows.\n\nIf you are seeing this message, you are attempting to build or run shut on a platform where the socket and process tables cannot be read.",
	)
	os.Exit(1)
}
