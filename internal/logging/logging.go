package logging

import (
	"io"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/pranshuparmar/shut/internal/config"
)

// New returns a human-readable console logger at cfg.LogLevel, without
// timestamps. Messages below zerolog's global level are still dropped; main
// lowers it once at startup.
func New(w io.Writer, cfg config.Config) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !cfg.Color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	log := zerolog.New(cw).Level(cfg.LogLevel)

	for _, warning := range cfg.Warnings {
		log.Warn().Msg(warning)
	}
	return log
}

// IsTerminal reports whether w is a terminal. Anything without a file
// descriptor, such as a buffer, is not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
