//go:build linux || darwin || freebsd || windows

package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/pranshuparmar/shut/internal/app"
)

var (
	version   = ""
	commit    = ""
	buildDate = ""
)

// go build -ldflags "-X main.version=v0.1.0 -X main.commit=$(git rev-parse --short HEAD) -X 'main.buildDate=$(date +%Y-%m-%d)'" -o shut ./cmd/shut

func main() {
	// per-logger levels decide; the global one would otherwise drop trace
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	app.SetVersionBuildCommitString(version, commit, buildDate)
	os.Exit(app.Execute())
}
