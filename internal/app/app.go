// Package app holds the shut command line: argument handling, wiring of the
// pipeline and exit codes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pranshuparmar/shut/internal/config"
	"github.com/pranshuparmar/shut/internal/logging"
	"github.com/pranshuparmar/shut/internal/output"
	"github.com/pranshuparmar/shut/internal/pipeline"
	"github.com/pranshuparmar/shut/internal/target"
	"github.com/pranshuparmar/shut/pkg/model"
)

// Exit codes. ExitUsage follows sysexits.h EX_USAGE.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 64
)

var versionString = "dev"

// SetVersionBuildCommitString sets the string printed by --version.
func SetVersionBuildCommitString(version, commit, buildDate string) {
	if version == "" {
		version = "dev"
	}
	versionString = version
	if commit != "" {
		versionString += " (" + commit
		if buildDate != "" {
			versionString += ", " + buildDate
		}
		versionString += ")"
	}
}

// overridden in tests
var (
	lookupEnv   = os.LookupEnv
	newPipeline = func(cfg config.Config, log zerolog.Logger) runner {
		return pipeline.New(cfg, log)
	}
)

type runner interface {
	Run(ctx context.Context, port model.Port) pipeline.Outcome
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs shut with os.Args and returns the process exit code.
func Execute() int {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.FromEnv(lookupEnv)
	if !logging.IsTerminal(stderr) {
		cfg.Color = false
	}
	cmd := newRootCmd(&cfg, stderr)
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	// Flag parsing failed before the command ran.
	log := logging.New(stderr, cfg)
	log.Error().Msg(err.Error())
	log.Info().Msg(output.Usage(stderr, cfg.Color))
	return ExitUsage
}

func newRootCmd(cfg *config.Config, stderr io.Writer) *cobra.Command {
	var (
		logLevel string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:           "shut <port>",
		Short:         "Kill process(es) listening on <port>",
		Version:       versionString,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if logLevel != "" {
				cfg.SetLogLevel(logLevel)
			}
			if noColor {
				cfg.Color = false
			}
			log := logging.New(stderr, *cfg)

			switch {
			case len(args) == 0:
				log.Info().Msg(output.Usage(stderr, cfg.Color))
				return &exitError{code: ExitUsage}
			case len(args) > 1:
				log.Error().Msgf("Expected a single port, got %d arguments", len(args))
				return &exitError{code: ExitUsage}
			}

			port, err := target.ParsePort(args[0])
			if err != nil {
				log.Error().Msg(target.ErrInvalidPort.Error())
				return &exitError{code: ExitUsage}
			}

			switch newPipeline(*cfg, log).Run(cmd.Context(), port) {
			case pipeline.OutcomeTerminated, pipeline.OutcomeListed:
				return nil
			default:
				return &exitError{code: ExitFailure}
			}
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&cfg.ProbeTimeout, "timeout", cfg.ProbeTimeout, "how long to wait for the port to accept a connection")
	flags.StringVar(&logLevel, "log-level", "", "log verbosity: trace, debug, info, warn, error (overrides "+config.LogEnv+")")
	flags.BoolVarP(&cfg.AllMatches, "all", "a", cfg.AllMatches, "kill the owners of every socket bound to the port, not only the first one found")
	flags.BoolVarP(&cfg.DryRun, "dry-run", "n", cfg.DryRun, "list matching processes without killing them")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "maximum width of command lines in the output, 0 for no limit")

	return cmd
}
