// Package cli defines the reposcan command surface.
package cli

import (
	"context"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/projectbridge/reposcan/internal/errors"
	"github.com/projectbridge/reposcan/internal/runner"
	"github.com/projectbridge/reposcan/internal/view"
	"github.com/projectbridge/reposcan/pkg/log"
)

// Exit codes of the scanner. The invoking process treats any non-zero code
// as scan failure and must not attempt to parse partial output.
const (
	// ExitCodeInvalidInvocation is returned for bad flags or missing roots.
	ExitCodeInvalidInvocation = 1

	// ExitCodeAllRootsFailed is returned when every supplied root was
	// inaccessible.
	ExitCodeAllRootsFailed = 2
)

const (
	flagFormat      = "format"
	flagStats       = "stats"
	flagLogLevel    = "log-level"
	flagParallelism = "parallelism"
)

// NewApp creates the reposcan CLI app. The machine-readable payload goes to
// stdout; every diagnostic goes through the logger, which writes to stderr.
func NewApp(logger log.Logger, stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "reposcan"
	app.Usage = "Scan local repositories and emit a technology-signal profile"
	app.UsageText = "reposcan [options] <dir> [<dir>...]"
	app.Writer = stdout
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    flagFormat,
			Usage:   "Output format: json, pretty or text",
			Value:   string(view.FormatJSON),
			EnvVars: []string{"REPOSCAN_FORMAT"},
		},
		&cli.BoolFlag{
			Name:  flagStats,
			Usage: "Include aggregate scan statistics in the output",
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level: trace, debug, info, warn or error",
			EnvVars: []string{"REPOSCAN_LOG_LEVEL"},
		},
		&cli.IntFlag{
			Name:  flagParallelism,
			Usage: "Maximum number of roots scanned concurrently, defaults to the number of CPU cores",
		},
	}
	app.Action = runScan(logger)

	return app
}

func runScan(logger log.Logger) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if level := ctx.String(flagLogLevel); level != "" {
			if err := logger.SetLevel(level); err != nil {
				return invalidInvocation(err)
			}
		}

		format, err := view.ParseFormat(ctx.String(flagFormat))
		if err != nil {
			return invalidInvocation(err)
		}

		roots := ctx.Args().Slice()
		if len(roots) == 0 {
			return invalidInvocation(errors.Errorf("at least one directory to scan must be supplied"))
		}

		result, err := runner.New(logger, ctx.Int(flagParallelism)).Run(context.Background(), roots)
		if err != nil {
			return errors.ErrorWithExitCode{Err: err, ExitCode: ExitCodeAllRootsFailed}
		}

		return view.NewWriter(ctx.App.Writer).Render(result, format, ctx.Bool(flagStats))
	}
}

func invalidInvocation(err error) error {
	return errors.ErrorWithExitCode{Err: err, ExitCode: ExitCodeInvalidInvocation}
}
