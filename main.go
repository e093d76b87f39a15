package main

import (
	"os"

	"github.com/projectbridge/reposcan/cli"
	"github.com/projectbridge/reposcan/internal/errors"
	"github.com/projectbridge/reposcan/pkg/log"
)

// The main entrypoint for reposcan.
func main() {
	logger := log.New(os.Stderr)

	defer errors.Recover(checkForErrorsAndExit(logger))

	app := cli.NewApp(logger, os.Stdout)

	checkForErrorsAndExit(logger)(app.Run(os.Args))
}

// If there is an error, display it in the console and exit with a non-zero
// exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		exitCode := 1

		var exitCodeErr errors.ErrorWithExitCode
		if errors.As(err, &exitCodeErr) {
			exitCode = exitCodeErr.ExitCode
		}

		os.Exit(exitCode)
	}
}
