// Package log provides the leveled logger used across reposcan.
//
// It wraps logrus to keep full control over levels and formatting, and to
// guarantee that every diagnostic line goes to stderr: stdout is reserved
// for the machine-readable scan payload.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the leveled logger interface passed through the scan pipeline.
type Logger interface {
	// Trace logs a message at level Trace.
	Trace(args ...any)

	// Debug logs a message at level Debug.
	Debug(args ...any)

	// Info logs a message at level Info.
	Info(args ...any)

	// Warn logs a message at level Warn.
	Warn(args ...any)

	// Error logs a message at level Error.
	Error(args ...any)

	// Tracef logs a formatted message at level Trace.
	Tracef(format string, args ...any)

	// Debugf logs a formatted message at level Debug.
	Debugf(format string, args ...any)

	// Infof logs a formatted message at level Info.
	Infof(format string, args ...any)

	// Warnf logs a formatted message at level Warn.
	Warnf(format string, args ...any)

	// Errorf logs a formatted message at level Error.
	Errorf(format string, args ...any)

	// WithField adds a single field to the Logger. The field is added to the
	// returned instance only.
	WithField(key string, value any) Logger

	// WithError adds an error as a single field to the Logger. The error is
	// added to the returned instance only.
	WithError(err error) Logger

	// SetLevel parses and sets the log level.
	SetLevel(str string) error
}

type logger struct {
	*logrus.Entry
}

// New returns a new Logger instance that writes to the given writer.
// The default level is Warn so that scans stay quiet unless something
// noteworthy happens.
func New(writer io.Writer) Logger {
	parent := logrus.New()
	parent.SetOutput(writer)
	parent.SetLevel(logrus.WarnLevel)
	parent.SetFormatter(NewFormatter(writer))

	return &logger{Entry: logrus.NewEntry(parent)}
}

// Default returns a Logger that writes to stderr.
func Default() Logger {
	return New(os.Stderr)
}

func (l *logger) WithField(key string, value any) Logger {
	return &logger{Entry: l.Entry.WithField(key, value)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

func (l *logger) SetLevel(str string) error {
	level, err := logrus.ParseLevel(str)
	if err != nil {
		return err
	}

	l.Logger.SetLevel(level)

	return nil
}
