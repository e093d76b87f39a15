package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const timestampFormat = "15:04:05.000"

var levelColors = map[logrus.Level]string{
	logrus.TraceLevel: "37", // light gray
	logrus.DebugLevel: "34", // blue
	logrus.InfoLevel:  "32", // green
	logrus.WarnLevel:  "33", // yellow
	logrus.ErrorLevel: "31", // red
	logrus.FatalLevel: "31",
	logrus.PanicLevel: "31",
}

// Formatter renders entries as "HH:MM:SS.mmm LEVEL message key=value",
// coloring the level name when the destination is a terminal.
type Formatter struct {
	colorize bool
}

// NewFormatter returns a Formatter for the given destination writer.
func NewFormatter(writer io.Writer) *Formatter {
	colorize := false
	if file, ok := writer.(*os.File); ok {
		colorize = isatty.IsTerminal(file.Fd())
	}

	return &Formatter{colorize: colorize}
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	level := fmt.Sprintf("%-5s", entry.Level.String())
	if f.colorize {
		level = fmt.Sprintf("\x1b[%sm%s\x1b[0m", levelColors[entry.Level], level)
	}

	fmt.Fprintf(&buf, "%s %s %s", entry.Time.Format(timestampFormat), level, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&buf, " %s=%v", key, entry.Data[key])
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
