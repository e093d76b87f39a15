package view

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/projectbridge/reposcan/internal/errors"
	"github.com/projectbridge/reposcan/internal/runner"
	"github.com/projectbridge/reposcan/internal/scan"
)

// Format selects the output rendering.
type Format string

const (
	// FormatJSON renders the payload as compact JSON.
	FormatJSON Format = "json"

	// FormatPretty renders the payload as indented JSON.
	FormatPretty Format = "pretty"

	// FormatText renders a human-readable per-repository summary.
	FormatText Format = "text"
)

// ParseFormat parses a --format flag value.
func ParseFormat(str string) (Format, error) {
	switch Format(str) {
	case FormatJSON, FormatPretty, FormatText:
		return Format(str), nil
	}

	return "", errors.Errorf("invalid format %q, must be one of: json, pretty, text", str)
}

// Writer renders scan results to a single output stream.
type Writer struct {
	io.Writer
}

// NewWriter creates a Writer on top of the given stream.
func NewWriter(writer io.Writer) *Writer {
	return &Writer{Writer: writer}
}

// Render writes the result in the requested format. The payload is fully
// rendered before the first byte reaches the stream.
func (writer *Writer) Render(result *runner.Result, format Format, withStats bool) error {
	var (
		output []byte
		err    error
	)

	switch format {
	case FormatText:
		output = renderText(result, withStats)
	case FormatPretty:
		output, err = json.MarshalIndent(NewReport(result, withStats), "", "  ")
		output = append(output, '\n')
	default:
		output, err = json.Marshal(NewReport(result, withStats))
		output = append(output, '\n')
	}

	if err != nil {
		return errors.New(err)
	}

	if _, err := writer.Write(output); err != nil {
		return errors.New(err)
	}

	return nil
}

func renderText(result *runner.Result, withStats bool) []byte {
	var buf bytes.Buffer

	for _, repoCtx := range result.Contexts {
		fmt.Fprintf(&buf, "%s\n", repoCtx.Name)

		if len(repoCtx.Languages) > 0 {
			fmt.Fprintf(&buf, "  languages:      %s\n", languageLine(repoCtx.Languages))
		}

		if len(repoCtx.Frameworks) > 0 {
			fmt.Fprintf(&buf, "  frameworks:     %s\n", strings.Join(repoCtx.Frameworks, ", "))
		}

		if len(repoCtx.Structures) > 0 {
			fmt.Fprintf(&buf, "  structures:     %s\n", strings.Join(repoCtx.Structures, ", "))
		}

		if len(repoCtx.Infrastructure) > 0 {
			fmt.Fprintf(&buf, "  infrastructure: %s\n", strings.Join(repoCtx.Infrastructure, ", "))
		}

		for _, warning := range repoCtx.Warnings {
			fmt.Fprintf(&buf, "  warning:        %s\n", warning)
		}
	}

	if withStats {
		fmt.Fprintf(&buf, "scanned %d files across %d repositories in %s\n",
			result.FilesScanned, len(result.Contexts), result.Elapsed.Round(time.Millisecond))
	}

	return buf.Bytes()
}

func languageLine(languages []scan.LanguageEntry) string {
	parts := make([]string, 0, len(languages))
	for _, lang := range languages {
		parts = append(parts, fmt.Sprintf("%s %.1f%%", lang.Name, lang.Percentage))
	}

	return strings.Join(parts, ", ")
}
