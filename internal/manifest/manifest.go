// Package manifest parses dependency manifests and maps declared dependency
// identifiers through curated per-ecosystem lookup tables to canonical
// tool/framework names.
//
// Each parser is triggered only by the presence of its specific manifest
// filename. Unmapped identifiers are dropped silently: canonical names are
// a fixed vocabulary shared with the downstream consumer, and the scanner
// must never invent ad-hoc names. A malformed manifest contributes nothing
// and is surfaced as a warning, never as a scan abort.
package manifest

import (
	"os"
	"path/filepath"
)

// Entry is a canonical name contributed by a manifest dependency, with the
// category routing it into the output.
type Entry struct {
	Name     string
	Category string
}

// Parser extracts canonical entries from one manifest format.
type Parser interface {
	// Filename is the literal manifest filename that triggers the parser.
	Filename() string

	// Parse extracts declared dependency identifiers from the manifest
	// content and maps them to canonical entries.
	Parse(data []byte) ([]Entry, error)
}

// ParseWarning records a manifest that failed to parse. The failure is a
// per-repository warning, not an error: the scan continues.
type ParseWarning struct {
	Filename string
	Err      error
}

// Parsers returns all manifest parsers in a fixed order.
func Parsers() []Parser {
	return []Parser{
		npmParser{},
		pipParser{},
		pyprojectParser{},
		cargoParser{},
		gemfileParser{},
		gomodParser{},
		composerParser{},
	}
}

// DetectAll runs every parser whose manifest file is present in dir and
// returns the union of their contributions plus any parse warnings.
func DetectAll(dir string) ([]Entry, []ParseWarning) {
	var (
		entries  []Entry
		warnings []ParseWarning
	)

	for _, parser := range Parsers() {
		data, err := os.ReadFile(filepath.Join(dir, parser.Filename()))
		if err != nil {
			if !os.IsNotExist(err) {
				warnings = append(warnings, ParseWarning{Filename: parser.Filename(), Err: err})
			}

			continue
		}

		parsed, err := parser.Parse(data)
		if err != nil {
			warnings = append(warnings, ParseWarning{Filename: parser.Filename(), Err: err})
			continue
		}

		entries = append(entries, parsed...)
	}

	return entries, warnings
}

// mapIdentifiers looks up raw identifiers in an ecosystem table, dropping
// unmapped ones and deduplicating by canonical name.
func mapIdentifiers(identifiers []string, table map[string]Entry) []Entry {
	var (
		entries []Entry
		seen    = map[string]struct{}{}
	)

	for _, id := range identifiers {
		entry, ok := table[id]
		if !ok {
			continue
		}

		if _, dup := seen[entry.Name]; dup {
			continue
		}

		seen[entry.Name] = struct{}{}
		entries = append(entries, entry)
	}

	return entries
}
