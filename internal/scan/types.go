// Package scan implements the per-repository scanning pipeline: an
// ignore-aware filesystem walker feeding a byte-volume language classifier
// and a path-indicator detector, aggregated into one RepositoryContext per
// scanned root.
package scan

import "sort"

// FileRecord describes one entry yielded by the walker. It is produced once
// per traversal visit and consumed immediately, never retained.
type FileRecord struct {
	// RelPath is the slash-separated path relative to the scan root.
	RelPath string

	// Size is the file size in bytes. Zero for directories.
	Size int64

	// Ext is the file extension without the leading dot, empty when absent.
	Ext string

	// IsDir reports whether the record refers to a directory.
	IsDir bool
}

// LanguageEntry is one language's share of the classified byte volume.
type LanguageEntry struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Signal is a detected tool or framework: a canonical name from the
// controlled vocabulary shared with the downstream consumer, plus the
// category that routes it into the output.
type Signal struct {
	Name     string
	Category string
}

// SignalSet accumulates detected signals unique by canonical name. More
// matching evidence for an already-detected name never removes it and never
// changes its representation.
type SignalSet map[string]string

// Add records a signal. The first category registered for a name wins.
func (s SignalSet) Add(name, category string) {
	if _, ok := s[name]; !ok {
		s[name] = category
	}
}

// Names returns the canonical names in the set, sorted.
func (s SignalSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// RepositoryContext is the aggregate for one scanned root. It is created at
// the start of scanning and must not be mutated once the scan returns it.
type RepositoryContext struct {
	// Name is the repository label: the basename of the scanned root.
	Name string

	// Languages lists language shares sorted by descending percentage.
	Languages []LanguageEntry

	// LanguageBytes is the raw per-language byte tally, kept so multi-root
	// reports can merge languages exactly rather than averaging percentages.
	LanguageBytes LanguageTally

	// Frameworks are detected framework/tool/language signals, sorted by name.
	Frameworks []string

	// Structures are project-structure flags derived from directory shape.
	Structures []string

	// Infrastructure are detected infrastructure signals, sorted by name.
	Infrastructure []string

	// Warnings collects per-repository recoverable problems, such as
	// manifests that failed to parse.
	Warnings []string

	// FilesScanned is the number of regular files the walker yielded.
	FilesScanned int
}
