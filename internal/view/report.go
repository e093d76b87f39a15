// Package view renders scan results. The machine-readable payload is built
// fully in memory and written to the output stream in a single write, so an
// external termination can never leave a truncated payload behind.
package view

import (
	"sort"

	"github.com/projectbridge/reposcan/internal/runner"
	"github.com/projectbridge/reposcan/internal/scan"
)

// Report is the top-level output artifact, matching the schema the
// downstream analysis pipeline already consumes.
type Report struct {
	Languages             []scan.LanguageEntry `json:"languages"`
	Frameworks            []string             `json:"frameworks"`
	ProjectStructures     []string             `json:"project_structures"`
	InfrastructureSignals []string             `json:"infrastructure_signals"`
	RepoCount             int                  `json:"repo_count"`
	Stats                 *Stats               `json:"stats,omitempty"`
}

// Stats are aggregate scan statistics, included only on request.
type Stats struct {
	FilesScanned int64   `json:"files_scanned"`
	ElapsedMS    float64 `json:"elapsed_ms"`
}

// NewReport merges the per-root contexts of a scan into one Report.
// Languages are merged at the byte level so multi-root percentages are
// exact; detected names are set unions, sorted for deterministic output.
func NewReport(result *runner.Result, withStats bool) *Report {
	var (
		tally      = scan.LanguageTally{}
		frameworks = map[string]struct{}{}
		structures = map[string]struct{}{}
		infra      = map[string]struct{}{}
	)

	for _, repoCtx := range result.Contexts {
		tally.Merge(repoCtx.LanguageBytes)

		for _, name := range repoCtx.Frameworks {
			frameworks[name] = struct{}{}
		}

		for _, name := range repoCtx.Structures {
			structures[name] = struct{}{}
		}

		for _, name := range repoCtx.Infrastructure {
			infra[name] = struct{}{}
		}
	}

	report := &Report{
		Languages:             scan.BuildLanguageList(tally),
		Frameworks:            sortedKeys(frameworks),
		ProjectStructures:     sortedKeys(structures),
		InfrastructureSignals: sortedKeys(infra),
		RepoCount:             len(result.Contexts),
	}

	if withStats {
		report.Stats = &Stats{
			FilesScanned: result.FilesScanned,
			ElapsedMS:    float64(result.Elapsed.Microseconds()) / 1000,
		}
	}

	return report
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
