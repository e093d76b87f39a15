package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/projectbridge/reposcan/internal/manifest"
	"github.com/projectbridge/reposcan/pkg/log"
)

// subPackageManifests are manifest filenames whose presence inside a
// top-level directory marks it as an independently versioned sub-package.
var subPackageManifests = []string{
	"package.json",
	"go.mod",
	"Cargo.toml",
	"pyproject.toml",
	"setup.py",
	"composer.json",
	"Gemfile",
}

// Scanner runs the scanning pipeline for single roots.
type Scanner struct {
	logger log.Logger
}

// NewScanner creates a Scanner.
func NewScanner(logger log.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// ScanRoot scans one root directory and returns its RepositoryContext. The
// context is fully populated when returned and must not be mutated
// afterwards. The only error returned is an InvalidRootError; everything
// below that threshold is recovered at file or manifest granularity.
func (scanner *Scanner) ScanRoot(root string) (*RepositoryContext, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, InvalidRootError{Path: root, Err: err}
	}

	var (
		tally      = LanguageTally{}
		frameworks = SignalSet{}
		infra      = SignalSet{}
		repoCtx    = &RepositoryContext{Name: filepath.Base(abs)}
	)

	walker := NewWalker(abs, scanner.logger)

	err = walker.Walk(func(rec FileRecord) error {
		DetectIndicators(rec.RelPath, rec.IsDir, frameworks, infra)

		if rec.IsDir {
			return nil
		}

		repoCtx.FilesScanned++

		if !IsBinaryExt(rec.Ext) {
			tally.Record(rec.Ext, rec.Size)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	entries, warnings := manifest.DetectAll(abs)
	for _, entry := range entries {
		if entry.Category == CategoryInfrastructure {
			infra.Add(entry.Name, entry.Category)
		} else {
			frameworks.Add(entry.Name, entry.Category)
		}
	}

	for _, warning := range warnings {
		msg := fmt.Sprintf("failed to parse %s: %v", warning.Filename, warning.Err)
		repoCtx.Warnings = append(repoCtx.Warnings, msg)
		scanner.logger.WithField("manifest", warning.Filename).WithField("root", root).Warnf("malformed manifest skipped: %v", warning.Err)
	}

	topLevel, subPackages := scanner.inspectTopLevel(abs)
	repoCtx.Structures = DetectStructures(topLevel, subPackages)

	repoCtx.LanguageBytes = tally
	repoCtx.Languages = BuildLanguageList(tally)
	repoCtx.Frameworks = frameworks.Names()
	repoCtx.Infrastructure = infra.Names()

	return repoCtx, nil
}

// inspectTopLevel returns the top-level entry names of the root and the
// number of top-level directories carrying their own dependency manifest.
// Presence checks only.
func (scanner *Scanner) inspectTopLevel(root string) ([]string, int) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		scanner.logger.Debugf("unable to list top-level entries of %s: %v", root, err)
		return nil, 0
	}

	var (
		names       = make([]string, 0, len(dirEntries))
		subPackages int
	)

	for _, entry := range dirEntries {
		names = append(names, entry.Name())

		if !entry.IsDir() {
			continue
		}

		if _, excluded := defaultExcludes[entry.Name()]; excluded {
			continue
		}

		for _, filename := range subPackageManifests {
			if _, statErr := os.Stat(filepath.Join(root, entry.Name(), filename)); statErr == nil {
				subPackages++
				break
			}
		}
	}

	sort.Strings(names)

	return names, subPackages
}
