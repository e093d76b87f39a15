package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v6/plumbing/format/gitignore"

	"github.com/projectbridge/reposcan/internal/errors"
	"github.com/projectbridge/reposcan/pkg/log"
)

const ignoreFilename = ".gitignore"

// defaultExcludes are directory names skipped unconditionally: version
// control metadata, dependency caches and build output. Ignore-file rules
// cannot re-include them.
var defaultExcludes = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	".terraform":   {},
	"node_modules": {},
	"vendor":       {},
	"__pycache__":  {},
	"target":       {},
	"build":        {},
	"dist":         {},
}

// VisitFunc is called once per eligible entry, directories included.
type VisitFunc func(rec FileRecord) error

// Walker traverses a single root directory, honoring hierarchical
// ignore-file rules plus the built-in exclude list. Symlinks are never
// followed. Traversal order is the lexical order of filepath.WalkDir, so an
// unchanged filesystem always yields the same sequence.
type Walker struct {
	logger   log.Logger
	root     string
	patterns []gitignore.Pattern
}

// NewWalker creates a Walker for the given root directory.
func NewWalker(root string, logger log.Logger) *Walker {
	return &Walker{
		logger: logger,
		root:   root,
	}
}

// Walk traverses the root and calls fn for every eligible entry. A
// permission error on a single entry is logged and skipped; an inaccessible
// or nonexistent root fails the walk with an InvalidRootError.
func (walker *Walker) Walk(fn VisitFunc) error {
	info, err := os.Stat(walker.root)
	if err != nil {
		return errors.New(InvalidRootError{Path: walker.root, Err: err})
	}

	if !info.IsDir() {
		return errors.New(InvalidRootError{Path: walker.root})
	}

	walker.patterns = nil

	return filepath.WalkDir(walker.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == walker.root {
				return errors.New(InvalidRootError{Path: walker.root, Err: err})
			}

			walker.logger.Debugf("skipping unreadable entry %s: %v", path, err)

			return nil
		}

		rel, relErr := filepath.Rel(walker.root, path)
		if relErr != nil {
			return nil
		}

		if rel == "." {
			walker.loadIgnoreFile(nil)
			return nil
		}

		rel = filepath.ToSlash(rel)
		parts := strings.Split(rel, "/")

		if entry.IsDir() {
			if _, excluded := defaultExcludes[entry.Name()]; excluded {
				return filepath.SkipDir
			}

			if walker.ignored(parts, true) {
				return filepath.SkipDir
			}

			walker.loadIgnoreFile(parts)

			return fn(FileRecord{RelPath: rel, IsDir: true})
		}

		// Skips symlinks along with sockets and other irregular files.
		if !entry.Type().IsRegular() {
			return nil
		}

		if walker.ignored(parts, false) {
			return nil
		}

		fileInfo, infoErr := entry.Info()
		if infoErr != nil {
			walker.logger.Debugf("skipping unreadable entry %s: %v", path, infoErr)
			return nil
		}

		return fn(FileRecord{
			RelPath: rel,
			Size:    fileInfo.Size(),
			Ext:     fileExt(entry.Name()),
		})
	})
}

// loadIgnoreFile reads the ignore file of the directory identified by the
// given domain, relative to the root, and appends its patterns. Deeper
// patterns are appended later, and the matcher checks patterns in reverse
// order, so the nearest rule wins.
func (walker *Walker) loadIgnoreFile(domain []string) {
	path := filepath.Join(append([]string{walker.root}, domain...)...)

	data, err := os.ReadFile(filepath.Join(path, ignoreFilename))
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		walker.patterns = append(walker.patterns, gitignore.ParsePattern(line, domain))
	}
}

func (walker *Walker) ignored(parts []string, isDir bool) bool {
	if len(walker.patterns) == 0 {
		return false
	}

	return gitignore.NewMatcher(walker.patterns).Match(parts, isDir)
}

func fileExt(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}
