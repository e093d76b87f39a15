package scan

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectbridge/reposcan/internal/errors"
	"github.com/projectbridge/reposcan/pkg/log"
)

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func walkPaths(t *testing.T, root string) []string {
	t.Helper()

	walker := NewWalker(root, log.New(io.Discard))

	var paths []string

	require.NoError(t, walker.Walk(func(rec FileRecord) error {
		paths = append(paths, rec.RelPath)
		return nil
	}))

	return paths
}

func TestWalkYieldsFilesAndDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "main.go", "package main\n")
	writeTestFile(t, root, "src/app.py", "print()\n")

	assert.ElementsMatch(t, []string{"main.go", "src", "src/app.py"}, walkPaths(t, root))
}

func TestWalkSkipsDefaultExcludes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "main.go", "package main\n")
	writeTestFile(t, root, ".git/config", "[core]\n")
	writeTestFile(t, root, "node_modules/react/index.js", "x\n")
	writeTestFile(t, root, "target/debug/app", "binary\n")
	writeTestFile(t, root, "src/vendor/lib.go", "package lib\n")

	assert.ElementsMatch(t, []string{"main.go", "src"}, walkPaths(t, root))
}

func TestWalkHonorsIgnoreFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, ".gitignore", "*.log\ngenerated/\n")
	writeTestFile(t, root, "app.go", "package app\n")
	writeTestFile(t, root, "debug.log", "noise\n")
	writeTestFile(t, root, "generated/out.go", "package out\n")

	assert.ElementsMatch(t, []string{".gitignore", "app.go"}, walkPaths(t, root))
}

func TestWalkHonorsNestedIgnoreFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "sub/.gitignore", "local.txt\n")
	writeTestFile(t, root, "sub/local.txt", "ignored\n")
	writeTestFile(t, root, "local.txt", "kept\n")

	paths := walkPaths(t, root)

	assert.Contains(t, paths, "local.txt")
	assert.NotContains(t, paths, "sub/local.txt")
}

func TestWalkNearestIgnoreRuleWins(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, ".gitignore", "*.txt\n")
	writeTestFile(t, root, "sub/.gitignore", "!keep.txt\n")
	writeTestFile(t, root, "sub/keep.txt", "kept\n")
	writeTestFile(t, root, "sub/drop.txt", "ignored\n")
	writeTestFile(t, root, "drop.txt", "ignored\n")

	paths := walkPaths(t, root)

	assert.Contains(t, paths, "sub/keep.txt")
	assert.NotContains(t, paths, "sub/drop.txt")
	assert.NotContains(t, paths, "drop.txt")
}

func TestWalkIgnoreRulesCannotReincludeExcludedDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, ".gitignore", "!node_modules\n")
	writeTestFile(t, root, "node_modules/react/index.js", "x\n")
	writeTestFile(t, root, "app.js", "x\n")

	paths := walkPaths(t, root)

	assert.Contains(t, paths, "app.js")
	assert.NotContains(t, paths, "node_modules/react/index.js")
}

func TestWalkIgnoreFileCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, ".gitignore", "# build output\n\n*.o\n")
	writeTestFile(t, root, "main.o", "obj\n")
	writeTestFile(t, root, "main.c", "int main;\n")

	paths := walkPaths(t, root)

	assert.Contains(t, paths, "main.c")
	assert.NotContains(t, paths, "main.o")
}

func TestWalkSkipsSymlinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	root := t.TempDir()
	writeTestFile(t, root, "real.txt", "data\n")
	require.NoError(t, os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")))

	paths := walkPaths(t, root)

	assert.Contains(t, paths, "real.txt")
	assert.NotContains(t, paths, "link.txt")
}

func TestWalkDeterministicOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "b.txt", "b")
	writeTestFile(t, root, "a.txt", "a")
	writeTestFile(t, root, "c/d.txt", "d")

	first := walkPaths(t, root)
	second := walkPaths(t, root)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a.txt", "b.txt", "c", "c/d.txt"}, first)
}

func TestWalkInvalidRoot(t *testing.T) {
	t.Parallel()

	walker := NewWalker(filepath.Join(t.TempDir(), "missing"), log.New(io.Discard))

	err := walker.Walk(func(rec FileRecord) error { return nil })
	require.Error(t, err)

	var invalidRoot InvalidRootError
	assert.True(t, errors.As(err, &invalidRoot))
}

func TestWalkRootIsFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "plain.txt", "data\n")

	walker := NewWalker(filepath.Join(root, "plain.txt"), log.New(io.Discard))

	err := walker.Walk(func(rec FileRecord) error { return nil })
	require.Error(t, err)

	var invalidRoot InvalidRootError
	assert.True(t, errors.As(err, &invalidRoot))
}

func TestWalkFileRecordFields(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, root, "app.py", "print('hi')\n")

	walker := NewWalker(root, log.New(io.Discard))

	var records []FileRecord

	require.NoError(t, walker.Walk(func(rec FileRecord) error {
		records = append(records, rec)
		return nil
	}))

	require.Len(t, records, 1)
	assert.Equal(t, "app.py", records[0].RelPath)
	assert.Equal(t, "py", records[0].Ext)
	assert.Equal(t, int64(12), records[0].Size)
	assert.False(t, records[0].IsDir)
}
