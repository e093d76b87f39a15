package runner

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectbridge/reposcan/internal/errors"
	"github.com/projectbridge/reposcan/pkg/log"
)

func makeRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return root
}

func TestRunPreservesRootOrder(t *testing.T) {
	t.Parallel()

	roots := []string{
		makeRepo(t, map[string]string{"a.py": "x"}),
		makeRepo(t, map[string]string{"b.go": "package b"}),
		makeRepo(t, map[string]string{"c.rs": "fn main() {}"}),
	}

	result, err := New(log.New(io.Discard), 4).Run(context.Background(), roots)
	require.NoError(t, err)
	require.Len(t, result.Contexts, 3)

	for i, root := range roots {
		assert.Equal(t, filepath.Base(root), result.Contexts[i].Name)
	}
}

func TestRunSkipsInvalidRoots(t *testing.T) {
	t.Parallel()

	valid := makeRepo(t, map[string]string{"main.go": "package main"})
	missing := filepath.Join(t.TempDir(), "missing")

	result, err := New(log.New(io.Discard), 2).Run(context.Background(), []string{missing, valid})
	require.NoError(t, err)

	require.Len(t, result.Contexts, 1)
	assert.Equal(t, filepath.Base(valid), result.Contexts[0].Name)
	assert.Equal(t, []string{missing}, result.FailedRoots)
}

func TestRunAllRootsFailed(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	roots := []string{
		filepath.Join(base, "nope"),
		filepath.Join(base, "also-nope"),
	}

	_, err := New(log.New(io.Discard), 2).Run(context.Background(), roots)
	require.Error(t, err)

	var allFailed AllRootsFailedError
	require.True(t, errors.As(err, &allFailed))
	assert.Contains(t, allFailed.Error(), "no roots could be scanned")
}

func TestRunAggregatesFileCounts(t *testing.T) {
	t.Parallel()

	roots := []string{
		makeRepo(t, map[string]string{"a.py": "x", "b.py": "y"}),
		makeRepo(t, map[string]string{"c.js": "z"}),
	}

	result, err := New(log.New(io.Discard), 1).Run(context.Background(), roots)
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.FilesScanned)
	assert.Positive(t, result.Elapsed)
}

func TestRunSingleWorkerStillOrdered(t *testing.T) {
	t.Parallel()

	roots := []string{
		makeRepo(t, map[string]string{"one.go": "package one"}),
		makeRepo(t, map[string]string{"two.go": "package two"}),
	}

	result, err := New(log.New(io.Discard), 1).Run(context.Background(), roots)
	require.NoError(t, err)
	require.Len(t, result.Contexts, 2)
	assert.Equal(t, filepath.Base(roots[0]), result.Contexts[0].Name)
	assert.Equal(t, filepath.Base(roots[1]), result.Contexts[1].Name)
}

func TestRunDuplicateRoots(t *testing.T) {
	t.Parallel()

	root := makeRepo(t, map[string]string{"main.py": "pass"})

	result, err := New(log.New(io.Discard), 4).Run(context.Background(), []string{root, root})
	require.NoError(t, err)

	require.Len(t, result.Contexts, 2)
	assert.Equal(t, result.Contexts[0].Name, result.Contexts[1].Name)
	assert.Equal(t, int64(2), result.FilesScanned)
}
