package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"viewd/internal/errors"
	"viewd/internal/scan"
	"viewd/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerate(t *testing.T) {
	t.Run("depth-first order with nested directories", func(t *testing.T) {
		root := t.TempDir()
		testutils.CreateTestFilesWithContent(t, root, map[string]string{
			"a.txt":              "a",
			"b/c.txt":            "c",
			"b/d/e.txt":          "e",
			"f.txt":              "f",
			"z_last/deep/g.dat": "g",
		})

		files, err := scan.Enumerate(root)
		require.NoError(t, err)

		expected := []string{
			filepath.Join(root, "a.txt"),
			filepath.Join(root, "b", "c.txt"),
			filepath.Join(root, "b", "d", "e.txt"),
			filepath.Join(root, "f.txt"),
			filepath.Join(root, "z_last", "deep", "g.dat"),
		}
		assert.Equal(t, expected, files)
	})

	t.Run("directories themselves are never listed", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "only", "dirs", "here"), 0o755))

		files, err := scan.Enumerate(root)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("each file appears exactly once", func(t *testing.T) {
		root := t.TempDir()
		testutils.CreateTestFilesWithContent(t, root, map[string]string{
			"x/one.txt": "1",
			"y/one.txt": "1",
		})

		files, err := scan.Enumerate(root)
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.NotEqual(t, files[0], files[1])
	})

	t.Run("missing root fails with not found", func(t *testing.T) {
		_, err := scan.Enumerate(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.True(t, errors.IsFileNotFound(err))
	})

	t.Run("root that is a plain file fails", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "plain.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := scan.Enumerate(file)
		require.Error(t, err)
		assert.False(t, errors.IsFileNotFound(err))
	})

	t.Run("symlinked directory is not followed", func(t *testing.T) {
		root := t.TempDir()
		outside := t.TempDir()
		testutils.CreateTestFilesWithContent(t, outside, map[string]string{"hidden.txt": "x"})

		link := filepath.Join(root, "link")
		if err := os.Symlink(outside, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		files, err := scan.Enumerate(root)
		require.NoError(t, err)
		assert.Equal(t, []string{link}, files)
	})
}

func TestFilterGlob(t *testing.T) {
	paths := []string{
		"/data/one.jpg",
		"/data/two.png",
		"/data/notes.txt",
		"/data/sub/three.jpeg",
	}

	t.Run("empty pattern list keeps everything", func(t *testing.T) {
		kept, err := scan.FilterGlob(paths, nil)
		require.NoError(t, err)
		assert.Equal(t, paths, kept)
	})

	t.Run("matches against base names", func(t *testing.T) {
		kept, err := scan.FilterGlob(paths, []string{"*.jpg", "*.jpeg"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/data/one.jpg", "/data/sub/three.jpeg"}, kept)
	})

	t.Run("invalid pattern is rejected", func(t *testing.T) {
		_, err := scan.FilterGlob(paths, []string{"[bad"})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})
}
