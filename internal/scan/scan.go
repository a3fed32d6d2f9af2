// Package scan lists candidate files for browsing. It walks a directory
// tree depth-first and returns every regular file it can reach, without
// looking at file contents.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"

	"viewd/internal/errors"
	"viewd/internal/log"

	"github.com/gobwas/glob"
)

// Enumerate walks root depth-first and returns the full relative path of
// every non-directory entry, in the order the directory entries were
// reported. Directories themselves are never included.
//
// Failing to open root is the only fatal error. Unreadable
// subdirectories are logged and skipped.
func Enumerate(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, classifyRootError(root, err)
	}

	var files []string
	walk(root, entries, &files)
	return files, nil
}

func walk(dir string, entries []fs.DirEntry, files *[]string) {
	for _, ent := range entries {
		path := filepath.Join(dir, ent.Name())
		if isDir(path, ent) {
			sub, err := os.ReadDir(path)
			if err != nil {
				log.Warnf("skipping unreadable directory %s: %v", path, err)
				continue
			}
			walk(path, sub, files)
		} else {
			*files = append(*files, path)
		}
	}
}

// isDir classifies a directory entry. The d_type hint is not populated
// on all filesystems, so anything not positively identified falls back
// to an lstat. Symlinks are classified by the link itself, not its
// target, so symlinked directories are treated as plain files.
func isDir(path string, ent fs.DirEntry) bool {
	if ent.IsDir() {
		return true
	}
	if ent.Type().IsRegular() {
		return false
	}
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func classifyRootError(root string, err error) error {
	switch {
	case os.IsNotExist(err):
		return errors.NewFileError("directory not found", root, errors.FileNotFound, err)
	case os.IsPermission(err):
		return errors.NewFileError("directory not readable", root, errors.FileAccessDenied, err)
	default:
		return errors.NewFileError("cannot open directory", root, errors.InvalidPath, err)
	}
}

// FilterGlob narrows paths to those whose base name matches at least one
// of the given glob patterns. An empty pattern list keeps everything.
func FilterGlob(paths []string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return paths, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError("invalid scan pattern", p, errors.InvalidConfig, err)
		}
		globs = append(globs, g)
	}

	var kept []string
	for _, path := range paths {
		name := filepath.Base(path)
		for _, g := range globs {
			if g.Match(name) {
				kept = append(kept, path)
				break
			}
		}
	}
	return kept, nil
}
