package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions lists the media extensions matched when none are configured.
var DefaultExtensions = []string{"mkv", "avi", "mpg", "mp4"}

// RecursiveDepth is the depth used by --recursive when no explicit depth is set.
const RecursiveDepth = 10

// Options controls a walk.
type Options struct {
	// MaxDepth bounds how far below root files are collected. Files directly
	// in root are at depth 1. Values below 1 are treated as 1.
	MaxDepth int
	// Extensions are matched case-sensitively, without the leading dot.
	Extensions []string
}

// Walk returns every matching file under root at depth 1..MaxDepth.
// Directories are descended but never returned. Unreadable entries are
// reported in the error slice and the walk continues past them.
//
// A root that is a symlink to a directory is followed; returned paths keep
// the root as given.
func Walk(root string, opts Options) ([]string, []error) {
	root = filepath.Clean(root)
	maxDepth := max(opts.MaxDepth, 1)
	exts := buildExtensionSet(opts.Extensions)

	var (
		files []string
		errs  []error
	)
	walkRoot, err := resolveRoot(root)
	if err != nil {
		return nil, []error{err}
	}
	walkErr := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			errs = append(errs, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		depth := depthOf(walkRoot, path)
		if d.IsDir() {
			// A directory at maxDepth can only hold files deeper than the limit.
			if depth >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if depth < 1 || depth > maxDepth {
			return nil
		}
		if !isCandidate(d) {
			return nil
		}
		if _, ok := exts[extension(d.Name())]; ok {
			files = append(files, rebase(walkRoot, root, path))
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	slices.Sort(files)
	return files, errs
}

// resolveRoot returns the directory to walk. WalkDir never descends through a
// symlinked root, so links are resolved up front.
func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// rebase re-expresses path, found under walkRoot, relative to root.
func rebase(walkRoot, root, path string) string {
	if walkRoot == root {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

func buildExtensionSet(extensions []string) map[string]struct{} {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return set
}

// extension returns the text after the final dot, or "" when there is none.
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return ext[1:]
}

func depthOf(root, path string) int {
	if path == root {
		return 0
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return -1
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// isCandidate accepts regular files and symlinks; links are not followed
// during the walk but the extractor may still read through them.
func isCandidate(d fs.DirEntry) bool {
	mode := d.Type()
	return mode.IsRegular() || mode&fs.ModeSymlink != 0
}
