// Package adapter contains the infrastructure adapters for the tspaths CLI.
package adapter

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	lru "github.com/hashicorp/golang-lru/v2"

	m "github.com/mouse-blink/tspaths/internal/model"
)

const defaultProbeCacheSize = 4096

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when resolving imports and rewriting compiled files. It hides
// direct `os` access so the resolution logic can be tested without touching
// the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// IsFile reports whether path names an existing regular file.
	IsFile(path m.Path) bool

	// IsDir reports whether path names an existing directory.
	IsDir(path m.Path) bool

	// Glob returns the regular files under root matching a doublestar pattern,
	// sorted and joined with root.
	Glob(root m.Path, pattern string) ([]m.Path, error)

	// ResetProbeCache forgets cached IsFile/IsDir answers.
	ResetProbeCache()
}

type probeKind uint8

const (
	probeMissing probeKind = iota
	probeFile
	probeDir
	probeOther
)

// LocalSourceFSAdapter backs SourceFSAdapter with the local disk. Existence
// probes are memoised in an LRU cache because the resolver asks about the same
// candidate paths for every file that imports them.
type LocalSourceFSAdapter struct {
	probes *lru.Cache[string, probeKind]
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	probes, err := lru.New[string, probeKind](defaultProbeCacheSize)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}

	return &LocalSourceFSAdapter{probes: probes}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to disk and drops the cached probe for path.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	a.probes.Remove(string(path))

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// IsFile reports whether path is an existing regular file.
func (a *LocalSourceFSAdapter) IsFile(path m.Path) bool {
	return a.probe(path) == probeFile
}

// IsDir reports whether path is an existing directory.
func (a *LocalSourceFSAdapter) IsDir(path m.Path) bool {
	return a.probe(path) == probeDir
}

// ResetProbeCache empties the probe cache. Called before every pipeline run so
// watch mode sees files produced by the compiler since the last run.
func (a *LocalSourceFSAdapter) ResetProbeCache() {
	a.probes.Purge()
}

func (a *LocalSourceFSAdapter) probe(path m.Path) probeKind {
	key := string(path)
	if kind, ok := a.probes.Get(key); ok {
		return kind
	}

	kind := probeMissing

	info, err := os.Stat(key)
	if err == nil {
		switch {
		case info.Mode().IsRegular():
			kind = probeFile
		case info.IsDir():
			kind = probeDir
		default:
			kind = probeOther
		}
	}

	a.probes.Add(key, kind)

	return kind
}

// Glob matches pattern against the tree rooted at root.
func (a *LocalSourceFSAdapter) Glob(root m.Path, pattern string) ([]m.Path, error) {
	rootStr := string(root)

	matches, err := doublestar.Glob(os.DirFS(rootStr), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(filepath.Join(rootStr, filepath.FromSlash(match))))
	}

	return paths, nil
}
