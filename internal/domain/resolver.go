package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mouse-blink/tspaths/internal/adapter"
	m "github.com/mouse-blink/tspaths/internal/model"
)

// moduleExtensions lists the extensions tried for an import path, in priority order.
var moduleExtensions = []string{
	".js",
	".jsx",
	".ts",
	".tsx",
	".cjs",
	".mjs",
	".mdx",
	".d.ts",
	".json",
}

var (
	jsExtensionRegex       = regexp.MustCompile(`\.[^/.]*js[^/.]*$`)
	jsOrJSONExtensionRegex = regexp.MustCompile(`\.[^/.]*(js|json)[^/.]*$`)
)

// Resolver finds the file an absolute import path denotes.
type Resolver interface {
	Resolve(importPath m.Path) (m.Resolution, bool)
}

type resolver struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewResolver constructs a Resolver probing through fsAdapter.
func NewResolver(fsAdapter adapter.SourceFSAdapter) Resolver {
	return &resolver{fsAdapter: fsAdapter}
}

// Resolve tries, in order: the path itself, the path with a JS-family
// extension turned into its TS counterpart, the path with each module
// extension appended (after dropping a JS-family extension), and finally
// an index file inside the path when it is a directory.
func (r *resolver) Resolve(importPath m.Path) (m.Resolution, bool) {
	p := string(importPath)

	tsPath := jsExtensionRegex.ReplaceAllStringFunc(p, func(ext string) string {
		return strings.Replace(ext, "js", "ts", 1)
	})
	bare := jsOrJSONExtensionRegex.ReplaceAllString(p, "")

	candidates := make([]string, 0, len(moduleExtensions)+2)
	candidates = append(candidates, p, tsPath)

	for _, ext := range moduleExtensions {
		candidates = append(candidates, bare+ext)
	}

	for _, candidate := range candidates {
		if r.fsAdapter.IsFile(m.Path(candidate)) {
			return m.Resolution{
				File:     m.Path(candidate),
				Imported: importPath,
				Type:     m.ResolvedFile,
			}, true
		}
	}

	if !r.fsAdapter.IsDir(importPath) {
		return m.Resolution{}, false
	}

	for _, ext := range moduleExtensions {
		index := filepath.Join(p, "index"+ext)
		if r.fsAdapter.IsFile(m.Path(index)) {
			return m.Resolution{
				File:     m.Path(index),
				Imported: importPath,
				Type:     m.ResolvedDirectory,
			}, true
		}
	}

	return m.Resolution{}, false
}
