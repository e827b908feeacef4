package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tspaths/internal/adapter"
	m "github.com/mouse-blink/tspaths/internal/model"
)

func TestResolver_Resolve(t *testing.T) {
	p := newProject(t)
	resolver := NewResolver(p.fs)

	tests := []struct {
		name       string
		importPath string
		wantOK     bool
		wantFile   string
		wantType   m.ResolutionType
	}{
		{
			name:       "extension appended",
			importPath: "src/lib/utils",
			wantOK:     true,
			wantFile:   "src/lib/utils.ts",
			wantType:   m.ResolvedFile,
		},
		{
			name:       "js extension mapped to ts",
			importPath: "src/lib/utils.js",
			wantOK:     true,
			wantFile:   "src/lib/utils.ts",
			wantType:   m.ResolvedFile,
		},
		{
			name:       "exact file",
			importPath: "src/data.json",
			wantOK:     true,
			wantFile:   "src/data.json",
			wantType:   m.ResolvedFile,
		},
		{
			name:       "json appended",
			importPath: "src/data",
			wantOK:     true,
			wantFile:   "src/data.json",
			wantType:   m.ResolvedFile,
		},
		{
			name:       "tsx found for jsx import",
			importPath: "src/components/Button.jsx",
			wantOK:     true,
			wantFile:   "src/components/Button.tsx",
			wantType:   m.ResolvedFile,
		},
		{
			name:       "directory index",
			importPath: "src/components",
			wantOK:     true,
			wantFile:   "src/components/index.ts",
			wantType:   m.ResolvedDirectory,
		},
		{
			name:       "missing",
			importPath: "src/lib/missing",
		},
		{
			name:       "directory without index",
			importPath: "src/lib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			importPath := m.Path(p.path(tt.importPath))

			got, ok := resolver.Resolve(importPath)
			assert.Equal(t, tt.wantOK, ok)

			if !tt.wantOK {
				return
			}

			assert.Equal(t, m.Path(p.path(tt.wantFile)), got.File)
			assert.Equal(t, importPath, got.Imported)
			assert.Equal(t, tt.wantType, got.Type)
		})
	}
}

func TestResolver_ExtensionPriority(t *testing.T) {
	root := t.TempDir()
	for _, file := range []string{
		"both/x.js", "both/x.ts",
		"decl/y.ts", "decl/y.d.ts",
		"jsx/z.tsx", "jsx/z.jsx",
		"exact/w.js", "exact/w.ts",
		"index/index.ts", "index/index.js",
		"json/data.json", "json/data.ts",
	} {
		writeFile(t, filepath.Join(root, filepath.FromSlash(file)), "")
	}

	resolver := NewResolver(adapter.NewLocalSourceFSAdapter())

	tests := []struct {
		name       string
		importPath string
		wantFile   string
	}{
		{name: "js before ts", importPath: "both/x", wantFile: "both/x.js"},
		{name: "ts before d.ts", importPath: "decl/y", wantFile: "decl/y.ts"},
		{name: "jsx before tsx", importPath: "jsx/z", wantFile: "jsx/z.jsx"},
		{name: "exact path first", importPath: "exact/w.js", wantFile: "exact/w.js"},
		{name: "js index before ts index", importPath: "index", wantFile: "index/index.js"},
		{name: "ts before json", importPath: "json/data", wantFile: "json/data.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.Resolve(m.Path(filepath.Join(root, filepath.FromSlash(tt.importPath))))
			require.True(t, ok)
			assert.Equal(t, m.Path(filepath.Join(root, filepath.FromSlash(tt.wantFile))), got.File)
		})
	}
}
