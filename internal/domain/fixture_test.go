package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tspaths/internal/adapter"
	m "github.com/mouse-blink/tspaths/internal/model"
)

// project is a compiled TypeScript project laid out on disk:
//
//	src/lib/utils.ts           dist/lib/utils.js
//	src/components/index.ts    dist/components/index.js
//	src/components/Button.tsx  dist/components/Button.js
//	src/data.json
//	src/app.ts                 dist/app.js
type project struct {
	root    string
	paths   m.ProjectPaths
	aliases []m.Alias
	fs      *adapter.LocalSourceFSAdapter
}

func newProject(t *testing.T) project {
	t.Helper()

	root := t.TempDir()

	for _, file := range []string{
		"src/lib/utils.ts",
		"src/components/index.ts",
		"src/components/Button.tsx",
		"src/data.json",
		"src/app.ts",
		"dist/lib/utils.js",
		"dist/components/index.js",
		"dist/components/Button.js",
		"dist/app.js",
	} {
		writeFile(t, filepath.Join(root, filepath.FromSlash(file)), "")
	}

	src := filepath.Join(root, "src")

	return project{
		root: root,
		paths: m.ProjectPaths{
			BasePath:   m.Path(root),
			ConfigPath: m.Path(root),
			ConfigFile: m.Path(filepath.Join(root, "tsconfig.json")),
			Source:     m.Path(src),
			Target:     m.Path(filepath.Join(root, "dist")),
		},
		aliases: []m.Alias{
			{Key: "@/*", Prefix: "@/", Paths: []m.Path{m.Path(src)}},
			{Key: "@lib/*", Prefix: "@lib/", Paths: []m.Path{m.Path(filepath.Join(root, "vendor")), m.Path(filepath.Join(src, "lib"))}},
		},
		fs: adapter.NewLocalSourceFSAdapter(),
	}
}

func (p project) path(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

func (p project) converter() Converter {
	return NewConverter(p.fs, NewResolver(p.fs))
}

func (p project) rewriter() Rewriter {
	return NewRewriter(p.fs, p.converter())
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
