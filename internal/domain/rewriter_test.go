package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tspaths/internal/model"
)

const appSource = `import { a } from "@lib/utils";
export * from '@/components';
const b = require("@lib/utils");
const c = import("@/components/Button");
import React from "react";
import { ok } from "./lib/utils.js";
`

const appRewritten = `import { a } from "./lib/utils.js";
export * from './components/index.js';
const b = require("./lib/utils");
const c = import("./components/Button.js");
import React from "react";
import { ok } from "./lib/utils.js";
`

func TestScanSpecifiers(t *testing.T) {
	text := `import x from "@a/x";
const y = require('@a/y');
export { z } from "./z";
require.resolve("w");
`

	got := ScanSpecifiers("dist/index.js", text)
	require.Len(t, got, 4)

	wantValues := []string{"@a/x", "@a/y", "./z", "w"}
	wantESM := []bool{true, false, true, false}

	for i, spec := range got {
		assert.Equal(t, wantValues[i], spec.Value)
		assert.Equal(t, wantValues[i], text[spec.Start:spec.End], "offsets of %q", spec.Value)
		assert.Equal(t, wantESM[i], spec.ESModule, "ESModule of %q", spec.Value)
	}

	t.Run("declaration files are always ES modules", func(t *testing.T) {
		specs := ScanSpecifiers("dist/index.d.ts", `const y = require("@a/y");`)
		require.Len(t, specs, 1)
		assert.True(t, specs[0].ESModule)
	})
}

func TestRewriter_ReplaceAliasPaths(t *testing.T) {
	p := newProject(t)
	rewriter := p.rewriter()
	file := m.Path(p.path("dist/app.js"))

	text, changes := rewriter.ReplaceAliasPaths(file, appSource, p.aliases, p.paths)

	assert.Equal(t, appRewritten, text)
	assert.Equal(t, []m.TextChange{
		{Original: "@lib/utils", Replacement: "./lib/utils.js"},
		{Original: "@/components", Replacement: "./components/index.js"},
		{Original: "@lib/utils", Replacement: "./lib/utils"},
		{Original: "@/components/Button", Replacement: "./components/Button.js"},
	}, changes)

	t.Run("second pass is a no-op", func(t *testing.T) {
		again, changes := rewriter.ReplaceAliasPaths(file, text, p.aliases, p.paths)
		assert.Equal(t, text, again)
		assert.Empty(t, changes)
	})

	t.Run("text without matches is returned as is", func(t *testing.T) {
		plain := "console.log('import');\n"
		got, changes := rewriter.ReplaceAliasPaths(file, plain, p.aliases, p.paths)
		assert.Equal(t, plain, got)
		assert.Nil(t, changes)
	})
}

func TestRewriter_ReplaceAliasPathsInFile(t *testing.T) {
	p := newProject(t)
	rewriter := p.rewriter()

	t.Run("changed file", func(t *testing.T) {
		file := m.Path(p.path("dist/app.js"))
		writeFile(t, string(file), appSource)

		change, changed, err := rewriter.ReplaceAliasPathsInFile(file, p.aliases, p.paths)
		require.NoError(t, err)

		assert.True(t, changed)
		assert.Equal(t, file, change.File)
		assert.Equal(t, appRewritten, change.Text)
		assert.Len(t, change.Changes, 4)
	})

	t.Run("unchanged file", func(t *testing.T) {
		file := m.Path(p.path("dist/components/index.js"))
		writeFile(t, string(file), `export { x } from "../lib/utils.js";`)

		_, changed, err := rewriter.ReplaceAliasPathsInFile(file, p.aliases, p.paths)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("missing file", func(t *testing.T) {
		file := m.Path(p.path("dist/missing.js"))

		_, _, err := rewriter.ReplaceAliasPathsInFile(file, p.aliases, p.paths)
		require.Error(t, err)

		var notFound *FileNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, file, notFound.Path)
		assert.Equal(t, StepGenerateChanges, notFound.Step)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}
