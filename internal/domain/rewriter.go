package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/mouse-blink/tspaths/internal/adapter"
	m "github.com/mouse-blink/tspaths/internal/model"
)

// importExportRegex matches require(...), require.resolve(...), dynamic
// import(...) and static import/export statements. Group 1 is the statement
// up to the opening quote, group 2 the specifier.
var importExportRegex = regexp.MustCompile(
	`((?:require\(|require\.resolve\(|import\()|(?:import|export)\s+(?:[\s\S]*?from\s+)?)['"]([^'"]*)['"]\)?`,
)

var declarationFileSuffixes = []string{".d.ts", ".d.mts", ".d.cts"}

// Rewriter replaces aliased import specifiers in compiled files.
type Rewriter interface {
	// ReplaceAliasPaths rewrites text, the contents of file, and returns the
	// new text with one TextChange per replaced specifier.
	ReplaceAliasPaths(file m.Path, text string, aliases []m.Alias, paths m.ProjectPaths) (string, []m.TextChange)
	// ReplaceAliasPathsInFile reads file and rewrites it. A missing file is a
	// FileNotFoundError.
	ReplaceAliasPathsInFile(file m.Path, aliases []m.Alias, paths m.ProjectPaths) (m.FileChange, bool, error)
}

type rewriter struct {
	fsAdapter adapter.SourceFSAdapter
	converter Converter
}

// NewRewriter constructs a Rewriter.
func NewRewriter(fsAdapter adapter.SourceFSAdapter, converter Converter) Rewriter {
	return &rewriter{fsAdapter: fsAdapter, converter: converter}
}

// ScanSpecifiers returns every import/export/require specifier in text, left
// to right, with offsets into text.
func ScanSpecifiers(file m.Path, text string) []m.ImportSpecifier {
	matches := importExportRegex.FindAllStringSubmatchIndex(text, -1)
	declaration := isDeclarationFile(file)

	specifiers := make([]m.ImportSpecifier, 0, len(matches))

	for _, match := range matches {
		statement := text[match[2]:match[3]]
		esModule := declaration ||
			strings.Contains(statement, "import") ||
			strings.Contains(statement, "export")

		specifiers = append(specifiers, m.ImportSpecifier{
			Value:    text[match[4]:match[5]],
			Start:    match[4],
			End:      match[5],
			ESModule: esModule,
		})
	}

	return specifiers
}

func (r *rewriter) ReplaceAliasPaths(
	file m.Path,
	text string,
	aliases []m.Alias,
	paths m.ProjectPaths,
) (string, []m.TextChange) {
	var (
		b       strings.Builder
		changes []m.TextChange
		last    int
	)

	for _, spec := range ScanSpecifiers(file, text) {
		replacement, ok := r.converter.AliasToRelativePath(spec.Value, file, aliases, paths, spec.ESModule)
		if !ok {
			continue
		}

		if changes == nil {
			b.Grow(len(text) + 64)
		}

		b.WriteString(text[last:spec.Start])
		b.WriteString(replacement)
		last = spec.End

		changes = append(changes, m.TextChange{Original: spec.Value, Replacement: replacement})
	}

	if len(changes) == 0 {
		return text, nil
	}

	b.WriteString(text[last:])

	return b.String(), changes
}

func (r *rewriter) ReplaceAliasPathsInFile(file m.Path, aliases []m.Alias, paths m.ProjectPaths) (m.FileChange, bool, error) {
	content, err := r.fsAdapter.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.FileChange{}, false, &FileNotFoundError{Step: StepGenerateChanges, Path: file}
		}

		return m.FileChange{}, false, fmt.Errorf("failed to read %s: %w", file, err)
	}

	original := string(content)
	text, changes := r.ReplaceAliasPaths(file, original, aliases, paths)

	change := m.FileChange{File: file, Text: text, Changes: changes}

	return change, text != original, nil
}

func isDeclarationFile(file m.Path) bool {
	for _, suffix := range declarationFileSuffixes {
		if strings.HasSuffix(string(file), suffix) {
			return true
		}
	}

	return false
}
