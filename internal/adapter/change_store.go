package adapter

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/tspaths/internal/model"
)

const changedFilePerm = 0o644

// ChangeStore persists rewritten files and exports change reports.
type ChangeStore interface {
	// Apply overwrites every changed file with its new text. Files are written
	// one at a time; a failure leaves earlier files rewritten.
	Apply(changes []m.FileChange) error
	// ExportReport writes the change list as YAML when path ends in .yaml or
	// .yml, and as JSON otherwise.
	ExportReport(path m.Path, changes []m.FileChange) error
}

type changeStore struct {
	fsAdapter SourceFSAdapter
}

// NewChangeStore constructs a ChangeStore implementation.
func NewChangeStore(fsAdapter SourceFSAdapter) ChangeStore {
	return &changeStore{fsAdapter: fsAdapter}
}

func (cs *changeStore) Apply(changes []m.FileChange) error {
	for _, change := range changes {
		if err := cs.fsAdapter.WriteFile(change.File, []byte(change.Text), changedFilePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", change.File, err)
		}
	}

	return nil
}

func (cs *changeStore) ExportReport(path m.Path, changes []m.FileChange) error {
	if changes == nil {
		changes = []m.FileChange{}
	}

	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(changes)
	default:
		data, err = json.MarshalIndent(changes, "", "  ")
		data = append(data, '\n')
	}

	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := cs.fsAdapter.WriteFile(path, data, changedFilePerm); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
