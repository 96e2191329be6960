package repo

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/jeanhaley32/specstory-stats/internal/constants"
)

// projectFileName is the display form used in diagnostics.
var projectFileName = path.Join(constants.ProjectDir, constants.ProjectFile)

// ProjectFile is the persisted SpecStory project metadata.
// Only the identity fields are read; everything else is ignored.
type ProjectFile struct {
	GitID       string
	WorkspaceID string
}

// ProjectFilePath returns the metadata file location for a project directory.
func ProjectFilePath(dir string) string {
	return filepath.Join(dir, constants.ProjectDir, constants.ProjectFile)
}

// ReadProjectFile loads the project metadata from dir.
// Returns (nil, nil) if the file does not exist.
func ReadProjectFile(dir string) (*ProjectFile, error) {
	p := ProjectFilePath(dir)

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &ConfigReadError{Name: projectFileName, Path: p, Err: err}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &JSONParseError{Name: projectFileName, Path: p, Err: err}
	}

	// Each field is checked on its own; a wrong type in one never hides the other.
	fields, _ := doc.(map[string]any)
	return &ProjectFile{
		GitID:       stringField(fields, "git_id"),
		WorkspaceID: stringField(fields, "workspace_id"),
	}, nil
}

// stringField returns fields[key] if it is a string, and "" otherwise.
func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// ProjectFileStep offers git_id, then workspace_id, from the project file.
func ProjectFileStep(dir string) (Candidate, error) {
	pf, err := ReadProjectFile(dir)
	if err != nil || pf == nil {
		return Candidate{}, err
	}

	if pf.GitID != "" {
		return Candidate{Value: pf.GitID, Source: SourceGitID}, nil
	}
	if pf.WorkspaceID != "" {
		return Candidate{Value: pf.WorkspaceID, Source: SourceWorkspaceID}, nil
	}
	return Candidate{}, nil
}
