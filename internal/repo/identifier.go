package repo

import (
	"errors"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Source names the step that produced an identity.
type Source string

const (
	SourceGitID       Source = "git_id"
	SourceWorkspaceID Source = "workspace_id"
	SourceGitRemote   Source = "git_remote"
	SourceDirectory   Source = "directory"
)

// Derived reports whether identities from this source are hashed rather
// than returned verbatim.
func (s Source) Derived() bool {
	return s == SourceGitRemote || s == SourceDirectory
}

// Candidate is a raw value offered by a Step.
// A Candidate with no Source is no offer at all.
type Candidate struct {
	Value  string
	Source Source
}

// Identity is a resolved project identifier.
type Identity struct {
	// ID is the token sent to the stats API.
	ID string
	// Source is the step that produced ID.
	Source Source
	// Input is the string that was hashed into ID. Empty for persisted IDs.
	Input string
}

// ErrNoIdentity is returned when every step comes up empty.
var ErrNoIdentity = errors.New("could not determine project identity")

// Resolver implements Identifier as an ordered, short-circuiting chain.
type Resolver struct {
	steps  []Step
	logger zerolog.Logger
}

// NewIdentifier creates a resolver with the default chain:
// project file, origin remote, directory name.
func NewIdentifier(logger zerolog.Logger) *Resolver {
	return NewResolver(logger, ProjectFileStep, GitRemoteStep, DirectoryStep)
}

// NewResolver creates a resolver that evaluates steps in the given order.
func NewResolver(logger zerolog.Logger, steps ...Step) *Resolver {
	return &Resolver{steps: steps, logger: logger}
}

func (r *Resolver) Resolve(dir string) (Identity, error) {
	for _, step := range r.steps {
		c, err := step(dir)
		if err != nil {
			// Read and parse failures are diagnostics, not fatal.
			msg, cause := describe(err)
			r.logger.Warn().Err(cause).Msg(msg)
			continue
		}
		if c.Source == "" || (c.Value == "" && !c.Source.Derived()) {
			continue
		}

		r.logger.Debug().Str("source", string(c.Source)).Str("value", c.Value).Msg("identity candidate accepted")

		if !c.Source.Derived() {
			return Identity{ID: c.Value, Source: c.Source}, nil
		}
		return Identity{ID: HashIdentifier(c.Value), Source: c.Source, Input: c.Value}, nil
	}

	return Identity{}, ErrNoIdentity
}

// DirectoryStep offers the base name of dir.
// A filesystem root has an empty base name, which is still hashed.
func DirectoryStep(dir string) (Candidate, error) {
	if dir == "" {
		return Candidate{}, nil
	}

	base := filepath.Base(dir)
	if base == string(filepath.Separator) || base == "." {
		base = ""
	}
	return Candidate{Value: base, Source: SourceDirectory}, nil
}

// describe turns a step failure into a log message and its underlying cause.
func describe(err error) (string, error) {
	var readErr *ConfigReadError
	if errors.As(err, &readErr) {
		return "Error reading " + readErr.Name, readErr.Err
	}
	var parseErr *JSONParseError
	if errors.As(err, &parseErr) {
		return "Error reading " + parseErr.Name, parseErr.Err
	}
	return "identity step failed", err
}
