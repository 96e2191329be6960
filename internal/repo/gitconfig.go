package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jeanhaley32/specstory-stats/internal/constants"
)

// Pre-compiled regex for slug extraction (compiled once at package init).
// Matches the last two '/'- or ':'-delimited components, without a trailing .git.
var repoSlugRegex = regexp.MustCompile(`[/:]([^/]+/[^/]+?)(\.git)?$`)

var (
	gitConfigName = path.Join(constants.GitDir, constants.GitConfigFile)
	originHeader  = fmt.Sprintf("[remote %q]", constants.OriginRemote)
)

const urlAssignment = "url ="

// GitConfigPath returns the git config location for a project directory.
func GitConfigPath(dir string) string {
	return filepath.Join(dir, constants.GitDir, constants.GitConfigFile)
}

// GitRemoteStep offers the owner/repo slug of the origin remote.
func GitRemoteStep(dir string) (Candidate, error) {
	p := GitConfigPath(dir)

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Candidate{}, nil
		}
		return Candidate{}, &ConfigReadError{Name: gitConfigName, Path: p, Err: err}
	}

	slug := ParseOriginRemote(string(data))
	if slug == "" {
		return Candidate{}, nil
	}
	return Candidate{Value: slug, Source: SourceGitRemote}, nil
}

// ParseOriginRemote scans git config content for the [remote "origin"]
// section and returns the owner/repo slug of its first parseable url.
// Returns "" if there is no origin remote or no url in it can be parsed.
func ParseOriginRemote(content string) string {
	inOrigin := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == originHeader {
			inOrigin = true
			continue
		}
		if !inOrigin {
			continue
		}

		if strings.Contains(line, urlAssignment) {
			url := strings.TrimSpace(strings.SplitN(line, urlAssignment, 3)[1])
			if slug := ExtractRepoSlug(url); slug != "" {
				return slug
			}
		}

		// Next section ends the origin block
		if strings.HasPrefix(trimmed, "[") {
			break
		}
	}
	return ""
}

// ExtractRepoSlug returns the owner/repo part of a remote URL.
// Examples:
//   - https://github.com/user/repo.git -> user/repo
//   - git@github.com:user/repo.git -> user/repo
//
// The result is not validated; malformed URLs may yield odd slugs.
func ExtractRepoSlug(url string) string {
	m := repoSlugRegex.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	// Only the first .git is dropped, so existing IDs stay stable.
	return strings.Replace(m[1], ".git", "", 1)
}
