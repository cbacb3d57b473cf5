package adapters

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"forgeconf/internal/ports"
)

type GitRefAdapter struct{}

func NewGitRefAdapter() GitRefAdapter {
	return GitRefAdapter{}
}

// ReadCommit follows .git/HEAD to the ref it names and returns the hash stored
// there. A detached or otherwise unparsable HEAD yields a nil commit.
func (a GitRefAdapter) ReadCommit(ctx context.Context, projectDir string) (*string, error) {
	gitDir := filepath.Join(projectDir, ".git")
	head, err := readGitFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return nil, err
	}
	parts := strings.Split(head, ": ")
	if len(parts) < 2 {
		log.Ctx(ctx).Debug().Str("head", strings.TrimSpace(head)).Msg("HEAD does not reference a branch")
		return nil, nil
	}
	ref := strings.TrimSpace(parts[1])
	content, err := readGitFile(filepath.Join(gitDir, filepath.FromSlash(ref)))
	if err != nil {
		return nil, err
	}
	commit := strings.TrimSpace(content)
	log.Ctx(ctx).Debug().Str("ref", ref).Str("commit", commit).Msg("commit resolved")
	return &commit, nil
}

func readGitFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := errbuilder.CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = errbuilder.CodeNotFound
		}
		return "", errbuilder.New().
			WithCode(code).
			WithMsg("failed to read " + filepath.Base(path) + " from git repository").
			WithCause(err)
	}
	return string(data), nil
}

var _ ports.CommitPort = GitRefAdapter{}
