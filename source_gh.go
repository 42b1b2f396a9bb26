package tsgen

import (
	"context"
	"path/filepath"

	"github.com/google/go-github/v48/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// GitHubSource reads content type JSON files stored under a path of a GitHub
// repository, walking sub directories.
type GitHubSource struct {
	Owner string
	Repo  string
	Ref   string
	Path  string

	client *github.Client
}

func NewGitHubSource(ctx context.Context, token string, owner string, repo string, ref string, path string) *GitHubSource {
	var client *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	} else {
		client = github.NewClient(nil)
	}
	return NewGitHubSourceWithClient(client, owner, repo, ref, path)
}

func NewGitHubSourceWithClient(client *github.Client, owner string, repo string, ref string, path string) *GitHubSource {
	return &GitHubSource{
		Owner:  owner,
		Repo:   repo,
		Ref:    ref,
		Path:   path,
		client: client,
	}
}

func (s *GitHubSource) ContentTypes(ctx context.Context) ([]*ContentType, error) {
	files, err := s.jsonFiles(ctx, s.Path)
	if err != nil {
		return nil, wrapKind(ErrFetch, err)
	}

	types := make([]*ContentType, 0, len(files))
	for _, path := range files {
		fc, _, _, err := s.client.Repositories.GetContents(ctx, s.Owner, s.Repo, path, s.options())
		if err != nil {
			return nil, wrapKind(ErrFetch, err)
		}
		if fc == nil {
			return nil, errors.Wrapf(ErrFetch, "%s is not a file", path)
		}
		content, err := fc.GetContent()
		if err != nil {
			return nil, wrapKind(ErrFetch, errors.WithMessage(err, path))
		}
		items, err := ParseContentTypes([]byte(content))
		if err != nil {
			return nil, errors.WithMessage(err, path)
		}
		types = append(types, items...)
	}

	return types, nil
}

func (s *GitHubSource) options() *github.RepositoryContentGetOptions {
	if s.Ref == "" {
		return nil
	}
	return &github.RepositoryContentGetOptions{Ref: s.Ref}
}

func (s *GitHubSource) jsonFiles(ctx context.Context, path string) ([]string, error) {
	fc, dir, _, err := s.client.Repositories.GetContents(ctx, s.Owner, s.Repo, path, s.options())
	if err != nil {
		return nil, errors.WithMessagef(err, "%s/%s/%s", s.Owner, s.Repo, path)
	}
	if fc != nil {
		return []string{fc.GetPath()}, nil
	}

	files := make([]string, 0)
	for _, rc := range dir {
		switch rc.GetType() {
		case "dir":
			sub, err := s.jsonFiles(ctx, rc.GetPath())
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		case "file":
			if filepath.Ext(rc.GetName()) == ".json" {
				files = append(files, rc.GetPath())
			}
		}
	}
	return files, nil
}
