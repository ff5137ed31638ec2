package cli

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// AutoDetectRepoConfig fills owner, repo and branch from the local git
// repository if not already set
func AutoDetectRepoConfig(ctx context.Context, cfg *model.RepoConfig) error {
	repo, err := git.PlainOpen(".")
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository")
	}

	if cfg.Branch == "" {
		head, err := repo.Head()
		if err != nil {
			return goerr.Wrap(err, "failed to get HEAD")
		}
		if head.Name().IsBranch() {
			cfg.Branch = types.BranchName(head.Name().Short())
		}
	}

	if cfg.Owner == "" || cfg.Repo == "" {
		remote, err := repo.Remote("origin")
		if err != nil {
			return goerr.Wrap(err, "failed to get remote origin")
		}

		if len(remote.Config().URLs) == 0 {
			return goerr.New("no remote URL found")
		}

		// Parse git remote URL (e.g., git@github.com:owner/repo.git or https://github.com/owner/repo.git)
		url := remote.Config().URLs[0]
		var owner, repoName string

		if strings.HasPrefix(url, "git@github.com:") {
			// SSH format: git@github.com:owner/repo.git
			parts := strings.TrimPrefix(url, "git@github.com:")
			parts = strings.TrimSuffix(parts, ".git")
			ownerRepo := strings.Split(parts, "/")
			if len(ownerRepo) == 2 {
				owner = ownerRepo[0]
				repoName = ownerRepo[1]
			}
		} else if strings.Contains(url, "github.com/") {
			// HTTPS format: https://github.com/owner/repo.git
			parts := strings.Split(url, "github.com/")
			if len(parts) == 2 {
				parts[1] = strings.TrimSuffix(parts[1], ".git")
				ownerRepo := strings.Split(parts[1], "/")
				if len(ownerRepo) == 2 {
					owner = ownerRepo[0]
					repoName = ownerRepo[1]
				}
			}
		}

		if owner == "" || repoName == "" {
			return goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
		}

		if cfg.Owner == "" {
			cfg.Owner = owner
		}
		if cfg.Repo == "" {
			cfg.Repo = repoName
		}
	}

	return nil
}
