package cli_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/cli"
	"github.com/secmon-lab/atelier/pkg/domain/model"
)

func TestAutoDetectRepoConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("auto-detect from current git repository", func(t *testing.T) {
		cfg := model.RepoConfig{}
		err := cli.AutoDetectRepoConfig(ctx, &cfg)

		if err != nil {
			t.Skipf("Not in a git repository: %v", err)
		}

		gt.V(t, cfg.Owner).NotEqual("")
		gt.V(t, cfg.Repo).NotEqual("")
	})

	t.Run("preserve existing configuration", func(t *testing.T) {
		cfg := model.RepoConfig{
			Owner:  "custom-owner",
			Repo:   "custom-repo",
			Branch: "custom-branch",
		}
		err := cli.AutoDetectRepoConfig(ctx, &cfg)

		if err != nil {
			t.Skipf("Not in a git repository: %v", err)
		}

		gt.V(t, cfg.Owner).Equal("custom-owner")
		gt.V(t, cfg.Repo).Equal("custom-repo")
		gt.V(t, string(cfg.Branch)).Equal("custom-branch")
	})
}
