package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/cli/config"
	"github.com/secmon-lab/atelier/pkg/domain/model"
)

func TestGitHubFlags(t *testing.T) {
	githubConfig := &config.GitHub{}
	flags := githubConfig.Flags()

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["github-owner"])
	gt.True(t, flagNames["github-repo"])
	gt.True(t, flagNames["github-branch"])
	gt.True(t, flagNames["github-token"])
	gt.True(t, flagNames["github-app-id"])
	gt.True(t, flagNames["github-app-install-id"])
	gt.True(t, flagNames["github-app-private-key"])
}

func TestGitHubNewStoreWithoutCredential(t *testing.T) {
	githubConfig := &config.GitHub{}
	cfg := &model.RepoConfig{Owner: "ns", Repo: "gallery", Branch: "main"}

	// No credential means a read-only gallery, not an error.
	store := gt.R1(githubConfig.NewStore(cfg)).NoError(t)
	gt.V(t, store).Equal(nil)
}

func TestDescriberNewWithoutAPIKey(t *testing.T) {
	describerConfig := &config.Describer{}

	client := gt.R1(describerConfig.New()).NoError(t)
	gt.V(t, client).Equal(nil)
}
