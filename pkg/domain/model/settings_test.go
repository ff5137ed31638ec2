package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/domain/model"
)

func TestSettingsRepoConfig(t *testing.T) {
	t.Run("fills the default branch", func(t *testing.T) {
		settings := &model.Settings{Owner: "ns", Repo: "gallery"}
		cfg := settings.RepoConfig()
		gt.V(t, cfg.Branch).Equal(model.DefaultBranch)
	})

	t.Run("keeps an explicit branch", func(t *testing.T) {
		settings := &model.Settings{Owner: "ns", Repo: "gallery", Branch: "develop"}
		cfg := settings.RepoConfig()
		gt.V(t, string(cfg.Branch)).Equal("develop")
	})
}

func TestSettingsApplyTo(t *testing.T) {
	settings := &model.Settings{
		Owner:  "saved-owner",
		Repo:   "saved-repo",
		Branch: "saved-branch",
		Token:  "saved-token",
	}

	t.Run("fills empty fields", func(t *testing.T) {
		cfg := &model.RepoConfig{}
		settings.ApplyTo(cfg)
		gt.V(t, cfg.Owner).Equal("saved-owner")
		gt.V(t, cfg.Repo).Equal("saved-repo")
		gt.V(t, string(cfg.Branch)).Equal("saved-branch")
		gt.V(t, string(cfg.Token)).Equal("saved-token")
	})

	t.Run("explicit values win", func(t *testing.T) {
		cfg := &model.RepoConfig{Owner: "flag-owner", Token: "flag-token"}
		settings.ApplyTo(cfg)
		gt.V(t, cfg.Owner).Equal("flag-owner")
		gt.V(t, cfg.Repo).Equal("saved-repo")
		gt.V(t, string(cfg.Token)).Equal("flag-token")
	})
}

func TestSettingsValidate(t *testing.T) {
	gt.NoError(t, (&model.Settings{Owner: "ns", Repo: "gallery"}).Validate())
	gt.Error(t, (&model.Settings{Repo: "gallery"}).Validate())
	gt.Error(t, (&model.Settings{Owner: "ns"}).Validate())
}
