package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Settings is the persisted repository configuration, merged over
// compiled-in defaults and below explicit flags at startup.
type Settings struct {
	Owner  string            `json:"owner"`
	Repo   string            `json:"repo"`
	Branch types.BranchName  `json:"branch"`
	Token  types.GitHubToken `json:"token,omitempty" masq:"secret"`
}

func (x *Settings) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidInput, "settings owner is empty")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrInvalidInput, "settings repository is empty")
	}
	return nil
}

// RepoConfig converts the settings to a repository configuration, filling
// the branch with the default when unset.
func (x *Settings) RepoConfig() *RepoConfig {
	branch := x.Branch
	if branch == "" {
		branch = DefaultBranch
	}
	return &RepoConfig{
		Owner:  x.Owner,
		Repo:   x.Repo,
		Branch: branch,
		Token:  x.Token,
	}
}

// ApplyTo fills only the empty fields of cfg, so explicit flags and env
// vars win over persisted settings.
func (x *Settings) ApplyTo(cfg *RepoConfig) {
	if cfg.Owner == "" {
		cfg.Owner = x.Owner
	}
	if cfg.Repo == "" {
		cfg.Repo = x.Repo
	}
	if cfg.Branch == "" {
		cfg.Branch = x.Branch
	}
	if cfg.Token == "" {
		cfg.Token = x.Token
	}
}
