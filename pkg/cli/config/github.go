package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/infra/ghstore"
)

type GitHub struct {
	owner  string
	repo   string
	branch string

	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Content repository owner",
			Category:    "GitHub",
			Sources:     cli.EnvVars("ATELIER_GITHUB_OWNER"),
			Destination: &x.owner,
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Content repository name",
			Category:    "GitHub",
			Sources:     cli.EnvVars("ATELIER_GITHUB_REPO"),
			Destination: &x.repo,
		},
		&cli.StringFlag{
			Name:        "github-branch",
			Usage:       "Content repository branch",
			Category:    "GitHub",
			Sources:     cli.EnvVars("ATELIER_GITHUB_BRANCH"),
			Destination: &x.branch,
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "Personal access token with contents:write",
			Category:    "GitHub",
			Sources:     cli.EnvVars("ATELIER_GITHUB_TOKEN"),
			Destination: (*string)(&x.token),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (alternative to a token)",
			Category:    "GitHub App",
			Sources:     cli.EnvVars("ATELIER_GITHUB_APP_ID"),
			Destination: (*int64)(&x.appID),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Sources:     cli.EnvVars("ATELIER_GITHUB_APP_INSTALL_ID"),
			Destination: (*int64)(&x.installID),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key",
			Category:    "GitHub App",
			Sources:     cli.EnvVars("ATELIER_GITHUB_APP_PRIVATE_KEY"),
			Destination: (*string)(&x.privateKey),
		},
	}
}

// RepoConfig returns the repository configuration from flags only; empty
// fields may be filled later from persisted settings.
func (x *GitHub) RepoConfig() *model.RepoConfig {
	return &model.RepoConfig{
		Owner:  x.owner,
		Repo:   x.repo,
		Branch: types.BranchName(x.branch),
		Token:  x.token,
	}
}

// NewStore builds the content store for cfg. Returns nil without error
// when no write credential is configured; the gallery stays read-only
// through the public mirror.
func (x *GitHub) NewStore(cfg *model.RepoConfig) (interfaces.ContentStore, error) {
	switch {
	case cfg.Token != "":
		return ghstore.New(cfg)
	case x.appID != 0 && x.installID != 0 && x.privateKey != "":
		return ghstore.NewWithApp(cfg, x.appID, x.installID, x.privateKey)
	default:
		return nil, nil
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Owner", x.owner),
		slog.String("Repo", x.repo),
		slog.String("Branch", x.branch),
		slog.Int("Token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("PrivateKey.len", len(x.privateKey)),
	)
}
