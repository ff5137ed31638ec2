package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/atelier/pkg/cli/config"
	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/infra"
	"github.com/secmon-lab/atelier/pkg/infra/ghstore"
	"github.com/secmon-lab/atelier/pkg/infra/mirror"
	"github.com/secmon-lab/atelier/pkg/repository"
	"github.com/secmon-lab/atelier/pkg/repository/local"
	"github.com/secmon-lab/atelier/pkg/usecase"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

func settingsPathFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "settings-path",
		Usage:       "Path to the persisted settings file",
		Sources:     cli.EnvVars("ATELIER_SETTINGS_PATH"),
		Destination: dst,
	}
}

// newUseCase assembles the clients for a command. Configuration layering:
// compiled-in defaults, overridden by persisted settings, overridden by
// flags and env vars. With detectGit, missing repository coordinates are
// filled from the local git remote.
func newUseCase(ctx context.Context, githubCfg *config.GitHub, describerCfg *config.Describer, settingsPath string, detectGit bool) (*usecase.UseCase, *model.RepoConfig, error) {
	settingsRepo, err := newSettingsRepo(settingsPath)
	if err != nil {
		return nil, nil, err
	}

	cfg := githubCfg.RepoConfig()

	if saved, err := settingsRepo.Load(ctx); err == nil {
		saved.ApplyTo(cfg)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}

	if detectGit && (cfg.Owner == "" || cfg.Repo == "") {
		if err := AutoDetectRepoConfig(ctx, cfg); err != nil {
			logging.From(ctx).Debug("git auto-detect failed", slog.Any("error", err))
		}
	}

	if cfg.Branch == "" {
		cfg.Branch = model.DefaultBranch
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	store, err := githubCfg.NewStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	options := []infra.Option{
		infra.WithMirror(mirror.New(cfg)),
		infra.WithSettings(settingsRepo),
		infra.WithStoreFactory(func(c *model.RepoConfig) (interfaces.ContentStore, error) {
			return ghstore.New(c)
		}),
	}
	if store != nil {
		options = append(options, infra.WithContentStore(store))
	}

	if describerClient, err := describerCfg.New(); err != nil {
		return nil, nil, err
	} else if describerClient != nil {
		options = append(options, infra.WithDescriber(describerClient))
	}

	clients := infra.New(options...)
	return usecase.New(clients, cfg), cfg, nil
}

func newSettingsRepo(path string) (interfaces.SettingsRepository, error) {
	if path == "" {
		defaultPath, err := local.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return local.New(path), nil
}
