package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// SaveSettings verifies that the new repository configuration is reachable
// and only then persists it. Unreachable settings are rejected without
// touching the saved state.
func (x *UseCase) SaveSettings(ctx context.Context, settings *model.Settings) (*model.RepoDetails, error) {
	repo := x.clients.Settings()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "settings repository is not configured")
	}
	factory := x.clients.StoreFactory()
	if factory == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "store factory is not configured")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	store, err := factory(settings.RepoConfig())
	if err != nil {
		return nil, err
	}

	details, err := store.GetRepository(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "repository is not reachable with the given settings")
	}

	if details.Private {
		logging.From(ctx).Warn("content repository is not public; anonymous gallery reads will fail",
			slog.String("repository", details.FullName),
		)
	}

	if err := repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("saved settings", slog.String("repository", details.FullName))

	return details, nil
}
