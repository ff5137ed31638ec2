package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// VerifyAccess probes the repository metadata endpoint to validate the
// configuration before any write is allowed.
func (x *UseCase) VerifyAccess(ctx context.Context) (*model.RepoDetails, error) {
	store := x.clients.ContentStore()
	if store == nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "verification requires a write credential")
	}

	details, err := store.GetRepository(ctx)
	if err != nil {
		return nil, err
	}

	if details.Private {
		// Anonymous visitors read the gallery through the public mirror,
		// which only works for public repositories.
		logging.From(ctx).Warn("content repository is not public; anonymous gallery reads will fail",
			slog.String("repository", details.FullName),
		)
	}

	return details, nil
}
