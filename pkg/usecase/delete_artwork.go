package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// DeleteArtwork removes a record from the manifest, then attempts to
// remove the image blob. The manifest update is mandatory and any failure
// there surfaces to the caller; the blob removal is best-effort and its
// failure is only recorded in the result. Orphaned blobs are acceptable,
// inconsistent manifests are not.
func (x *UseCase) DeleteArtwork(ctx context.Context, id types.ArtworkID) (*model.DeleteResult, error) {
	store := x.clients.ContentStore()
	if store == nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "deleting requires a write credential")
	}

	// Deletion never proceeds on a manifest it could not freshly read.
	content, err := store.GetContent(ctx, model.ManifestPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest for deletion")
	}

	manifest, err := model.ParseManifest(content.Data)
	if err != nil {
		return nil, err
	}

	filtered, removed := manifest.Remove(id)
	if removed == nil {
		return nil, goerr.Wrap(types.ErrNotFound, "artwork is not in the manifest", goerr.V("id", id))
	}

	data, err := filtered.Encode()
	if err != nil {
		return nil, err
	}

	if err := store.PutContent(ctx, &interfaces.PutContentInput{
		Path:    model.ManifestPath,
		Data:    data,
		Message: fmt.Sprintf("Remove artwork: %s", removed.Title),
		SHA:     content.SHA,
	}); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("removed artwork from manifest",
		slog.Any("id", id),
		slog.String("title", removed.Title),
		slog.Int("gallery_size", len(filtered)),
	)

	return &model.DeleteResult{
		Artwork: *removed,
		Cleanup: x.cleanupAsset(ctx, store, removed),
	}, nil
}

func (x *UseCase) cleanupAsset(ctx context.Context, store interfaces.ContentStore, artwork *model.Artwork) model.CleanupResult {
	logger := logging.From(ctx)

	path := x.cfg.AssetPath(artwork.ImageURL)
	if path == "" {
		logger.Debug("no repository path derivable from asset URL, skipping cleanup",
			slog.String("imageUrl", artwork.ImageURL),
		)
		return model.CleanupResult{Status: model.CleanupSkipped}
	}

	content, err := store.GetContent(ctx, path)
	if err != nil {
		logger.Warn("failed to read asset for cleanup, leaving orphaned blob",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return model.CleanupResult{Status: model.CleanupFailed, Path: path, Error: err.Error()}
	}

	if err := store.DeleteContent(ctx, &interfaces.DeleteContentInput{
		Path:    path,
		Message: fmt.Sprintf("Remove asset: %s", path),
		SHA:     content.SHA,
	}); err != nil {
		logger.Warn("failed to delete asset, leaving orphaned blob",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return model.CleanupResult{Status: model.CleanupFailed, Path: path, Error: err.Error()}
	}

	return model.CleanupResult{Status: model.CleanupDone, Path: path}
}
