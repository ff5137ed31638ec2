package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// PublishArtwork prepends a new record to the manifest and writes the
// whole document back with the version token obtained by the preceding
// read. A concurrent writer makes the store reject the write with
// ErrConflict; there is no retry or merge under the single-writer
// assumption.
func (x *UseCase) PublishArtwork(ctx context.Context, input *model.PublishInput) (*model.Artwork, error) {
	store := x.clients.ContentStore()
	if store == nil {
		return nil, goerr.Wrap(types.ErrAuthRequired, "publishing requires a write credential")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	manifest := model.Manifest{}
	var sha string
	content, err := store.GetContent(ctx, model.ManifestPath)
	switch {
	case err == nil:
		manifest, err = model.ParseManifest(content.Data)
		if err != nil {
			// Never clobber a manifest that could not be parsed.
			return nil, err
		}
		sha = content.SHA
	case errors.Is(err, types.ErrNotFound):
		// First publish: creating write with no version token.
	default:
		return nil, err
	}

	artwork := model.Artwork{
		ID:          types.NewArtworkID(),
		ImageURL:    input.ImageURL,
		Title:       input.Title,
		Description: input.Description,
		Medium:      input.Medium,
		Tags:        input.Tags,
		CreatedAt:   logging.CtxTime(ctx).UnixMilli(),
	}

	data, err := manifest.Prepend(artwork).Encode()
	if err != nil {
		return nil, err
	}

	if err := store.PutContent(ctx, &interfaces.PutContentInput{
		Path:    model.ManifestPath,
		Data:    data,
		Message: fmt.Sprintf("Add artwork: %s", artwork.Title),
		SHA:     sha,
	}); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("published artwork",
		slog.Any("id", artwork.ID),
		slog.String("title", artwork.Title),
		slog.Int("gallery_size", len(manifest)+1),
	)

	return &artwork, nil
}
