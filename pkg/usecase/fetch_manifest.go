package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// manifestReader is one strategy for reading the gallery manifest. The
// readers are tried in a fixed order; the first success wins.
type manifestReader struct {
	name string
	read func(ctx context.Context) (model.Manifest, error)
}

func (x *UseCase) manifestReaders() []manifestReader {
	var readers []manifestReader

	if store := x.clients.ContentStore(); store != nil {
		readers = append(readers, manifestReader{
			name: "store",
			read: func(ctx context.Context) (model.Manifest, error) {
				content, err := store.GetContent(ctx, model.ManifestPath)
				if err != nil {
					if errors.Is(err, types.ErrNotFound) {
						// Nothing published yet: a valid empty gallery,
						// not a failure.
						return model.Manifest{}, nil
					}
					return nil, err
				}
				return model.ParseManifest(content.Data)
			},
		})
	}

	if mirror := x.clients.Mirror(); mirror != nil {
		readers = append(readers, manifestReader{
			name: "mirror",
			read: func(ctx context.Context) (model.Manifest, error) {
				data, err := mirror.Fetch(ctx, model.ManifestPath)
				if err != nil {
					return nil, err
				}
				return model.ParseManifest(data)
			},
		})
	}

	return readers
}

// FetchManifest reads the gallery manifest, preferring the authenticated
// store and falling back to the public mirror. Callers cannot distinguish
// "no data" from "all sources failed" at this layer: both yield an empty
// manifest.
func (x *UseCase) FetchManifest(ctx context.Context) (model.Manifest, error) {
	for _, reader := range x.manifestReaders() {
		manifest, err := reader.read(ctx)
		if err != nil {
			logging.From(ctx).Warn("manifest reader failed, trying next source",
				slog.String("reader", reader.name),
				slog.Any("error", err),
			)
			continue
		}
		return manifest, nil
	}

	logging.From(ctx).Warn("all manifest sources failed, returning empty gallery")
	return model.Manifest{}, nil
}
