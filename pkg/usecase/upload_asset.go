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

// UploadAsset writes raw image bytes to a timestamp-prefixed path under
// the asset directory and returns the public URL of the stored file.
func (x *UseCase) UploadAsset(ctx context.Context, input *model.UploadInput) (string, error) {
	store := x.clients.ContentStore()
	if store == nil {
		return "", goerr.Wrap(types.ErrAuthRequired, "uploading requires a write credential")
	}
	if err := input.Validate(); err != nil {
		return "", err
	}

	path := model.NewAssetPath(input.Filename, logging.CtxTime(ctx))

	if err := store.PutContent(ctx, &interfaces.PutContentInput{
		Path:    path,
		Data:    input.Data,
		Message: fmt.Sprintf("Upload asset: %s", path),
	}); err != nil {
		return "", err
	}

	url := x.cfg.RawContentURL(path)
	logging.From(ctx).Info("uploaded asset",
		slog.String("path", path),
		slog.Int("size", len(input.Data)),
		slog.String("url", url),
	)

	return url, nil
}
