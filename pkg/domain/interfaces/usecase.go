package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

type UseCase interface {
	FetchManifest(ctx context.Context) (model.Manifest, error)
	PublishArtwork(ctx context.Context, input *model.PublishInput) (*model.Artwork, error)
	DeleteArtwork(ctx context.Context, id types.ArtworkID) (*model.DeleteResult, error)
	UploadAsset(ctx context.Context, input *model.UploadInput) (string, error)
	DescribeImage(ctx context.Context, input *model.UploadInput) (*model.ArtworkMetadata, error)
	VerifyAccess(ctx context.Context) (*model.RepoDetails, error)
	SaveSettings(ctx context.Context, settings *model.Settings) (*model.RepoDetails, error)
}
