package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/mock"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/infra"
	"github.com/secmon-lab/atelier/pkg/usecase"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

var testRepoConfig = &model.RepoConfig{
	Owner:  "ns",
	Repo:   "gallery",
	Branch: "main",
	Token:  "test-token",
}

func TestPublishArtworkToEmptyGallery(t *testing.T) {
	store := &mock.ContentStoreMock{
		GetContentFunc: func(ctx context.Context, path string) (*interfaces.StoreContent, error) {
			gt.V(t, path).Equal(model.ManifestPath)
			return nil, goerr.Wrap(types.ErrNotFound, "no manifest")
		},
		PutContentFunc: func(ctx context.Context, input *interfaces.PutContentInput) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(infra.WithContentStore(store)), testRepoConfig)

	ctx := logging.CtxWithTime(context.Background(), func() time.Time {
		return time.UnixMilli(1712345678901)
	})
	artwork := gt.R1(uc.PublishArtwork(ctx, &model.PublishInput{
		ImageURL: "https://raw.githubusercontent.com/ns/gallery/main/images/1-a.jpg",
		Title:    "First Light",
	})).NoError(t)

	gt.V(t, artwork.Title).Equal("First Light")
	gt.V(t, artwork.CreatedAt).Equal(int64(1712345678901))
	gt.True(t, artwork.ID != "")

	// The creating write must not carry a version token.
	puts := store.PutContentCalls()
	gt.A(t, puts).Length(1)
	gt.V(t, puts[0].Input.SHA).Equal("")
	gt.V(t, puts[0].Input.Path).Equal(model.ManifestPath)

	manifest := gt.R1(model.ParseManifest(puts[0].Input.Data)).NoError(t)
	gt.A(t, manifest).Length(1)
	gt.V(t, manifest[0].ID).Equal(artwork.ID)
}

func TestPublishArtworkCarriesReadSHA(t *testing.T) {
	existing := model.Manifest{
		{ID: "old", ImageURL: "https://example.com/old.jpg", Title: "Old", CreatedAt: 1},
	}
	data := gt.R1(existing.Encode()).NoError(t)

	store := &mock.ContentStoreMock{
		GetContentFunc: func(ctx context.Context, path string) (*interfaces.StoreContent, error) {
			return &interfaces.StoreContent{Data: data, SHA: "sha-before"}, nil
		},
		PutContentFunc: func(ctx context.Context, input *interfaces.PutContentInput) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(infra.WithContentStore(store)), testRepoConfig)

	artwork := gt.R1(uc.PublishArtwork(context.Background(), &model.PublishInput{
		ImageURL: "https://example.com/new.jpg",
		Title:    "New",
	})).NoError(t)

	puts := store.PutContentCalls()
	gt.A(t, puts).Length(1)
	gt.V(t, puts[0].Input.SHA).Equal("sha-before")

	manifest := gt.R1(model.ParseManifest(puts[0].Input.Data)).NoError(t)
	gt.A(t, manifest).Length(2)
	gt.V(t, manifest[0].ID).Equal(artwork.ID)
	gt.V(t, manifest[1].ID).Equal("old")
}

func TestPublishArtworkConflict(t *testing.T) {
	data := gt.R1(model.Manifest{}.Encode()).NoError(t)

	store := &mock.ContentStoreMock{
		GetContentFunc: func(ctx context.Context, path string) (*interfaces.StoreContent, error) {
			return &interfaces.StoreContent{Data: data, SHA: "stale"}, nil
		},
		PutContentFunc: func(ctx context.Context, input *interfaces.PutContentInput) error {
			return goerr.Wrap(types.ErrConflict, "manifest was updated concurrently")
		},
	}

	uc := usecase.New(infra.New(infra.WithContentStore(store)), testRepoConfig)

	_, err := uc.PublishArtwork(context.Background(), &model.PublishInput{
		ImageURL: "https://example.com/a.jpg",
		Title:    "A",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrConflict))
}

func TestPublishArtworkMalformedManifest(t *testing.T) {
	store := &mock.ContentStoreMock{
		GetContentFunc: func(ctx context.Context, path string) (*interfaces.StoreContent, error) {
			return &interfaces.StoreContent{Data: []byte("{broken"), SHA: "sha"}, nil
		},
		PutContentFunc: func(ctx context.Context, input *interfaces.PutContentInput) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(infra.WithContentStore(store)), testRepoConfig)

	_, err := uc.PublishArtwork(context.Background(), &model.PublishInput{
		ImageURL: "https://example.com/a.jpg",
		Title:    "A",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrMalformedContent))
	gt.A(t, store.PutContentCalls()).Length(0)
}

func TestPublishArtworkWithoutCredential(t *testing.T) {
	uc := usecase.New(infra.New(), testRepoConfig)

	_, err := uc.PublishArtwork(context.Background(), &model.PublishInput{
		ImageURL: "https://example.com/a.jpg",
		Title:    "A",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrAuthRequired))
}

func TestPublishArtworkInvalidInput(t *testing.T) {
	store := &mock.ContentStoreMock{}
	uc := usecase.New(infra.New(infra.WithContentStore(store)), testRepoConfig)

	_, err := uc.PublishArtwork(context.Background(), &model.PublishInput{Title: "no image"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidInput))
}
