package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/mock"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/infra"
	"github.com/secmon-lab/atelier/pkg/usecase"
)

func TestFetchManifestFromStore(t *testing.T) {
	data := testManifestData(t)

	store := &mock.ContentStoreMock{
		GetContentFunc: func(ctx context.Context, path string) (*interfaces.StoreContent, error) {
			return &interfaces.StoreContent{Data: data, SHA: "sha"}, nil
		},
	}
	mirror := &mock.MirrorSourceMock{}

	uc := usecase.New(infra.New(
		infra.WithContentStore(store),
		infra.WithMirror(mirror),
	), testRepoConfig)

	manifest := gt.R1(uc.FetchManifest(context.Background())).NoError(t)
	gt.A(t, manifest).Length(3)
	gt.V(t, manifest[0].ID).Equal("a")

	// The mirror is never consulted when the store succeeds.
	gt.A(t, mirror.FetchCalls()).Length(0)
}

func TestFetchManifestStoreNotFound(t *testing.T) {
	store := &mock.ContentStoreMock{
		GetContentFunc: func(ctx context.Context, path string) (*interfaces.StoreContent, error) {
			return nil, goerr.Wrap(types.ErrNotFound, "no manifest")
		},
	}

	uc := usecase.New(infra.New(infra.WithContentStore(store)), testRepoConfig)

	// Nothing published yet is an empty gallery, not an error.
	manifest := gt.R1(uc.FetchManifest(context.Background())).NoError(t)
	gt.A(t, manifest).Length(0)
}

func TestFetchManifestFallsBackToMirror(t *testing.T) {
	data := testManifestData(t)

	store := &mock.ContentStoreMock{
		GetContentFunc: func(ctx context.Context, path string) (*interfaces.StoreContent, error) {
			return nil, goerr.New("store is down")
		},
	}
	mirror := &mock.MirrorSourceMock{
		FetchFunc: func(ctx context.Context, path string) ([]byte, error) {
			gt.V(t, path).Equal(model.ManifestPath)
			return data, nil
		},
	}

	uc := usecase.New(infra.New(
		infra.WithContentStore(store),
		infra.WithMirror(mirror),
	), testRepoConfig)

	manifest := gt.R1(uc.FetchManifest(context.Background())).NoError(t)
	gt.A(t, manifest).Length(3)
	gt.A(t, mirror.FetchCalls()).Length(1)
}

func TestFetchManifestWithoutCredential(t *testing.T) {
	data := testManifestData(t)

	mirror := &mock.MirrorSourceMock{
		FetchFunc: func(ctx context.Context, path string) ([]byte, error) {
			return data, nil
		},
	}

	uc := usecase.New(infra.New(infra.WithMirror(mirror)), testRepoConfig)

	// Anonymous reads go straight to the mirror.
	manifest := gt.R1(uc.FetchManifest(context.Background())).NoError(t)
	gt.A(t, manifest).Length(3)
}

func TestFetchManifestAllSourcesFail(t *testing.T) {
	store := &mock.ContentStoreMock{
		GetContentFunc: func(ctx context.Context, path string) (*interfaces.StoreContent, error) {
			return nil, goerr.New("store is down")
		},
	}
	mirror := &mock.MirrorSourceMock{
		FetchFunc: func(ctx context.Context, path string) ([]byte, error) {
			return nil, goerr.New("mirror is down")
		},
	}

	uc := usecase.New(infra.New(
		infra.WithContentStore(store),
		infra.WithMirror(mirror),
	), testRepoConfig)

	manifest := gt.R1(uc.FetchManifest(context.Background())).NoError(t)
	gt.A(t, manifest).Length(0)
}
