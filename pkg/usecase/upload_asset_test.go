package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/mock"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/infra"
	"github.com/secmon-lab/atelier/pkg/usecase"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

func TestUploadAsset(t *testing.T) {
	store := &mock.ContentStoreMock{
		PutContentFunc: func(ctx context.Context, input *interfaces.PutContentInput) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(infra.WithContentStore(store)), testRepoConfig)

	ctx := logging.CtxWithTime(context.Background(), func() time.Time {
		return time.UnixMilli(171234)
	})
	url := gt.R1(uc.UploadAsset(ctx, &model.UploadInput{
		Filename: "My Painting.JPG",
		Data:     []byte("jpeg bytes"),
		MIMEType: "image/jpeg",
	})).NoError(t)

	gt.V(t, url).Equal("https://raw.githubusercontent.com/ns/gallery/main/images/171234-my-painting.jpg")

	puts := store.PutContentCalls()
	gt.A(t, puts).Length(1)
	gt.V(t, puts[0].Input.Path).Equal("images/171234-my-painting.jpg")
	gt.V(t, string(puts[0].Input.Data)).Equal("jpeg bytes")

	// Asset writes are create-only: no version token.
	gt.V(t, puts[0].Input.SHA).Equal("")
}

func TestUploadAssetWithoutCredential(t *testing.T) {
	uc := usecase.New(infra.New(), testRepoConfig)

	_, err := uc.UploadAsset(context.Background(), &model.UploadInput{
		Filename: "a.jpg",
		Data:     []byte("x"),
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrAuthRequired))
}

func TestUploadAssetInvalidInput(t *testing.T) {
	store := &mock.ContentStoreMock{}
	uc := usecase.New(infra.New(infra.WithContentStore(store)), testRepoConfig)

	_, err := uc.UploadAsset(context.Background(), &model.UploadInput{Filename: "a.jpg"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidInput))
}
