package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ContentStore MirrorSource Describer

import (
	"context"

	"github.com/secmon-lab/atelier/pkg/domain/model"
)

// StoreContent is a decoded file from the content store together with its
// version token. The SHA must be attached to the next write of the same
// path for the store to accept it.
type StoreContent struct {
	Data []byte
	SHA  string
}

type PutContentInput struct {
	Path    string
	Data    []byte
	Message string

	// SHA is the version token obtained by the preceding read. Empty for
	// a creating write.
	SHA string
}

type DeleteContentInput struct {
	Path    string
	Message string
	SHA     string
}

// ContentStore is the versioned blob store backing the gallery: a GitHub
// repository accessed through the Contents API. All operations are scoped
// to the configured branch.
type ContentStore interface {
	GetContent(ctx context.Context, path string) (*StoreContent, error)
	PutContent(ctx context.Context, input *PutContentInput) error
	DeleteContent(ctx context.Context, input *DeleteContentInput) error
	GetRepository(ctx context.Context) (*model.RepoDetails, error)
}

// ContentStoreFactory builds a store for an arbitrary repository
// configuration. Used to probe new settings before they are persisted.
type ContentStoreFactory func(cfg *model.RepoConfig) (ContentStore, error)

// MirrorSource is the unauthenticated, cache-fronted read path for the
// same content. It reflects eventually-consistent state.
type MirrorSource interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

type DescribeInput struct {
	Data     []byte
	MIMEType string
}

// Describer drafts artwork metadata from image bytes via a generative AI
// service.
type Describer interface {
	Describe(ctx context.Context, input *DescribeInput) (*model.ArtworkMetadata, error)
}
