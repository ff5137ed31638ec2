package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Artwork is a single published gallery entry. Records are immutable once
// published; a change is a delete followed by a fresh publish.
type Artwork struct {
	ID          types.ArtworkID `json:"id"`
	ImageURL    string          `json:"imageUrl"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Medium      string          `json:"medium"`
	Tags        []string        `json:"tags"`
	CreatedAt   int64           `json:"createdAt"`
}

func (x *Artwork) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrInvalidInput, "artwork ID is empty")
	}
	if x.ImageURL == "" {
		return goerr.Wrap(types.ErrInvalidInput, "artwork image URL is empty", goerr.V("id", x.ID))
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrInvalidInput, "artwork title is empty", goerr.V("id", x.ID))
	}
	return nil
}

// ArtworkMetadata is the describable subset of an artwork, as drafted by
// the metadata generator.
type ArtworkMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Medium      string   `json:"medium"`
	Tags        []string `json:"tags"`
}
