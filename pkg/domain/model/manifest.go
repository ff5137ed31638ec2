package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// ManifestPath is the well-known location of the gallery manifest in the
// content repository.
const ManifestPath = "gallery.json"

// Manifest is the ordered list of published artworks, newest first. New
// entries are prepended at publish time; the order is never re-sorted on
// read.
type Manifest []Artwork

// ParseManifest decodes a UTF-8 JSON manifest document.
func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedContent, "failed to parse manifest",
			goerr.V("size", len(data)),
		)
	}
	return manifest, nil
}

// Encode serializes the manifest to UTF-8 JSON. A nil manifest encodes as
// an empty array, not null.
func (x Manifest) Encode() ([]byte, error) {
	if x == nil {
		x = Manifest{}
	}
	data, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode manifest")
	}
	return data, nil
}

func (x Manifest) Prepend(artwork Artwork) Manifest {
	return append(Manifest{artwork}, x...)
}

// Remove returns the manifest without the artwork of the given ID, plus
// the removed record. The second return is nil when the ID is not present.
// The order of the remaining records is unchanged.
func (x Manifest) Remove(id types.ArtworkID) (Manifest, *Artwork) {
	filtered := make(Manifest, 0, len(x))
	var removed *Artwork
	for _, artwork := range x {
		if artwork.ID == id {
			found := artwork
			removed = &found
			continue
		}
		filtered = append(filtered, artwork)
	}
	return filtered, removed
}

func (x Manifest) Validate() error {
	seen := make(map[types.ArtworkID]struct{}, len(x))
	for i := range x {
		if err := x[i].Validate(); err != nil {
			return err
		}
		if _, ok := seen[x[i].ID]; ok {
			return goerr.Wrap(types.ErrInvalidInput, "duplicated artwork ID", goerr.V("id", x[i].ID))
		}
		seen[x[i].ID] = struct{}{}
	}
	return nil
}
