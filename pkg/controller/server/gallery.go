package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/safe"
)

func handleListArtworks(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manifest, err := uc.FetchManifest(r.Context())
		if err != nil {
			respondError(r, w, "fail to fetch manifest", err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"artworks": manifest})
	}
}

// handlePublishArtwork accepts a multipart form with an "image" file plus
// metadata fields, uploads the asset and publishes the record. With
// describe=true the metadata generator fills the fields the form left
// empty.
func handlePublishArtwork(uc interfaces.UseCase, maxUploadSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			respondError(r, w, "fail to parse upload form",
				goerr.Wrap(types.ErrInvalidInput, "invalid multipart form"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			respondError(r, w, "missing image file",
				goerr.Wrap(types.ErrInvalidInput, "image file is required"))
			return
		}
		defer safe.Close(file)

		data, err := io.ReadAll(file)
		if err != nil {
			respondError(r, w, "fail to read image file", goerr.Wrap(err, "failed to read upload"))
			return
		}

		upload := &model.UploadInput{
			Filename: header.Filename,
			Data:     data,
			MIMEType: header.Header.Get("Content-Type"),
		}
		input := &model.PublishInput{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Medium:      r.FormValue("medium"),
			Tags:        splitTags(r.FormValue("tags")),
		}

		if r.FormValue("describe") == "true" {
			meta, err := uc.DescribeImage(ctx, upload)
			if err != nil {
				respondError(r, w, "fail to describe image", err)
				return
			}
			applyMetadata(input, meta)
		}

		url, err := uc.UploadAsset(ctx, upload)
		if err != nil {
			respondError(r, w, "fail to upload asset", err)
			return
		}
		input.ImageURL = url

		artwork, err := uc.PublishArtwork(ctx, input)
		if err != nil {
			respondError(r, w, "fail to publish artwork", err)
			return
		}

		respondJSON(w, http.StatusCreated, artwork)
	}
}

func handleDeleteArtwork(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.ArtworkID(chi.URLParam(r, "id"))

		result, err := uc.DeleteArtwork(r.Context(), id)
		if err != nil {
			respondError(r, w, "fail to delete artwork", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

func handleRepoDetails(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := uc.VerifyAccess(r.Context())
		if err != nil {
			respondError(r, w, "fail to verify repository access", err)
			return
		}

		respondJSON(w, http.StatusOK, details)
	}
}

func handleSaveSettings(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings model.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			respondError(r, w, "fail to decode settings",
				goerr.Wrap(types.ErrInvalidInput, "invalid settings body"))
			return
		}

		details, err := uc.SaveSettings(r.Context(), &settings)
		if err != nil {
			respondError(r, w, "fail to save settings", err)
			return
		}

		respondJSON(w, http.StatusOK, details)
	}
}

// applyMetadata fills only the fields the form left empty, so manual
// input wins over drafted metadata.
func applyMetadata(input *model.PublishInput, meta *model.ArtworkMetadata) {
	if input.Title == "" {
		input.Title = meta.Title
	}
	if input.Description == "" {
		input.Description = meta.Description
	}
	if input.Medium == "" {
		input.Medium = meta.Medium
	}
	if len(input.Tags) == 0 {
		input.Tags = meta.Tags
	}
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
