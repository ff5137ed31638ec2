package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// PublishInput carries the fields of a new artwork record. ID and
// CreatedAt are assigned at publish time.
type PublishInput struct {
	ImageURL    string
	Title       string
	Description string
	Medium      string
	Tags        []string
}

func (x *PublishInput) Validate() error {
	if x.ImageURL == "" {
		return goerr.Wrap(types.ErrInvalidInput, "image URL is empty")
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrInvalidInput, "title is empty")
	}
	return nil
}

type UploadInput struct {
	Filename string
	Data     []byte
	MIMEType string
}

func (x *UploadInput) Validate() error {
	if x.Filename == "" {
		return goerr.Wrap(types.ErrInvalidInput, "filename is empty")
	}
	if len(x.Data) == 0 {
		return goerr.Wrap(types.ErrInvalidInput, "file content is empty", goerr.V("filename", x.Filename))
	}
	return nil
}
