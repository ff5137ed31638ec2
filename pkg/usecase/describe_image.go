package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// DescribeImage drafts artwork metadata for the given image bytes via the
// configured generative AI service.
func (x *UseCase) DescribeImage(ctx context.Context, input *model.UploadInput) (*model.ArtworkMetadata, error) {
	describer := x.clients.Describer()
	if describer == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "describer is not configured")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return describer.Describe(ctx, &interfaces.DescribeInput{
		Data:     input.Data,
		MIMEType: input.MIMEType,
	})
}
