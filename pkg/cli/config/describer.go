package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/infra/describer"
)

type Describer struct {
	apiKey types.OpenAIAPIKey `masq:"secret"`
	model  string
}

func (x *Describer) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key for metadata generation",
			Category:    "Describer",
			Sources:     cli.EnvVars("ATELIER_OPENAI_API_KEY"),
			Destination: (*string)(&x.apiKey),
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI model for metadata generation",
			Category:    "Describer",
			Sources:     cli.EnvVars("ATELIER_OPENAI_MODEL"),
			Destination: &x.model,
		},
	}
}

// New returns nil without error when no API key is configured; metadata
// generation is then unavailable but everything else works.
func (x *Describer) New() (interfaces.Describer, error) {
	if x.apiKey == "" {
		return nil, nil
	}

	var options []describer.Option
	if x.model != "" {
		options = append(options, describer.WithModel(x.model))
	}
	return describer.New(x.apiKey, options...)
}

func (x Describer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("APIKey.len", len(x.apiKey)),
		slog.String("Model", x.model),
	)
}
