package cli

import (
	"context"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/atelier/pkg/cli/config"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

func deleteCommand() *cli.Command {
	var (
		id           string
		settingsPath string

		githubCfg    config.GitHub
		describerCfg config.Describer
	)

	return &cli.Command{
		Name:    "delete",
		Aliases: []string{"d"},
		Usage:   "Remove an artwork from the gallery",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "id",
				Usage:       "Artwork ID to remove",
				Required:    true,
				Destination: &id,
			},
			settingsPathFlag(&settingsPath),
		}, githubCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, _, err := newUseCase(ctx, &githubCfg, &describerCfg, settingsPath, true)
			if err != nil {
				return err
			}

			result, err := uc.DeleteArtwork(ctx, types.ArtworkID(id))
			if err != nil {
				return err
			}

			return printJSON(result)
		},
	}
}
