package cli

import (
	"context"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/atelier/pkg/cli/config"
)

func listCommand() *cli.Command {
	var (
		settingsPath string

		githubCfg    config.GitHub
		describerCfg config.Describer
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Print the gallery manifest",
		Flags: slice.Flatten([]cli.Flag{
			settingsPathFlag(&settingsPath),
		}, githubCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, _, err := newUseCase(ctx, &githubCfg, &describerCfg, settingsPath, true)
			if err != nil {
				return err
			}

			manifest, err := uc.FetchManifest(ctx)
			if err != nil {
				return err
			}

			return printJSON(manifest)
		},
	}
}
