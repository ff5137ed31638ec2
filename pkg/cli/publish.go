package cli

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/atelier/pkg/cli/config"
	"github.com/secmon-lab/atelier/pkg/domain/model"
)

func publishCommand() *cli.Command {
	var (
		file         string
		title        string
		description  string
		medium       string
		tags         []string
		describe     bool
		settingsPath string

		githubCfg    config.GitHub
		describerCfg config.Describer
	)

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Upload an image and publish it to the gallery",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"i"},
				Usage:       "Path to the image file",
				Required:    true,
				Destination: &file,
			},
			&cli.StringFlag{
				Name:        "title",
				Usage:       "Artwork title (drafted by --describe if empty)",
				Destination: &title,
			},
			&cli.StringFlag{
				Name:        "description",
				Usage:       "Artwork description",
				Destination: &description,
			},
			&cli.StringFlag{
				Name:        "medium",
				Usage:       "Artwork medium, e.g. 'Oil on canvas'",
				Destination: &medium,
			},
			&cli.StringSliceFlag{
				Name:        "tag",
				Usage:       "Artwork tag (repeatable)",
				Destination: &tags,
			},
			&cli.BoolFlag{
				Name:        "describe",
				Usage:       "Draft missing metadata with the configured AI model",
				Destination: &describe,
			},
			settingsPathFlag(&settingsPath),
		}, githubCfg.Flags(), describerCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, _, err := newUseCase(ctx, &githubCfg, &describerCfg, settingsPath, true)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(filepath.Clean(file))
			if err != nil {
				return goerr.Wrap(err, "failed to read image file", goerr.V("file", file))
			}

			mimeType := mime.TypeByExtension(filepath.Ext(file))
			if mimeType == "" {
				mimeType = http.DetectContentType(data)
			}
			upload := &model.UploadInput{
				Filename: filepath.Base(file),
				Data:     data,
				MIMEType: mimeType,
			}

			input := &model.PublishInput{
				Title:       title,
				Description: description,
				Medium:      medium,
				Tags:        tags,
			}

			if describe {
				meta, err := uc.DescribeImage(ctx, upload)
				if err != nil {
					return err
				}
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

			url, err := uc.UploadAsset(ctx, upload)
			if err != nil {
				return err
			}
			input.ImageURL = url

			artwork, err := uc.PublishArtwork(ctx, input)
			if err != nil {
				return err
			}

			return printJSON(artwork)
		},
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to print result")
	}
	return nil
}
