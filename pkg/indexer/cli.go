package indexer

import (
	"context"

	"github.com/farebox/farebox/pkg/database"
	"github.com/farebox/farebox/pkg/refdata"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "indexer",
		Usage: "Maintains the derived lookup collections",
		Subcommands: []*cli.Command{
			{
				Name:  "passenger-subcategories",
				Usage: "rebuild the passenger subcategory lookup index",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					indexed, err := refdata.RebuildSubcategoryIndex(context.Background())
					if err != nil {
						return err
					}

					log.Info().Int("indexed", indexed).Msg("Rebuilt passenger subcategory index")

					return nil
				},
			},
		},
	}
}
