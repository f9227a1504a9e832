package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/lamargherita/go-storefront/app/configs"
	"github.com/lamargherita/go-storefront/app/db/seeders"
	"github.com/lamargherita/go-storefront/app/utils/format"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "menu",
				Usage: "Print the seeded menu with option groups and prices",
				Action: func(ctx context.Context, c *cli.Command) error {
					for _, product := range seeders.Products() {
						fmt.Printf("%s  %s  [%s]\n", product.ID, product.Name, format.USD(product.BasePrice))
						for _, tier := range product.PriceTiers {
							fmt.Printf("    size %-20s %s\n", tier.Label, format.USD(tier.Price))
						}
						for _, group := range product.OptionGroups {
							fmt.Printf("  %s (required=%v multiple=%v max=%d)\n",
								group.Title, group.Required, group.Multiple, group.MaxSelections)
							for _, opt := range group.Options {
								fmt.Printf("    %-25s %s\n", opt.Name, format.USD(opt.Price))
							}
						}
					}
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate a new session authentication key for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
