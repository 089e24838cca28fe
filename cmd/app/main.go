package main

import (
	"context"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"dronedash/cmd"
	"dronedash/internal/adapters/in/cli"
	"dronedash/internal/generator"
)

func main() {
	var (
		seedFlag  int64
		poolsFlag string
	)

	root := &cobra.Command{
		Use:           "dronedash",
		Short:         "Interactive dispatch console for a delivery drone fleet",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			configs := cmd.LoadConfig()
			if c.Flags().Changed("seed") {
				configs.RandSeed = seedFlag
			}
			if c.Flags().Changed("pools") {
				configs.PoolsFile = poolsFlag
			}

			pools := generator.DefaultPools()
			if configs.PoolsFile != "" {
				loaded, err := generator.LoadPools(configs.PoolsFile)
				if err != nil {
					return err
				}
				pools = loaded
			}

			gen, err := generator.NewRandomOrderGenerator(pools, configs.RandSeed)
			if err != nil {
				return err
			}

			app, err := cmd.NewCompositionRoot(configs)
			if err != nil {
				return err
			}

			console := cli.NewApp(os.Stdin, os.Stdout, gen, app.CreateConsoleHandlers())
			return console.Run(context.Background())
		},
	}

	root.Flags().Int64Var(&seedFlag, "seed", 0, "random seed for the order generator")
	root.Flags().StringVar(&poolsFlag, "pools", "", "YAML file overriding the generator pools")

	if err := root.Execute(); err != nil {
		log.Fatalf("dronedash: %v", err)
	}
}
