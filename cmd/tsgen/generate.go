package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/moonwalker/tsgen"
)

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output file (default <space-name>.d.ts)")
	generateCmd.Flags().StringP("namespace", "n", "", "wrap the definitions in this namespace")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generates typescript definitions from content types",

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := cmd.Context()
		source, err := newSource(ctx, cfg, log)
		if err != nil {
			return err
		}

		err = tsgen.Generate(ctx, tsgen.GenerateOptions{
			Source:    source,
			Output:    outputPath(ctx, cfg, log),
			Namespace: cfg.Namespace,
			Logger:    log,
		})
		if err != nil {
			return err
		}

		color.Green("TypeScript Definitions were successfully created!")
		return nil
	},
}
