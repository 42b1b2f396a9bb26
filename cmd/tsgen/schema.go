package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/moonwalker/tsgen"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Prints the intermediate json schema of the content types",

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

		types, err := source.ContentTypes(ctx)
		if err != nil {
			return err
		}

		root, err := tsgen.NewAssembler(tsgen.BuiltIns).Assemble(types)
		if err != nil {
			return err
		}

		b, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(b))
		return nil
	},
}
