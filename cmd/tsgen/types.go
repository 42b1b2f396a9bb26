package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/moonwalker/tsgen"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List all content types",

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

		printTypes(os.Stdout, types)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func printTypes(w io.Writer, types []*tsgen.ContentType) {
	for _, item := range types {
		fmt.Fprintln(w, item.ID())
		for _, field := range item.Fields {
			if field == nil {
				continue
			}
			line := fmt.Sprintf("- %s: %s", field.ID, field.Type)
			if field.Omitted {
				line += " (omitted)"
			}
			fmt.Fprintln(w, line)
			if target := itemsLinkType(field); target != "" {
				fmt.Fprintln(w, "--- "+target)
			}
		}
	}
}

// itemsLinkType is the first content type array items may link to.
func itemsLinkType(field *tsgen.ContentTypeField) string {
	if field.Items == nil {
		return ""
	}
	for _, v := range field.Items.Validations {
		if v != nil && len(v.LinkContentType) > 0 {
			return v.LinkContentType[0]
		}
	}
	return ""
}
