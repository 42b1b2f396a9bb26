package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	apiURL        = "cdn.contentful.com"
	defaultOutput = "contentful.d.ts"
)

var rootCmd = &cobra.Command{
	Use:           "tsgen",
	Short:         "typescript definitions for contentful content types",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("space", "s", "", "cf space id")
	rootCmd.PersistentFlags().StringP("token", "t", "", "cdn token")
	rootCmd.PersistentFlags().StringP("environment", "e", "", "cf environment id")
	rootCmd.PersistentFlags().Bool("preview", false, "use the preview api")
	rootCmd.PersistentFlags().String("source", "contentful", "content model source: <contentful|file|pg|github>")
	rootCmd.PersistentFlags().String("file", "", "content types json file (file source)")
	rootCmd.PersistentFlags().String("database-url", "", "database url (pg source)")
	rootCmd.PersistentFlags().String("db-schema", "", "database schema name (pg source)")
	rootCmd.PersistentFlags().String("repo", "", "owner/name of the repository (github source)")
	rootCmd.PersistentFlags().String("ref", "", "branch, tag or sha (github source)")
	rootCmd.PersistentFlags().String("path", "", "content types path in the repository (github source)")
	rootCmd.PersistentFlags().String("github-token", "", "github token (github source)")
	rootCmd.PersistentFlags().StringSlice("content-types", nil, "only these content type ids")
	rootCmd.PersistentFlags().String("config", "", "config file (default "+defaultConfigFile+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
