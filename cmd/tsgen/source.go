package main

import (
	"context"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moonwalker/tsgen"
)

// setup loads and validates the config shared by every command.
func setup(cmd *cobra.Command) (*Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	err = promptMissing(cfg)
	if err != nil {
		return nil, nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(cfg.Verbose), nil
}

func newClient(cfg *Config, log *zap.Logger) *tsgen.Client {
	client := tsgen.NewClient(&tsgen.ClientOptions{
		CdnURL:        cdnURL(cfg),
		SpaceID:       cfg.SpaceID,
		EnvironmentID: cfg.Environment,
		CdnToken:      cfg.Token,
		Preview:       cfg.Preview,
	})
	client.AfterRequest = logRequest(log)
	return client
}

func cdnURL(cfg *Config) string {
	if cfg.Preview {
		return ""
	}
	return apiURL
}

func newSource(ctx context.Context, cfg *Config, log *zap.Logger) (tsgen.Source, error) {
	switch cfg.Source {
	case "file":
		return filtered(tsgen.NewFileSource(cfg.File), cfg), nil
	case "pg":
		src := tsgen.NewPGSource(cfg.DatabaseURL, cfg.DBSchema)
		src.ContentTypeIDs = cfg.ContentTypes
		return src, nil
	case "github":
		owner, repo, err := cfg.ownerRepo()
		if err != nil {
			return nil, err
		}
		return filtered(tsgen.NewGitHubSource(ctx, cfg.GitHubToken, owner, repo, cfg.Ref, cfg.Path), cfg), nil
	}
	return filtered(tsgen.NewContentfulSource(newClient(cfg, log)), cfg), nil
}

func filtered(src tsgen.Source, cfg *Config) tsgen.Source {
	if len(cfg.ContentTypes) == 0 {
		return src
	}
	return tsgen.NewFilteredSource(src, cfg.ContentTypes...)
}

// outputPath falls back to the slug of the space name for contentful sources.
func outputPath(ctx context.Context, cfg *Config, log *zap.Logger) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	if cfg.Source != "contentful" {
		return defaultOutput
	}

	log.Info("get space...")
	space, err := newClient(cfg, log).Spaces.GetSpace(ctx)
	if err != nil {
		log.Warn("get space failed, using default output", zap.Error(err))
		return defaultOutput
	}
	log.Info("get space done")

	name := slug.Make(space.Name)
	if name == "" {
		name = slug.Make(cfg.SpaceID)
	}
	if name == "" {
		return defaultOutput
	}
	return name + ".d.ts"
}
