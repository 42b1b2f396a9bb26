package main

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// promptMissing asks for the contentful credentials left unset, when a user
// is there to answer.
func promptMissing(cfg *Config) error {
	if cfg.Source != "contentful" || !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil
	}

	if cfg.SpaceID == "" {
		prompt := &survey.Input{
			Message: "Contentful space id:",
		}
		if err := survey.AskOne(prompt, &cfg.SpaceID, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if cfg.Token == "" {
		prompt := &survey.Password{
			Message: "Contentful delivery token:",
		}
		if err := survey.AskOne(prompt, &cfg.Token, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	return nil
}
