package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".tsgen.yml"

type Config struct {
	SpaceID      string   `mapstructure:"space"`
	Token        string   `mapstructure:"token"`
	Environment  string   `mapstructure:"environment"`
	Preview      bool     `mapstructure:"preview"`
	Output       string   `mapstructure:"output"`
	Namespace    string   `mapstructure:"namespace"`
	Source       string   `mapstructure:"source"`
	File         string   `mapstructure:"file"`
	DatabaseURL  string   `mapstructure:"database_url"`
	DBSchema     string   `mapstructure:"db_schema"`
	Repo         string   `mapstructure:"repo"`
	Ref          string   `mapstructure:"ref"`
	Path         string   `mapstructure:"path"`
	GitHubToken  string   `mapstructure:"github_token"`
	ContentTypes []string `mapstructure:"content_types"`
	Verbose      bool     `mapstructure:"verbose"`
}

var envKeys = []struct {
	env string
	key string
}{
	{"CONTENTFUL_SPACE_ID", "space"},
	{"CONTENTFUL_ACCESS_TOKEN", "token"},
	{"CONTENTFUL_ENVIRONMENT", "environment"},
	{"DATABASE_URL", "database_url"},
	{"GITHUB_TOKEN", "github_token"},
	{"GH_TOKEN", "github_token"},
}

// loadConfig merges, lowest first: defaults, config file, environment
// (.env included) and the flags set on the command line.
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	values := map[string]interface{}{
		"source": "contentful",
		"path":   "",
	}

	configPath, _ := flags.GetString("config")
	fileValues, err := readConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	mergeMaps(values, fileValues)
	mergeMaps(values, envValues())
	mergeMaps(values, flagValues(flags))

	return decodeConfig(values)
}

func readConfigFile(path string) (map[string]interface{}, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return map[string]interface{}{}, nil
		}
		return nil, errors.Wrap(err, "failed to read config")
	}

	values, err := parseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return values, nil
}

func parseConfig(data []byte) (map[string]interface{}, error) {
	values := make(map[string]interface{})

	err := yaml.Unmarshal(data, &values)
	if err != nil {
		values = make(map[string]interface{})
		if jsonErr := json.Unmarshal(data, &values); jsonErr != nil {
			return nil, err
		}
	}

	return values, nil
}

func envValues() map[string]interface{} {
	values := make(map[string]interface{})
	for _, e := range envKeys {
		if v := os.Getenv(e.env); v != "" {
			if _, ok := values[e.key]; !ok {
				values[e.key] = v
			}
		}
	}
	return values
}

func flagValues(flags *pflag.FlagSet) map[string]interface{} {
	values := make(map[string]interface{})
	flags.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			values[key] = sv.GetSlice()
			return
		}
		values[key] = f.Value.String()
	})
	return values
}

func decodeConfig(values map[string]interface{}) (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}
	err = decoder.Decode(values)
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Source {
	case "contentful":
		if c.SpaceID == "" {
			return errors.New("space id must be specified")
		}
		if c.Token == "" {
			return errors.New("cdn token must be specified")
		}
	case "file":
		if c.File == "" {
			return errors.New("file must be specified")
		}
	case "pg":
		if c.DatabaseURL == "" {
			return errors.New("database url must be specified")
		}
	case "github":
		if _, _, err := c.ownerRepo(); err != nil {
			return err
		}
	default:
		return errors.New(fmt.Sprintf("unknown source: %s", c.Source))
	}
	return nil
}

func (c *Config) ownerRepo() (string, string, error) {
	s := strings.Split(c.Repo, "/")
	if len(s) != 2 || len(s[0]) == 0 || len(s[1]) == 0 {
		return "", "", errors.New(fmt.Sprintf("incorrect repo: %q, expected owner/name", c.Repo))
	}
	return s[0], s[1], nil
}

func mergeMaps[M ~map[K]V, K comparable, V any](dst M, src M) {
	for k, v := range src {
		dst[k] = v
	}
}
