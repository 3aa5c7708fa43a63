package sheetrange

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk form of extraction settings.
type Config struct {
	Mode              string `yaml:"mode"`
	IncludeLinks      *bool  `yaml:"include_links"`
	IncludePrintAreas *bool  `yaml:"include_print_areas"`
	Pretty            bool   `yaml:"pretty"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Mark(errors.Wrap(err, "parse config"), ErrInvalidConfig)
	}
	if cfg.Mode != "" {
		if _, err := ParseMode(cfg.Mode); err != nil {
			return nil, errors.Mark(err, ErrInvalidConfig)
		}
	}
	return &cfg, nil
}

// Options converts the config into extraction options.
func (c *Config) Options() Options {
	opts := DefaultOptions()
	if c.Mode != "" {
		opts.Mode = Mode(c.Mode)
	}
	opts.IncludeLinks = c.IncludeLinks
	opts.IncludePrintAreas = c.IncludePrintAreas
	return opts
}
