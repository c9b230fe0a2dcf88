package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file for the render command.
// Unset fields keep the command defaults; flags override the file.
type Config struct {
	MaxWidth    *int   `yaml:"max_width"`
	BytesAsText *bool  `yaml:"bytes_as_text"`
	Input       string `yaml:"input"`
}

// loadConfig reads and strictly decodes the config file at path.
func loadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
