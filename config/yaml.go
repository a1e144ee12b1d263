package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads gridWidth/gridHeight/maxClients and the rest of Config's
// fields from a YAML document. Missing fields keep their DefaultConfig()
// value.
func LoadYAML(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
