package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the subset of cgm.Options a user can pin in a config
// file rather than repeating on every invocation.
type fileConfig struct {
	VdcMode              string `yaml:"vdc_mode"`
	WrapColumn           int    `yaml:"wrap_column"`
	EmitUnknownAsComment bool   `yaml:"emit_unknown_as_comment"`
}

func loadConfig(path string) (fileConfig, error) {
	cfg := fileConfig{WrapColumn: 80, EmitUnknownAsComment: true}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
