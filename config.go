// Optional YAML defaults file for batch runs.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

var errConfigParse = errors.New("failed to parse config")

// fileConfig mirrors the YAML defaults file. Explicitly-set command-line
// flags always win over values from this file.
type fileConfig struct {
	Report  string `yaml:"report"` // JSON report output path
	Suffix  string `yaml:"suffix"` // output filename suffix
	Silent  bool   `yaml:"silent"`
	Verbose bool   `yaml:"verbose"`
}

// loadConfig reads and parses a YAML defaults file.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errConfigParse, err)
	}
	return &cfg, nil
}
