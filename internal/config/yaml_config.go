package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"genderdecoder/internal/coder"
)

// YAMLConfig represents the structure of the config.yaml file.
// Word list additions and copy overrides are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Lexicons     LexiconsConfig    `yaml:"lexicons"`
	Explanations map[string]string `yaml:"explanations"` // coding -> text shown on the results page
}

// LexiconsConfig extends the masculine and feminine word lists.
type LexiconsConfig struct {
	ExtraMasculine []string `yaml:"extra_masculine"`
	ExtraFeminine  []string `yaml:"extra_feminine"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration at path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ExtraMasculine returns words to append to the masculine lexicon.
func (c *YAMLConfig) ExtraMasculine() []string {
	if c == nil {
		return nil
	}
	return c.Lexicons.ExtraMasculine
}

// ExtraFeminine returns words to append to the feminine lexicon.
func (c *YAMLConfig) ExtraFeminine() []string {
	if c == nil {
		return nil
	}
	return c.Lexicons.ExtraFeminine
}

// Explanation returns the configured override for a coding, if any.
func (c *YAMLConfig) Explanation(coding string) (string, bool) {
	if c == nil || c.Explanations == nil {
		return "", false
	}
	text, ok := c.Explanations[coding]
	return text, ok && text != ""
}

// Explain returns the text shown for a coding, preferring the configured
// override over the built-in copy.
func (c *YAMLConfig) Explain(coding coder.Coding) string {
	if text, ok := c.Explanation(string(coding)); ok {
		return text
	}
	return coder.Explanation(coding)
}
