// Package config handles loading and saving user configuration for jimaku.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"jimaku/internal/filter"
	"jimaku/internal/token"
)

// Config holds all user configuration.
type Config struct {
	Tokenizer  Tokenizer  `yaml:"tokenizer"`
	Phonetic   Phonetic   `yaml:"phonetic"`
	Dictionary Dictionary `yaml:"dictionary"`
	Filter     Filter     `yaml:"filter"`
	Log        Log        `yaml:"log"`
}

// Tokenizer selects the analyzer dictionary and segmentation mode.
type Tokenizer struct {
	Dict string `yaml:"dict"` // "ipa" or "uni"
	Mode string `yaml:"mode"` // "normal", "search" or "extended"
}

// Phonetic selects the output script of phonetic renderings.
type Phonetic struct {
	Script string `yaml:"script"` // "hiragana", "katakana" or "romaji"
}

// Dictionary points at the translation dictionary.
type Dictionary struct {
	Path string `yaml:"path"` // JMdict XML file, optionally gzipped; empty disables lookups
}

// Filter holds the uncompiled filter rules as they appear in the file.
type Filter struct {
	Rules         map[string]string `yaml:"rules"`          // part-of-speech category -> action
	ExcludeLemmas []string          `yaml:"exclude_lemmas"` // dictionary forms always left alone
	JapaneseOnly  bool              `yaml:"japanese_only"`  // leave tokens containing foreign script alone
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn" or "error"
	Format string `yaml:"format"` // "text" or "json"
	File   string `yaml:"file"`   // log file path; empty logs to stderr
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Tokenizer: Tokenizer{Dict: "ipa", Mode: "normal"},
		Phonetic:  Phonetic{Script: "hiragana"},
		Filter: Filter{
			Rules: map[string]string{
				"noun":        "suggest",
				"verb":        "suggest",
				"adjective":   "suggest",
				"adverb":      "phonetic",
				"proper-noun": "phonetic",
			},
			ExcludeLemmas: []string{"くる", "いう"},
			JapaneseOnly:  true,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Compile turns the file-level filter section into the engine configuration,
// validating category and action names.
func (f Filter) Compile() (filter.Config, error) {
	rules := make(map[token.Category]token.Action, len(f.Rules))
	for name, action := range f.Rules {
		cat, ok := token.ParseCategory(name)
		if !ok {
			return filter.Config{}, fmt.Errorf("filter rules: unknown category %q", name)
		}
		act, ok := token.ParseAction(action)
		if !ok {
			return filter.Config{}, fmt.Errorf("filter rules: unknown action %q for category %q", action, name)
		}
		rules[cat] = act
	}
	return filter.Config{
		Rules:         rules,
		ExcludeLemmas: filter.ExcludeSet(f.ExcludeLemmas),
		JapaneseOnly:  f.JapaneseOnly,
	}, nil
}

// Load reads a config file. Missing keys keep their default values. A
// filter.rules map in the file replaces the default rules outright; yaml
// would otherwise merge the two maps, leaving default rules active under a
// file that never mentions them.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if hasFilterRules(data) {
		cfg.Filter.Rules = nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// hasFilterRules reports whether the file defines the filter.rules key.
func hasFilterRules(data []byte) bool {
	var f struct {
		Filter struct {
			Rules map[string]string `yaml:"rules"`
		} `yaml:"filter"`
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return false
	}
	return f.Filter.Rules != nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jimaku"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
