package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/titulus/outline"
)

// fileConfig is the YAML shape of the optional config file. Every field
// overrides one engine or run setting; absent fields keep defaults.
type fileConfig struct {
	Workers  int    `yaml:"workers"`
	Language string `yaml:"language"`

	HeadingSizeFactor  float64 `yaml:"heading_size_factor"`
	HeaderFooterMargin float64 `yaml:"header_footer_margin"`
	MaxLevels          int     `yaml:"max_levels"`
	TitleMaxWords      int     `yaml:"title_max_words"`
	HeadingMaxTokens   int     `yaml:"heading_max_tokens"`
	MergeMaxGapRatio   float64 `yaml:"merge_max_gap_ratio"`
}

// loadConfig reads the YAML file and applies it over the engine
// defaults. An empty path yields pure defaults.
func loadConfig(path string) (fileConfig, outline.Config, error) {
	var fc fileConfig
	engine := outline.DefaultConfig()

	if path == "" {
		return fc, engine, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, engine, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, engine, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.HeadingSizeFactor > 0 {
		engine.HeadingSizeFactor = fc.HeadingSizeFactor
	}
	if fc.HeaderFooterMargin > 0 {
		engine.HeaderFooterMargin = fc.HeaderFooterMargin
	}
	if fc.MaxLevels > 0 {
		engine.MaxLevels = fc.MaxLevels
	}
	if fc.TitleMaxWords > 0 {
		engine.TitleMaxWords = fc.TitleMaxWords
	}
	if fc.HeadingMaxTokens > 0 {
		engine.HeadingMaxTokens = fc.HeadingMaxTokens
	}
	if fc.MergeMaxGapRatio > 0 {
		engine.MergeMaxGapRatio = fc.MergeMaxGapRatio
	}
	return fc, engine, nil
}
