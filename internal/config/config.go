// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

// Package config loads application configuration with layered precedence:
// built-in defaults, then an optional YAML file, then COURSELAB_*
// environment variables. Environment keys nest with double underscores,
// e.g. COURSELAB_STORE__PATH overrides store.path.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/courselab/courselab-go/internal/recommend"
	"github.com/courselab/courselab-go/internal/validation"
)

const envPrefix = "COURSELAB_"

// Config is the root application configuration.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging" json:"logging"`
	Store     StoreConfig     `koanf:"store" json:"store"`
	Catalog   CatalogConfig   `koanf:"catalog" json:"catalog"`
	Recommend RecommendConfig `koanf:"recommend" json:"recommend"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum level to emit.
	Level string `koanf:"level" json:"level" validate:"oneof=trace debug info warn error"`

	// Format selects console or JSON output.
	Format string `koanf:"format" json:"format" validate:"oneof=console json"`
}

// StoreConfig controls progress persistence.
type StoreConfig struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string `koanf:"path" json:"path"`

	// InMemory switches to an ephemeral store.
	InMemory bool `koanf:"in_memory" json:"in_memory"`
}

// CatalogConfig locates the content catalog.
type CatalogConfig struct {
	// Path is the catalog JSON file.
	Path string `koanf:"path" json:"path" validate:"required"`
}

// RecommendConfig exposes the engine knobs worth tuning per deployment.
// Everything else keeps the engine defaults.
type RecommendConfig struct {
	IntermediatePoints int     `koanf:"intermediate_points" json:"intermediate_points" validate:"min=1"`
	AdvancedPoints     int     `koanf:"advanced_points" json:"advanced_points" validate:"min=1"`
	DefaultMaxResults  int     `koanf:"default_max_results" json:"default_max_results" validate:"min=1"`
	MaxResults         int     `koanf:"max_results" json:"max_results" validate:"min=1"`
	EMAAlpha           float64 `koanf:"ema_alpha" json:"ema_alpha" validate:"gt=0,lt=1"`
	OverlapPenalty     float64 `koanf:"overlap_penalty" json:"overlap_penalty" validate:"min=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	ec := recommend.DefaultConfig()
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Store: StoreConfig{
			Path: "data/progress",
		},
		Catalog: CatalogConfig{
			Path: "data/catalog.json",
		},
		Recommend: RecommendConfig{
			IntermediatePoints: ec.Skill.IntermediatePoints,
			AdvancedPoints:     ec.Skill.AdvancedPoints,
			DefaultMaxResults:  ec.Limits.DefaultMaxResults,
			MaxResults:         ec.Limits.MaxResults,
			EMAAlpha:           ec.Update.EMAAlpha,
			OverlapPenalty:     ec.Diversity.OverlapPenalty,
		},
	}
}

// Load builds the configuration from defaults, the optional file at path,
// and the environment. An empty path skips the file layer; a named file
// that does not exist is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validation.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// envKey maps COURSELAB_STORE__IN_MEMORY to store.in_memory: the double
// underscore nests, single underscores stay part of the key.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

// EngineConfig projects the tunable knobs onto a full engine configuration.
func (c *Config) EngineConfig() *recommend.Config {
	ec := recommend.DefaultConfig()
	ec.Skill.IntermediatePoints = c.Recommend.IntermediatePoints
	ec.Skill.AdvancedPoints = c.Recommend.AdvancedPoints
	ec.Limits.DefaultMaxResults = c.Recommend.DefaultMaxResults
	ec.Limits.MaxResults = c.Recommend.MaxResults
	ec.Update.EMAAlpha = c.Recommend.EMAAlpha
	ec.Diversity.OverlapPenalty = c.Recommend.OverlapPenalty
	return ec
}
