// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/richtypo/pkg/locale"
	"github.com/walteh/richtypo/pkg/rule"
	"github.com/walteh/richtypo/pkg/typo"
)

const (
	DefaultLocale      = "en"
	DefaultConcurrency = 4
)

// DefaultFiles is used when a config selects no files.
var DefaultFiles = []string{"**/*.html"}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes the config from bytes, without validating it
	Parse(ctx context.Context, data []byte, filename string) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ✏️ CustomRule is a project specific rule. Its steps may reference the
// locale's params with {{name}}.
type CustomRule struct {
	Name  string      `json:"name" yaml:"name" hcl:"name,label"`
	Steps []rule.Pair `json:"steps" yaml:"steps" hcl:"step,block"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Locale      string            `json:"locale,omitempty" yaml:"locale,omitempty" hcl:"locale,optional"`
	Rules       []string          `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rules,optional"`
	Params      map[string]string `json:"params,omitempty" yaml:"params,omitempty" hcl:"params,optional"`
	Custom      []CustomRule      `json:"custom,omitempty" yaml:"custom,omitempty" hcl:"custom,block"`
	Files       []string          `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"`
	Exclude     []string          `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Output      string            `json:"output,omitempty" yaml:"output,omitempty" hcl:"output,optional"`
	Concurrency int               `json:"concurrency,omitempty" yaml:"concurrency,omitempty" hcl:"concurrency,optional"`

	location string
}

// 🎯 Load reads, parses and validates the configuration at path
func Load(ctx context.Context, path string) (*Config, error) {
	return LoadConfig(ctx, path)
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	if len(cfg.Rules) == 0 {
		cfg.Rules = []string{locale.All}
	}
	if len(cfg.Files) == 0 {
		cfg.Files = append([]string(nil), DefaultFiles...)
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Concurrency < 0 {
		return errors.Errorf("concurrency must be positive, got %d", cfg.Concurrency)
	}

	l, err := locale.Get(cfg.Locale)
	if err != nil {
		return err
	}
	for _, name := range cfg.Rules {
		if !l.Has(name) {
			return &rule.ConfigurationError{Param: "rules", Err: errors.Errorf("%w %q in locale %q", locale.ErrUnknownName, name, cfg.Locale)}
		}
	}

	for i, c := range cfg.Custom {
		if c.Name == "" {
			return errors.Errorf("custom[%d].name is required", i)
		}
		if len(c.Steps) == 0 {
			return errors.Errorf("custom[%d].steps is required", i)
		}
	}

	for _, pattern := range append(append([]string(nil), cfg.Files...), cfg.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid glob pattern %q", pattern)
		}
	}

	if cfg.Output != "" {
		cfg.Output = filepath.Clean(cfg.Output)
	}

	return nil
}

// 🔧 Pipeline builds the configured pipeline: the selected locale rules,
// specialized with the param overrides, followed by the custom rules.
func (cfg *Config) Pipeline(ctx context.Context) (*typo.Pipeline, error) {
	l, err := locale.Get(cfg.Locale)
	if err != nil {
		return nil, err
	}

	if len(cfg.Params) > 0 {
		l, err = locale.Build(l.Definition().WithParams(cfg.Params))
		if err != nil {
			return nil, errors.Errorf("applying params to locale %q: %w", cfg.Locale, err)
		}
	}

	rules := cfg.Rules
	if len(rules) == 0 {
		rules = []string{locale.All}
	}
	base, err := l.Pipelines(rules...)
	if err != nil {
		return nil, err
	}

	set := rule.Set{base}
	for _, c := range cfg.Custom {
		r, err := rule.Template(c.Name, c.Steps...)(l.Definition().Params)
		if err != nil {
			return nil, errors.Errorf("building custom rule %q: %w", c.Name, err)
		}
		set = append(set, r)
	}

	p := typo.New(set)
	zerolog.Ctx(ctx).Debug().Str("locale", cfg.Locale).Strs("rules", p.Names()).Msg("built pipeline")
	return p, nil
}

// Root is the directory file patterns are resolved against: the directory
// the config was loaded from, or the working directory.
func (cfg *Config) Root() string {
	if cfg.location == "" {
		return "."
	}
	return filepath.Dir(cfg.location)
}

// Location is the path the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	s := fmt.Sprintf("%s[%s] %s", cfg.Locale, strings.Join(cfg.Rules, ","), strings.Join(cfg.Files, ","))
	if cfg.Output != "" {
		s += " -> " + cfg.Output
	}
	return s
}
