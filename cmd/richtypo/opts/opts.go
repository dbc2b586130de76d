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

package opts

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/richtypo/pkg/config"
	"github.com/walteh/richtypo/pkg/log"
	"github.com/walteh/richtypo/pkg/typo"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// ConfigFile is an explicit config path. When empty the working
	// directory is searched for one of config.Candidates.
	ConfigFile string
	Debug      bool
	// Locale and Rules override the config file
	Locale string
	Rules  []string

	UserLogger *log.UserLogger
}

// 📚 LoadConfig loads the config file, if any, and applies the flag overrides
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	logger := zerolog.Ctx(ctx)

	path := o.ConfigFile
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Errorf("getting working directory: %w", err)
		}
		if found, ok := config.Find(wd); ok {
			path = found
		}
	}

	cfg := &config.Config{}
	if path != "" {
		logger.Debug().Str("path", path).Msg("loading config")
		loaded, err := config.LoadConfig(ctx, path)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if o.Locale != "" {
		cfg.Locale = o.Locale
	}
	if len(o.Rules) > 0 {
		cfg.Rules = o.Rules
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔧 Pipeline builds the pipeline selected by the config and flags
func (o *RootOpts) Pipeline(ctx context.Context) (*typo.Pipeline, *config.Config, error) {
	cfg, err := o.LoadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	p, err := cfg.Pipeline(ctx)
	if err != nil {
		return nil, nil, errors.Errorf("building pipeline: %w", err)
	}
	return p, cfg, nil
}

// OutputDir resolves the config's output directory against its root.
func OutputDir(cfg *config.Config) string {
	if cfg.Output == "" || filepath.IsAbs(cfg.Output) {
		return cfg.Output
	}
	return filepath.Join(cfg.Root(), cfg.Output)
}

// Printer returns the user logger, creating one writing to out if needed.
func (o *RootOpts) Printer(ctx context.Context, out io.Writer) *log.UserLogger {
	if o.UserLogger == nil {
		o.UserLogger = log.NewUserLogger(ctx, out)
	}
	return o.UserLogger
}
