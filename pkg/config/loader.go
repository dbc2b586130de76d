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
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// FileName is the extensionless config file name; it may hold YAML or HCL.
const FileName = ".richtypo"

// Candidates are the file names Find looks for, in order.
var Candidates = []string{
	".richtypo.yaml",
	".richtypo.yml",
	".richtypo.json",
	".richtypo.hcl",
	FileName,
}

// LoadConfig loads a configuration file from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// - .richtypo will try both YAML and HCL formats
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(ctx, data, path)
	if err != nil {
		return nil, err
	}

	cfg.location = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Parse decodes data with the parser matching filename.
func Parse(ctx context.Context, data []byte, filename string) (*Config, error) {
	// extensionless files may be YAML or HCL
	if filepath.Base(filename) == FileName {
		cfg, yerr := (&YAMLParser{}).Parse(ctx, data, filename)
		if yerr == nil {
			return cfg, nil
		}
		cfg, herr := (&HCLParser{}).Parse(ctx, data, filename)
		if herr == nil {
			return cfg, nil
		}
		return nil, errors.Errorf("failed to parse %s as YAML (%v) or HCL: %w", FileName, yerr, herr)
	}

	p := GetParser(filename)
	if p == nil {
		return nil, errors.Errorf("unsupported file extension %q", strings.ToLower(filepath.Ext(filename)))
	}
	return p.Parse(ctx, data, filename)
}

// Find returns the first config candidate present in dir.
func Find(dir string) (string, bool) {
	for _, name := range Candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
