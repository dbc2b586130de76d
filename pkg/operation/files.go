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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Match returns the files under root selected by files and not by exclude,
// as sorted slash separated paths relative to root.
func Match(ctx context.Context, root string, files, exclude []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	fsys := os.DirFS(root)

	seen := make(map[string]struct{})
	for _, pattern := range files {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("matching %q in %s: %w", pattern, root, err)
		}
		for _, m := range matches {
			if excluded(logger, m, exclude) {
				continue
			}
			seen[m] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

func excluded(logger *zerolog.Logger, path string, exclude []string) bool {
	for _, pattern := range exclude {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", path).Str("pattern", pattern).Msg("file excluded by pattern")
			return true
		}
	}
	return false
}

// outputExclude returns a pattern excluding output when it lies inside root.
func outputExclude(root, output string) (string, bool) {
	if output == "" {
		return "", false
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, absOutput)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel) + "/**", true
}
