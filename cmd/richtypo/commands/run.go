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

package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/richtypo/cmd/richtypo/opts"
	"github.com/walteh/richtypo/pkg/log"
	"github.com/walteh/richtypo/pkg/operation"
)

// ErrWouldChange is returned by check when formatting would change files.
var ErrWouldChange = errors.New("files need formatting")

// runFiles formats, or checks, the files selected by the config
func runFiles(ctx context.Context, o *opts.RootOpts, console *log.Logger, check bool) (*operation.Report, error) {
	p, cfg, err := o.Pipeline(ctx)
	if err != nil {
		return nil, err
	}

	output := opts.OutputDir(cfg)
	if console != nil {
		console.StartRun(ctx, log.RunInfo{
			Locale: cfg.Locale,
			Rules:  cfg.Rules,
			Root:   cfg.Root(),
			Output: output,
			Check:  check,
		})
		defer console.EndRun(ctx)
	}

	runner, err := operation.New(operation.Options{
		Root:        cfg.Root(),
		Files:       cfg.Files,
		Exclude:     cfg.Exclude,
		Output:      output,
		Concurrency: cfg.Concurrency,
		Check:       check,
		Formatter:   p,
		Logger:      console,
	})
	if err != nil {
		return nil, errors.Errorf("creating runner: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Bool("check", check).Msg("running")

	report, err := runner.Run(ctx)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func summary(report *operation.Report, verb string) string {
	return fmt.Sprintf("%d of %d files %s, %d failed", len(report.Changed()), len(report.Files), verb, len(report.Failed()))
}
