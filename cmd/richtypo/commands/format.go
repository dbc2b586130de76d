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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/richtypo/cmd/richtypo/opts"
	"github.com/walteh/richtypo/pkg/log"
)

// NewFormatCmd creates a new format command
func NewFormatCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format the configured files",
		Long: `Format applies the locale rules to every file selected by the config.
It will:
1. Load the config and build the pipeline
2. Match files against the files and exclude patterns
3. Format each file, skipping markup, code and comments
4. Write changed files in place, or into the output directory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "format").Logger().WithContext(cmd.Context())

			level := zerolog.InfoLevel
			if opts.Debug {
				level = zerolog.DebugLevel
			}
			console := log.New(cmd.OutOrStdout(), level)

			report, err := runFiles(ctx, opts, console, false)
			if err != nil {
				return err
			}

			printer := opts.Printer(ctx, cmd.OutOrStdout())
			for _, f := range report.Failed() {
				printer.LogChange(log.Change{Type: log.FileError, Path: f.Path, Error: f.Error})
			}
			printer.LogSummary(summary(report, "formatted"))

			return report.Err()
		},
	}

	return cmd
}
