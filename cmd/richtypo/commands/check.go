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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/richtypo/cmd/richtypo/opts"
	"github.com/walteh/richtypo/pkg/log"
	"github.com/walteh/richtypo/pkg/status"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report files that formatting would change",
		Long: `Check runs the pipeline over the configured files without writing anything.
It exits with a non-zero status when any file would change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())

			report, err := runFiles(ctx, opts, nil, true)
			if err != nil {
				return err
			}

			printer := opts.Printer(ctx, cmd.OutOrStdout())
			for _, f := range report.Files {
				switch f.Status {
				case status.StatusWouldChange:
					printer.LogChange(log.Change{Type: log.FileWouldChange, Path: f.Path, Description: fmt.Sprintf("%+d bytes", f.Delta)})
				case status.StatusFailed:
					printer.LogChange(log.Change{Type: log.FileError, Path: f.Path, Error: f.Error})
				default:
					printer.LogChange(log.Change{Type: log.FileUnchanged, Path: f.Path})
				}
			}

			if err := report.Err(); err != nil {
				return err
			}
			if n := len(report.Changed()); n > 0 {
				printer.LogValidation(false, summary(report, "would change"), nil)
				return errors.Errorf("%d files: %w", n, ErrWouldChange)
			}
			printer.LogValidation(true, fmt.Sprintf("%d files already formatted", len(report.Files)), nil)
			return nil
		},
	}

	return cmd
}
