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
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/richtypo/cmd/richtypo/opts"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [text...]",
		Short: "Format text and print the result",
		Long: `Apply formats the given text, or standard input when no text is given,
with the configured locale rules and writes the result to standard output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())

			p, _, err := opts.Pipeline(ctx)
			if err != nil {
				return err
			}

			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ") + "\n"
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Errorf("reading input: %w", err)
				}
				text = string(data)
			}

			if _, err := io.WriteString(cmd.OutOrStdout(), p.Run(ctx, text)); err != nil {
				return errors.Errorf("writing output: %w", err)
			}
			return nil
		},
	}

	return cmd
}
