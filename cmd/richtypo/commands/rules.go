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
	"strings"

	"github.com/spf13/cobra"

	"github.com/walteh/richtypo/cmd/richtypo/opts"
	"github.com/walteh/richtypo/pkg/locale"
)

// NewRulesCmd creates a new rules command
func NewRulesCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List locales, groups and rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := locale.IDs()
			if opts.Locale != "" {
				ids = []string{opts.Locale}
			}

			rows, err := ruleRows(ids)
			if err != nil {
				return err
			}
			return opts.Printer(cmd.Context(), cmd.OutOrStdout()).LogTable(rows)
		},
	}

	return cmd
}

// ruleRows lists what every name of each locale selects
func ruleRows(ids []string) ([][]string, error) {
	rows := [][]string{{"Locale", "Kind", "Name", "Selects"}}
	for _, id := range ids {
		l, err := locale.Get(id)
		if err != nil {
			return nil, err
		}
		def := l.Definition()

		rows = append(rows, []string{id, "group", locale.All, strings.Join(def.All, ", ")})
		for _, g := range def.Groups {
			name := g.Name
			if len(g.Aliases) > 0 {
				name += " (" + strings.Join(g.Aliases, ", ") + ")"
			}
			rows = append(rows, []string{id, "group", name, strings.Join(g.Rules, ", ")})
		}
		for _, name := range l.Names() {
			rows = append(rows, []string{id, "rule", name, ""})
		}
	}
	return rows, nil
}
