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

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/richtypo/cmd/richtypo/commands"
	"github.com/walteh/richtypo/cmd/richtypo/opts"
	"github.com/walteh/richtypo/pkg/log"
)

// newRootCmd creates the root command with every subcommand attached
func newRootCmd() (*cobra.Command, *opts.RootOpts) {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "richtypo",
		Short: "Typography for HTML: non-breaking spaces, quotes, dashes and more",
		Long: `richtypo applies locale specific typography rules to text and HTML.
Tags, comments and the contents of code, pre, style and script elements are
never modified.`,
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.Debug {
				log.EnableDebug()
			}
			o.Printer(cmd.Context(), cmd.OutOrStdout())
		},
	}
	rootCmd.SetVersionTemplate(FormatVersion())

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewApplyCmd(o),
		commands.NewFormatCmd(o),
		commands.NewCheckCmd(o),
		commands.NewRulesCmd(o),
	)

	return rootCmd, o
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: search the working directory)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&o.Locale, "locale", "l", "", "locale id, overriding the config")
	cmd.PersistentFlags().StringSliceVarP(&o.Rules, "rules", "r", nil, "rule or group names, overriding the config")
}

// setupLogging configures zerolog before flags are parsed, so the debug
// level also covers command setup.
func setupLogging(args []string) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger
}
