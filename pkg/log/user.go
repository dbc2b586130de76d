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

package log

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback on the command line
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
	out io.Writer
}

// 🎨 ChangeType represents what happened to a file
type ChangeType int

const (
	FileFormatted ChangeType = iota
	FileWouldChange
	FileUnchanged
	FileError
)

// 🖼️ Change represents a change to one file
type Change struct {
	Type        ChangeType
	Path        string
	Description string
	Error       error
}

// 🎯 NewUserLogger creates a new user logger writing to out, or stdout
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	if out == nil {
		out = os.Stdout
	}
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
		out: out,
	}
}

// EnableDebug shows debug lines, such as unchanged files
func EnableDebug() {
	pterm.EnableDebugMessages()
}

func (u *UserLogger) printer(base pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	return base.WithPrefix(pterm.Prefix{Text: prefix, Style: base.Prefix.Style}).WithWriter(u.out)
}

// 📝 LogChange logs a file change with appropriate emoji and formatting
func (u *UserLogger) LogChange(change Change) {
	var action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FileFormatted:
		action = "Formatted"
		printer = u.printer(pterm.Success, "✨")
	case FileWouldChange:
		action = "Would format"
		printer = u.printer(pterm.Warning, "✏️")
	case FileUnchanged:
		action = "Unchanged"
		printer = u.printer(pterm.Debug, "⏭️")
	default:
		action = "Error"
		printer = u.printer(pterm.Error, "❌")
	}

	msg := fmt.Sprintf("%s %s", action, change.Path)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	printer.Println(msg)
	if change.Error != nil {
		u.printer(pterm.Error, "❌").Println(change.Error.Error())
		u.log.Error().Err(change.Error).Msg(msg)
		return
	}
	u.log.Info().Msg(msg)
}

// 📊 LogSummary logs the outcome of a run
func (u *UserLogger) LogSummary(description string) {
	u.printer(pterm.Info, "📦").Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		u.printer(pterm.Success, "✅").Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		u.printer(pterm.Error, "❌").Println(description)
		u.printer(pterm.Error, "❌").Println(err.Error())
		u.log.Error().Err(err).Msg(description)
		return
	}
	u.printer(pterm.Warning, "⚠️").Println(description)
	u.log.Warn().Msg(description)
}

// 📋 LogTable renders rows as a table, the first row being the header
func (u *UserLogger) LogTable(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).WithWriter(u.out).Render()
}
