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
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_result",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), FileResult{
					Path:      "index.html",
					Status:    "formatted",
					IsChanged: true,
					Delta:     12,
				})
			},
			wantLogs: []string{
				"⟳ index.html                          formatted      +12 bytes",
			},
		},
		{
			name: "log_run",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunInfo{
					Locale: "en",
					Rules:  []string{"all"},
					Root:   "content",
					Output: "dist",
				})
				logger.EndRun(context.Background())
			},
			wantLogs: []string{
				"[formatting content]",
				"◆ en • [all] -> dist",
			},
		},
		{
			name: "log_check_run",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunInfo{
					Locale: "uk",
					Rules:  []string{"quotes", "spaces"},
					Root:   ".",
					Check:  true,
				})
			},
			wantLogs: []string{
				"[checking .]",
				"◆ uk • [quotes spaces]",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("formatting files")
			},
			wantLogs: []string{
				"richtypo • formatting files",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.Disabled)

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileResultFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		r    FileResult
		want string
	}{
		{
			name: "new_output_file",
			r: FileResult{
				Path:      "a.html",
				Output:    "dist/a.html",
				Status:    "created",
				IsNew:     true,
				IsChanged: true,
			},
			want: "    ✓ a.html                              created         -> dist/a.html",
		},
		{
			name: "changed_file",
			r: FileResult{
				Path:      "a.html",
				Status:    "formatted",
				IsChanged: true,
				Delta:     -3,
			},
			want: "    ⟳ a.html                              formatted      -3 bytes",
		},
		{
			name: "failed_file",
			r: FileResult{
				Path:     "a.html",
				Status:   "error",
				IsFailed: true,
			},
			want: "    ✗ a.html                              error",
		},
		{
			name: "unchanged_file",
			r: FileResult{
				Path:   "a.html",
				Status: "unchanged",
			},
			want: "    • a.html                              unchanged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			logger.LogFileResult(context.Background(), tt.r)

			// trailing padding is not part of the expectation
			assert.Equal(t, strings.TrimRight(tt.want, " "), strings.TrimRight(buf.String(), " \n"), "formatted output should match")
		})
	}
}

func TestUserLogger(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	buf := &bytes.Buffer{}
	u := NewUserLogger(context.Background(), buf)

	u.LogChange(Change{Type: FileFormatted, Path: "a.html", Description: "+4 bytes"})
	u.LogChange(Change{Type: FileWouldChange, Path: "b.html"})
	u.LogChange(Change{Type: FileError, Path: "c.html", Error: errors.New("permission denied")})
	u.LogValidation(true, "config is valid", nil)
	u.LogSummary("3 files")

	out := buf.String()
	assert.Contains(t, out, "Formatted a.html (+4 bytes)", "formatted file should be reported")
	assert.Contains(t, out, "Would format b.html", "changed file should be reported")
	assert.Contains(t, out, "Error c.html", "failed file should be reported")
	assert.Contains(t, out, "permission denied", "error should be reported")
	assert.Contains(t, out, "config is valid", "validation should be reported")
	assert.Contains(t, out, "3 files", "summary should be reported")
}

func TestUserLoggerTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	buf := &bytes.Buffer{}
	u := NewUserLogger(context.Background(), buf)

	require.NoError(t, u.LogTable([][]string{
		{"locale", "name", "rules"},
		{"en", "quotes", "quotes"},
	}))
	assert.Contains(t, buf.String(), "locale", "header should be rendered")
	assert.Contains(t, buf.String(), "quotes", "rows should be rendered")

	buf.Reset()
	require.NoError(t, u.LogTable(nil))
	assert.Empty(t, buf.String(), "empty tables should render nothing")
}
