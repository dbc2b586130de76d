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
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 15 // Width for status text
)

// 🎯 FileResult represents one formatted file for logging
type FileResult struct {
	Path      string // File path, relative to the run root
	Output    string // Destination, when it is not Path
	Status    string // Status text
	IsNew     bool   // Whether the destination was created
	IsChanged bool   // Whether formatting changed the content
	IsFailed  bool   // Whether the file could not be processed
	Delta     int    // Output size minus input size, in bytes
}

// 📦 RunInfo describes a formatting run for logging
type RunInfo struct {
	Locale string   // Locale id
	Rules  []string // Selected rule and group names
	Root   string   // Directory files are matched in
	Output string   // Output directory, if any
	Check  bool     // Whether files are only checked
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	current *RunInfo
	results []FileResult
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileResult formats a file result for display
func (l *Logger) formatFileResult(r FileResult) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case r.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case r.IsNew:
		symbol = '✓'
		symbolColor = color.FgGreen
	case r.IsChanged:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	statusColor := color.FgYellow
	if r.IsFailed {
		statusColor = color.FgRed
	} else if !r.IsChanged {
		statusColor = color.Faint
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, r.Path),
		color.New(statusColor).Sprint(fmt.Sprintf("%-*s", statusWidth, r.Status)))

	if r.IsChanged && r.Delta != 0 {
		line += color.New(color.Faint).Sprintf("%+d bytes", r.Delta)
	}
	if r.Output != "" && r.Output != r.Path {
		line += color.New(color.Faint).Sprint(" -> " + r.Output)
	}
	return line
}

// 📝 LogFileResult logs a formatted file
func (l *Logger) LogFileResult(ctx context.Context, r FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.results = append(l.results, r)

	fmt.Fprintln(l.console, l.formatFileResult(r))

	ev := l.zlog.Info()
	if r.IsFailed {
		ev = l.zlog.Error()
	}
	ev.Str("file", r.Path).
		Str("output", r.Output).
		Str("status", r.Status).
		Bool("is_new", r.IsNew).
		Bool("is_changed", r.IsChanged).
		Int("delta", r.Delta).
		Msg("file formatted")
}

// 📝 StartRun starts a new formatting run
func (l *Logger) StartRun(ctx context.Context, info RunInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current = &info
	l.results = nil

	verb := "formatting"
	if info.Check {
		verb = "checking"
	}
	fmt.Fprintf(l.console, "[%s %s]\n", verb,
		color.New(color.FgCyan).Sprint(info.Root))

	target := fmt.Sprint(info.Rules)
	if info.Output != "" {
		target += " -> " + info.Output
	}
	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(info.Locale),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(target))

	l.zlog.Info().
		Str("locale", info.Locale).
		Strs("rules", info.Rules).
		Str("root", info.Root).
		Str("output", info.Output).
		Bool("check", info.Check).
		Msg("starting formatting run")
}

// 📝 EndRun ends the current run and logs a summary
func (l *Logger) EndRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return
	}

	changed, failed := 0, 0
	for _, r := range l.results {
		if r.IsFailed {
			failed++
		} else if r.IsChanged {
			changed++
		}
	}

	l.zlog.Info().
		Str("locale", l.current.Locale).
		Int("files", len(l.results)).
		Int("changed", changed).
		Int("failed", failed).
		Msg("formatting run complete")

	l.current = nil
	l.results = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("richtypo")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
