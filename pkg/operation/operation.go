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
	"runtime"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/richtypo/pkg/log"
	"github.com/walteh/richtypo/pkg/status"
)

// ErrNotUTF8 marks files that are skipped because they are not valid UTF-8.
var ErrNotUTF8 = errors.New("file is not valid UTF-8")

// Formatter formats the content of one file. *typo.Pipeline implements it.
type Formatter interface {
	Run(ctx context.Context, text string) string
}

// Options configure a Runner.
type Options struct {
	// Root is the directory Files and Exclude are matched in
	Root string
	// Files are doublestar patterns selecting the files to format
	Files []string
	// Exclude are doublestar patterns removing files from the selection
	Exclude []string
	// Output is a directory to write formatted files to, mirroring Root.
	// Files are formatted in place when it is empty.
	Output string
	// Concurrency bounds the number of files processed at once
	Concurrency int
	// Check only reports which files formatting would change
	Check bool
	// Formatter formats file contents
	Formatter Formatter
	// Logger, when set, prints a line per file
	Logger *log.Logger
}

// store is where formatted files go and where their outcomes are tracked
type store interface {
	status.FileManager
	status.StatusReporter
	BaseDir() string
}

// 🏃 Runner formats the files selected by its Options
type Runner struct {
	opts Options
	src  status.FileManager
	dst  store
}

// 🏗️ New creates a new runner
func New(opts Options) (*Runner, error) {
	if opts.Formatter == nil {
		return nil, errors.Errorf("formatter is required")
	}
	if len(opts.Files) == 0 {
		return nil, errors.Errorf("files are required")
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}

	dstDir := opts.Root
	if opts.Output != "" {
		dstDir = opts.Output
	}

	return &Runner{
		opts: opts,
		src:  status.New(opts.Root, nil),
		dst:  status.New(dstDir, nil),
	}, nil
}

// 📋 Report lists the outcome of every file of a run, sorted by path
type Report struct {
	Files []status.FileInfo
}

// Changed returns the files formatting changed, or would change.
func (r *Report) Changed() []status.FileInfo {
	var out []status.FileInfo
	for _, f := range r.Files {
		if f.Status.Changed() {
			out = append(out, f)
		}
	}
	return out
}

// Failed returns the files that could not be processed.
func (r *Report) Failed() []status.FileInfo {
	var out []status.FileInfo
	for _, f := range r.Files {
		if f.Status == status.StatusFailed {
			out = append(out, f)
		}
	}
	return out
}

// Err summarizes failed files, or returns nil.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return errors.Errorf("%d of %d files failed, first %s: %w", len(failed), len(r.Files), failed[0].Path, failed[0].Error)
}
