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
	"bytes"
	"context"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/richtypo/pkg/log"
	"github.com/walteh/richtypo/pkg/status"
)

// 🏃 Run formats every selected file, at most Concurrency at a time. A file
// that cannot be read or written is recorded as failed in the report; Run
// itself only fails when files cannot be matched or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	exclude := r.opts.Exclude
	if pattern, ok := outputExclude(r.opts.Root, r.opts.Output); ok {
		exclude = append(append([]string(nil), exclude...), pattern)
	}

	files, err := Match(ctx, r.opts.Root, r.opts.Files, exclude)
	if err != nil {
		return nil, errors.Errorf("listing files: %w", err)
	}
	logger.Debug().Int("files", len(files)).Str("root", r.opts.Root).Msg("matched files")

	r.dst.StartOperation(ctx, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for _, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			info := r.processFile(gctx, file)
			r.dst.TrackFile(gctx, file, info)
			r.dst.Increment(gctx)
			r.logResult(gctx, info)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("formatting files: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("formatting files: %w", err)
	}

	r.dst.FinishOperation(ctx)

	tracked, err := r.dst.ListFiles(ctx)
	if err != nil {
		return nil, errors.Errorf("listing results: %w", err)
	}
	return &Report{Files: tracked}, nil
}

// 📄 processFile formats a single file
func (r *Runner) processFile(ctx context.Context, path string) status.FileInfo {
	info := status.FileInfo{Path: path, Output: path}

	content, err := r.src.ReadFile(ctx, path)
	if err != nil {
		info.Status = status.StatusFailed
		info.Error = err
		return info
	}

	if !utf8.Valid(content) {
		info.Status = status.StatusFailed
		info.Error = errors.Errorf("%s: %w", path, ErrNotUTF8)
		return info
	}

	formatted := []byte(r.opts.Formatter.Run(ctx, string(content)))
	info.Size = int64(len(formatted))
	info.Delta = len(formatted) - len(content)
	info.Checksum = status.Checksum(formatted)

	changed := !bytes.Equal(content, formatted)

	switch {
	case r.opts.Check:
		info.Status = status.StatusUnchanged
		if changed {
			info.Status = status.StatusWouldChange
		}
		return info

	case r.opts.Output == "":
		info.Status = status.StatusUnchanged
		if !changed {
			return info
		}
		if err := r.dst.WriteFileAtomic(ctx, path, formatted); err != nil {
			info.Status = status.StatusFailed
			info.Error = errors.Errorf("writing %s: %w", path, err)
			return info
		}
		info.Status = status.StatusFormatted
		return info
	}

	exists, err := r.dst.FileExists(ctx, path)
	if err != nil {
		info.Status = status.StatusFailed
		info.Error = err
		return info
	}
	if exists {
		current, err := r.dst.ReadFile(ctx, path)
		if err == nil && bytes.Equal(current, formatted) {
			info.Status = status.StatusUnchanged
			return info
		}
	}
	if err := r.dst.WriteFile(ctx, path, formatted); err != nil {
		info.Status = status.StatusFailed
		info.Error = errors.Errorf("writing %s: %w", path, err)
		return info
	}
	info.Status = status.StatusFormatted
	if !exists {
		info.Status = status.StatusNew
	}
	return info
}

func (r *Runner) logResult(ctx context.Context, info status.FileInfo) {
	logger := zerolog.Ctx(ctx)
	if info.Error != nil {
		logger.Warn().Err(info.Error).Str("file", info.Path).Msg("file failed")
	}
	if r.opts.Logger == nil {
		return
	}

	output := ""
	if r.opts.Output != "" {
		output = filepath.Join(r.dst.BaseDir(), info.Output)
	}
	r.opts.Logger.LogFileResult(ctx, log.FileResult{
		Path:      info.Path,
		Output:    output,
		Status:    info.Status.String(),
		IsNew:     info.Status == status.StatusNew,
		IsChanged: info.Status.Changed(),
		IsFailed:  info.Status == status.StatusFailed,
		Delta:     info.Delta,
	})
}
