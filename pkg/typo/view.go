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

package typo

import (
	"strings"

	"github.com/walteh/richtypo/pkg/span"
	"gitlab.com/tozd/go/errors"
)

// ErrPlaceholderMismatch is returned when a step drops or duplicates markup
var ErrPlaceholderMismatch = errors.New("step changed the number of protected runs")

var placeholder = string(span.Placeholder)

// view is the text a rule step sees: eligible text verbatim and one
// placeholder per maximal run of protected spans.
type view struct {
	text      string
	protected []string
}

func newView(buf string) view {
	var (
		sb        strings.Builder
		protected []string
		runStart  = -1
	)
	sb.Grow(len(buf))

	for _, s := range span.Scan(buf) {
		if s.Class() == span.Protected {
			if runStart < 0 {
				runStart = s.Start
			}
			continue
		}
		if runStart >= 0 {
			protected = append(protected, buf[runStart:s.Start])
			sb.WriteString(placeholder)
			runStart = -1
		}
		sb.WriteString(s.Text(buf))
	}
	if runStart >= 0 {
		protected = append(protected, buf[runStart:])
		sb.WriteString(placeholder)
	}

	return view{text: sb.String(), protected: protected}
}

// restore puts the protected runs back into a rewritten view.
func (v view) restore(out string) (string, error) {
	parts := strings.Split(out, placeholder)
	if len(parts) != len(v.protected)+1 {
		return "", errors.Errorf("%w: want %d, got %d", ErrPlaceholderMismatch, len(v.protected), len(parts)-1)
	}

	var sb strings.Builder
	for i, part := range parts {
		sb.WriteString(part)
		if i < len(v.protected) {
			sb.WriteString(v.protected[i])
		}
	}
	return sb.String(), nil
}
