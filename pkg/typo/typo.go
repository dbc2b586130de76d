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

// Package typo runs typography rules over HTML-bearing text without touching
// markup.
//
//	text ──▶ collapse spaces ──▶ rule steps ──▶ collapse nested tags ──▶ encode hair spaces
//	              ▲                  ▲
//	              └── span.Scan ─────┘  (re-scanned before every step)
//
// Every step sees a view of the buffer in which each run of protected spans
// (tags, comments, bodies of code, pre, style and script) is a single
// span.Placeholder. The protected runs are put back verbatim and in order
// afterwards, so no rule can alter markup or opaque content.
package typo

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/richtypo/pkg/rule"
)

const (
	// Nbsp is the non-breaking space rules emit, written out as is.
	Nbsp = "\u00a0"
	// HairSpace is the internal hair space marker rules emit.
	HairSpace = "\u200a"
	// HairSpaceEntity is what HairSpace is written out as.
	HairSpaceEntity = "&#x202f;"
)

// 🚰 Pipeline is an ordered, flattened list of rules. It holds no per-call
// state and is safe for concurrent use.
type Pipeline struct {
	rules []*rule.Rule
}

// New flattens rs, in order, into a pipeline.
func New(rs ...rule.Ruler) *Pipeline {
	return &Pipeline{rules: rule.Flatten(rs...)}
}

// Rules returns a copy of the pipeline's rules, so a pipeline can be nested in
// other pipelines and sets.
func (p *Pipeline) Rules() []*rule.Rule {
	if p == nil {
		return nil
	}
	return append([]*rule.Rule(nil), p.rules...)
}

// Names returns the rule names in execution order.
func (p *Pipeline) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.rules))
	for _, r := range p.rules {
		names = append(names, r.Name())
	}
	return names
}

// Len returns the number of rules.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.rules)
}

// 🏃 Run applies the pipeline to text. It never fails: malformed markup is
// protected rather than rewritten, and a step that would lose or duplicate
// markup is skipped. Text that is not valid UTF-8 is returned unchanged.
// A nil pipeline only normalizes whitespace and markup.
func (p *Pipeline) Run(ctx context.Context, text string) string {
	logger := zerolog.Ctx(ctx)

	if !utf8.ValidString(text) {
		logger.Warn().Int("bytes", len(text)).Msg("text is not valid UTF-8, leaving it unchanged")
		return text
	}

	buf := applyRule(logger, text, collapseSpaces)
	for _, r := range p.Rules() {
		buf = applyRule(logger, buf, r)
	}
	buf = collapseNestedTags(buf)
	return applyRule(logger, buf, encodeHairSpaces)
}

// Apply runs rs over text once. It is shorthand for New(rs...).Run(ctx, text).
func Apply(ctx context.Context, text string, rs ...rule.Ruler) string {
	return New(rs...).Run(ctx, text)
}

func applyRule(logger *zerolog.Logger, buf string, r *rule.Rule) string {
	for i, step := range r.Steps() {
		out, err := applyStep(buf, step)
		if err != nil {
			logger.Warn().Err(err).Str("rule", r.Name()).Int("step", i).Msg("skipping rule step")
			continue
		}
		if out != buf {
			logger.Trace().Str("rule", r.Name()).Int("step", i).Msg("rule step applied")
		}
		buf = out
	}
	return buf
}

func applyStep(buf string, step *rule.Step) (string, error) {
	v := newView(buf)
	out, err := step.Replace(v.text)
	if err != nil {
		return buf, err
	}
	if out == v.text {
		return buf, nil
	}
	return v.restore(out)
}
