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

// Package rule defines typography rules: named, ordered lists of
// pattern/replacement steps, and the factories that specialize them from a
// locale parameter bundle.
//
// Rules never see markup. The pipeline hands each step a view of the text in
// which every run of protected markup is replaced by span.Placeholder, so a
// pattern may refer to where a tag is (the "tag" definition) but never to what
// it contains.
//
// Patterns use the .NET-flavored syntax of github.com/dlclark/regexp2, which
// supports lookbehind, lookahead and backreferences. Replacements use $1,
// ${name} and $0.
package rule

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"gitlab.com/tozd/go/errors"
)

// 📝 Pair is the uncompiled form of a step
type Pair struct {
	Pattern     string `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement" hcl:"replacement"`
	Flags       string `json:"flags,omitempty" yaml:"flags,omitempty" hcl:"flags,optional"` // any of "i", "m", "s"
}

// ⚙️ Step is one compiled pattern/replacement pair
type Step struct {
	pattern     string
	replacement string
	re          *regexp2.Regexp
}

// Pattern returns the expanded source pattern.
func (s *Step) Pattern() string {
	return s.pattern
}

// Replacement returns the expanded replacement template.
func (s *Step) Replacement() string {
	return s.replacement
}

// Replace rewrites every match in text.
func (s *Step) Replace(text string) (string, error) {
	out, err := s.re.Replace(text, s.replacement, -1, -1)
	if err != nil {
		return text, errors.Errorf("replacing %q: %w", s.pattern, err)
	}
	return out, nil
}

// 📐 Rule is a named, ordered list of steps. Rules are immutable and safe for
// concurrent use.
type Rule struct {
	name  string
	steps []*Step
}

// New compiles pairs into a rule.
func New(name string, pairs ...Pair) (*Rule, error) {
	if name == "" {
		return nil, &ConfigurationError{Param: "name", Err: errors.New("rule name is required")}
	}
	if len(pairs) == 0 {
		return nil, &ConfigurationError{Rule: name, Err: errors.New("rule has no steps")}
	}

	r := &Rule{name: name, steps: make([]*Step, 0, len(pairs))}
	for i, p := range pairs {
		opts, err := parseFlags(p.Flags)
		if err != nil {
			return nil, &ConfigurationError{Rule: name, Param: fmt.Sprintf("steps[%d].flags", i), Err: err}
		}
		re, err := regexp2.Compile(p.Pattern, opts)
		if err != nil {
			return nil, &ConfigurationError{
				Rule:  name,
				Param: fmt.Sprintf("steps[%d].pattern", i),
				Err:   errors.Errorf("%w: %s", ErrInvalidPattern, err.Error()),
			}
		}
		r.steps = append(r.steps, &Step{pattern: p.Pattern, replacement: p.Replacement, re: re})
	}
	return r, nil
}

// Must is like New's result but panics on error. It is meant for rule tables
// built at package initialization.
func Must(r *Rule, err error) *Rule {
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the rule name.
func (r *Rule) Name() string {
	return r.name
}

// Steps returns the compiled steps in order.
func (r *Rule) Steps() []*Step {
	return append([]*Step(nil), r.steps...)
}

// Rules implements Ruler.
func (r *Rule) Rules() []*Rule {
	return []*Rule{r}
}

// String returns the rule name.
func (r *Rule) String() string {
	return r.name
}

func parseFlags(flags string) (regexp2.RegexOptions, error) {
	opts := regexp2.None
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'g':
			// every replacement is global
		default:
			return opts, errors.Errorf("%w: unknown flag %q", ErrInvalidPattern, f)
		}
	}
	return opts, nil
}

// 🪆 Ruler is anything that flattens to an ordered list of rules
type Ruler interface {
	Rules() []*Rule
}

// Set is an ordered, possibly nested list of rules.
type Set []Ruler

// Rules flattens the set in document order.
func (s Set) Rules() []*Rule {
	return Flatten(s...)
}

// Flatten returns the rules of rs in order. Nil entries are skipped.
func Flatten(rs ...Ruler) []*Rule {
	var out []*Rule
	for _, r := range rs {
		if r == nil {
			continue
		}
		if rule, ok := r.(*Rule); ok {
			if rule != nil {
				out = append(out, rule)
			}
			continue
		}
		out = append(out, r.Rules()...)
	}
	return out
}

// 🏭 Factory builds a rule from a parameter bundle
type Factory func(Params) (*Rule, error)

// Template returns a factory expanding {{name}} references in every pattern
// and replacement against the bundle before compiling.
func Template(name string, pairs ...Pair) Factory {
	return func(p Params) (*Rule, error) {
		expanded := make([]Pair, 0, len(pairs))
		for _, pair := range pairs {
			pattern, err := p.Expand(pair.Pattern)
			if err != nil {
				return nil, withRule(err, name)
			}
			replacement, err := p.Expand(pair.Replacement)
			if err != nil {
				return nil, withRule(err, name)
			}
			expanded = append(expanded, Pair{Pattern: pattern, Replacement: replacement, Flags: pair.Flags})
		}
		return New(name, expanded...)
	}
}
