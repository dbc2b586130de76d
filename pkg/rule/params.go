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

package rule

import (
	"slices"
	"sort"

	"github.com/dlclark/regexp2"
)

// maxExpandDepth bounds nested {{name}} references
const maxExpandDepth = 16

var referenceRe = regexp2.MustCompile(`\{\{(\w+)\}\}`, regexp2.None)

// 📦 Params is an immutable bundle of named pattern fragments and literals
// (quote glyphs, separators, character classes) that rule templates are
// specialized with. The zero value is an empty bundle.
type Params struct {
	values map[string]string
}

// NewParams copies values into a new bundle.
func NewParams(values map[string]string) Params {
	p := Params{values: make(map[string]string, len(values))}
	for k, v := range values {
		p.values[k] = v
	}
	return p
}

// With returns a new bundle with overrides applied on top of p.
func (p Params) With(overrides map[string]string) Params {
	n := NewParams(p.values)
	for k, v := range overrides {
		n.values[k] = v
	}
	return n
}

// Lookup returns the raw value of name.
func (p Params) Lookup(name string) (string, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Get returns the raw value of name or a ConfigurationError if it is absent.
func (p Params) Get(name string) (string, error) {
	v, ok := p.values[name]
	if !ok {
		return "", &ConfigurationError{Param: name, Err: ErrMissingParam}
	}
	return v, nil
}

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p.values))
	for k := range p.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p.values)
}

// 🔄 Expand substitutes every {{name}} in tmpl with the value of name.
// Values may reference other parameters; they are expanded recursively.
func (p Params) Expand(tmpl string) (string, error) {
	return p.expand(tmpl, nil)
}

func (p Params) expand(tmpl string, stack []string) (string, error) {
	var expandErr error
	out, err := referenceRe.ReplaceFunc(tmpl, func(m regexp2.Match) string {
		if expandErr != nil {
			return ""
		}
		name := m.GroupByNumber(1).String()
		if slices.Contains(stack, name) || len(stack) >= maxExpandDepth {
			expandErr = &ConfigurationError{Param: name, Err: ErrCyclicParam}
			return ""
		}
		v, err := p.Get(name)
		if err != nil {
			expandErr = err
			return ""
		}
		v, err = p.expand(v, append(slices.Clone(stack), name))
		if err != nil {
			expandErr = err
			return ""
		}
		return v
	}, -1, -1)
	if expandErr != nil {
		return "", expandErr
	}
	if err != nil {
		return "", &ConfigurationError{Err: err}
	}
	return out, nil
}
