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

// Package locale maps rule and group names to pipelines for each language.
//
// A Definition lists a locale's params, its named rules, the groups they can
// be selected by, and the recommended order used for the reserved name "all".
// Locales register themselves from their own packages:
//
//	import _ "github.com/walteh/richtypo/pkg/locale/en"
//
//	p, err := locale.Lookup("en", "quotes")
package locale

import (
	"slices"
	"sort"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/richtypo/pkg/rule"
	"github.com/walteh/richtypo/pkg/typo"
)

// All is the reserved name selecting a locale's recommended rules.
const All = "all"

var (
	ErrUnknownLocale   = errors.New("unknown locale")
	ErrUnknownName     = errors.New("unknown rule or group")
	ErrDuplicateLocale = errors.New("locale already registered")
	ErrDuplicateName   = errors.New("duplicate name")
)

// Named binds a rule name to the factory that builds it.
type Named struct {
	Name    string
	Factory rule.Factory
}

// Group selects one or more rules under a name. Aliases select the same rules.
type Group struct {
	Name    string
	Aliases []string
	Rules   []string
}

// Definition is everything needed to build a Locale.
type Definition struct {
	ID     string
	Params rule.Params
	Rules  []Named
	Groups []Group
	All    []string
}

// WithParams returns a copy of d with overrides applied to its params.
func (d Definition) WithParams(overrides map[string]string) Definition {
	d.Params = d.Params.With(overrides)
	return d
}

// 🌍 Locale is a built Definition. It is immutable and safe for concurrent use.
type Locale struct {
	def    Definition
	rules  map[string]*rule.Rule
	groups map[string][]*rule.Rule
	all    []*rule.Rule
}

// Build specializes every rule of def with its params and resolves groups.
// Any problem is reported as a *rule.ConfigurationError.
func Build(def Definition) (*Locale, error) {
	if def.ID == "" {
		return nil, &rule.ConfigurationError{Param: "id", Err: errors.New("locale id is required")}
	}

	l := &Locale{
		def:    def,
		rules:  make(map[string]*rule.Rule, len(def.Rules)),
		groups: make(map[string][]*rule.Rule, len(def.Groups)),
	}

	for _, n := range def.Rules {
		if n.Name == All {
			return nil, &rule.ConfigurationError{Param: "rules", Rule: n.Name, Err: errors.Errorf("%q is reserved", All)}
		}
		if _, ok := l.rules[n.Name]; ok {
			return nil, &rule.ConfigurationError{Param: "rules", Rule: n.Name, Err: ErrDuplicateName}
		}
		r, err := n.Factory(def.Params)
		if err != nil {
			return nil, errors.Errorf("building %s rule %q: %w", def.ID, n.Name, err)
		}
		l.rules[n.Name] = r
	}

	for _, g := range def.Groups {
		resolved, err := l.resolve(g.Rules)
		if err != nil {
			return nil, &rule.ConfigurationError{Param: "groups", Rule: g.Name, Err: err}
		}
		for _, name := range append([]string{g.Name}, g.Aliases...) {
			if name == All {
				return nil, &rule.ConfigurationError{Param: "groups", Rule: name, Err: errors.Errorf("%q is reserved", All)}
			}
			if _, ok := l.groups[name]; ok {
				return nil, &rule.ConfigurationError{Param: "groups", Rule: name, Err: ErrDuplicateName}
			}
			l.groups[name] = resolved
		}
	}

	all, err := l.resolve(def.All)
	if err != nil {
		return nil, &rule.ConfigurationError{Param: All, Err: err}
	}
	l.all = all

	return l, nil
}

func (l *Locale) resolve(names []string) ([]*rule.Rule, error) {
	out := make([]*rule.Rule, 0, len(names))
	for _, name := range names {
		r, ok := l.rules[name]
		if !ok {
			return nil, errors.Errorf("%w %q", ErrUnknownName, name)
		}
		out = append(out, r)
	}
	return out, nil
}

func (l *Locale) ID() string {
	return l.def.ID
}

// Definition returns the definition l was built from.
func (l *Locale) Definition() Definition {
	return l.def
}

// Rule returns a single named rule.
func (l *Locale) Rule(name string) (*rule.Rule, error) {
	r, ok := l.rules[name]
	if !ok {
		return nil, l.unknown(name)
	}
	return r, nil
}

// Pipeline resolves name as "all", then as a group or alias, then as a rule.
func (l *Locale) Pipeline(name string) (*typo.Pipeline, error) {
	if name == All {
		return l.Recommended(), nil
	}
	if g, ok := l.groups[name]; ok {
		return typo.New(rulers(g)...), nil
	}
	r, err := l.Rule(name)
	if err != nil {
		return nil, err
	}
	return typo.New(r), nil
}

// Recommended returns the pipeline selected by All.
func (l *Locale) Recommended() *typo.Pipeline {
	return typo.New(rulers(l.all)...)
}

// Pipelines concatenates the pipelines of names, in order.
func (l *Locale) Pipelines(names ...string) (*typo.Pipeline, error) {
	set := make(rule.Set, 0, len(names))
	for _, name := range names {
		p, err := l.Pipeline(name)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return typo.New(set), nil
}

// Names returns the rule names in definition order.
func (l *Locale) Names() []string {
	names := make([]string, 0, len(l.def.Rules))
	for _, n := range l.def.Rules {
		names = append(names, n.Name)
	}
	return names
}

// GroupNames returns every group name and alias, sorted.
func (l *Locale) GroupNames() []string {
	names := make([]string, 0, len(l.groups))
	for name := range l.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name selects anything in l.
func (l *Locale) Has(name string) bool {
	if name == All {
		return true
	}
	if _, ok := l.groups[name]; ok {
		return true
	}
	_, ok := l.rules[name]
	return ok
}

func (l *Locale) unknown(name string) error {
	known := append(l.Names(), l.GroupNames()...)
	slices.Sort(known)
	known = slices.Compact(known)
	return &rule.ConfigurationError{
		Param: "rules",
		Err:   errors.Errorf("%w %q in locale %q (known: %v)", ErrUnknownName, name, l.def.ID, known),
	}
}

func rulers(rs []*rule.Rule) []rule.Ruler {
	out := make([]rule.Ruler, 0, len(rs))
	for _, r := range rs {
		out = append(out, r)
	}
	return out
}
