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

package locale

import (
	"sort"
	"sync"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/richtypo/pkg/rule"
	"github.com/walteh/richtypo/pkg/typo"
)

var (
	mu       sync.RWMutex
	registry = map[string]*Locale{}
)

// Register builds def and makes it available under def.ID.
func Register(def Definition) (*Locale, error) {
	l, err := Build(def)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, ok := registry[def.ID]; ok {
		return nil, &rule.ConfigurationError{Param: "locale", Err: errors.Errorf("%w: %q", ErrDuplicateLocale, def.ID)}
	}
	registry[def.ID] = l
	return l, nil
}

// MustRegister is Register for package initialization.
func MustRegister(def Definition) *Locale {
	l, err := Register(def)
	if err != nil {
		panic(err)
	}
	return l
}

// Get returns a registered locale.
func Get(id string) (*Locale, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := registry[id]
	if !ok {
		return nil, &rule.ConfigurationError{Param: "locale", Err: errors.Errorf("%w %q (registered: %v)", ErrUnknownLocale, id, ids())}
	}
	return l, nil
}

// Lookup returns the pipeline selected by name in locale id.
func Lookup(id, name string) (*typo.Pipeline, error) {
	l, err := Get(id)
	if err != nil {
		return nil, err
	}
	return l.Pipeline(name)
}

// IDs returns the registered locale ids, sorted.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	return ids()
}

func ids() []string {
	out := make([]string, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
