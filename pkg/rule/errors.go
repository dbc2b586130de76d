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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrMissingParam is returned when a template references an absent parameter
	ErrMissingParam = errors.New("missing parameter")
	// ErrCyclicParam is returned when parameters reference each other in a loop
	ErrCyclicParam = errors.New("cyclic parameter reference")
	// ErrInvalidPattern is returned when a pattern or its flags do not compile
	ErrInvalidPattern = errors.New("invalid pattern")
)

// ⚠️ ConfigurationError reports a rule that cannot be built from its
// configuration. It is only ever returned while constructing rules and
// pipelines, never while processing text.
type ConfigurationError struct {
	Param string // offending parameter (or configuration field) name
	Rule  string // rule being built, if known
	Err   error
}

func (e *ConfigurationError) Error() string {
	msg := "configuration error"
	if e.Rule != "" {
		msg += fmt.Sprintf(" in rule %q", e.Rule)
	}
	if e.Param != "" {
		msg += fmt.Sprintf(": parameter %q", e.Param)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// withRule fills in the rule name on configuration errors that lack one.
func withRule(err error, name string) error {
	var cerr *ConfigurationError
	if errors.As(err, &cerr) && cerr.Rule == "" {
		cerr.Rule = name
	}
	return err
}
