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

// Package en registers the English rule set under the "en" locale.
package en

import (
	"github.com/walteh/richtypo/pkg/locale"
	"github.com/walteh/richtypo/pkg/rule"
	"github.com/walteh/richtypo/pkg/rules"
)

const ID = "en"

// Definition returns the English locale definition.
func Definition() locale.Definition {
	return locale.Definition{
		ID: ID,
		Params: rules.Definitions().With(map[string]string{
			"openingQuote":       "“",
			"closingQuote":       "”",
			"ordinals":           `(?:st|nd|rd|th)`,
			"decimalsSeparator":  `[.]`,
			"thousandsSeparator": ",",
		}),
		Rules: []locale.Named{
			{Name: "shortWords", Factory: rules.ShortWords},
			{Name: "orphans", Factory: rules.Orphans},
			{Name: "numberUnits", Factory: rules.NumberUnits},
			{Name: "degreeSigns", Factory: rules.DegreeSigns},
			{Name: "dashes", Factory: rules.Dashes},
			{Name: "ellipses", Factory: rules.Ellipses},
			{Name: "amps", Factory: rules.Amps},
			{Name: "abbrs", Factory: rules.Abbrs},
			{Name: "numberOrdinals", Factory: rules.NumberOrdinals},
			{Name: "numberSeparators", Factory: rules.NumberSeparators},
			{Name: "quotes", Factory: rules.Quotes},
		},
		Groups: []locale.Group{
			{Name: "spaces", Rules: []string{"shortWords", "orphans"}},
			{Name: "numbers", Rules: []string{"numberOrdinals", "numberSeparators"}},
			{Name: "units", Rules: []string{"numberUnits", "degreeSigns"}},
			{Name: "quotes", Rules: []string{"quotes"}},
			{Name: "dashes", Aliases: []string{"emdash"}, Rules: []string{"dashes"}},
			{Name: "ellipses", Aliases: []string{"ellipsis"}, Rules: []string{"ellipses"}},
			{Name: "amps", Aliases: []string{"amp"}, Rules: []string{"amps"}},
			{Name: "abbrs", Aliases: []string{"abbr"}, Rules: []string{"abbrs"}},
		},
		All: []string{
			"quotes",
			"shortWords",
			"orphans",
			"numberUnits",
			"degreeSigns",
			"dashes",
			"ellipses",
			"amps",
		},
	}
}

var Locale = locale.MustRegister(Definition())

var (
	ShortWords       = mustRule("shortWords")
	Orphans          = mustRule("orphans")
	NumberUnits      = mustRule("numberUnits")
	DegreeSigns      = mustRule("degreeSigns")
	Dashes           = mustRule("dashes")
	Ellipses         = mustRule("ellipses")
	Amps             = mustRule("amps")
	Abbrs            = mustRule("abbrs")
	NumberOrdinals   = mustRule("numberOrdinals")
	NumberSeparators = mustRule("numberSeparators")
	Quotes           = mustRule("quotes")

	// Recommended runs the rules selected by "all".
	Recommended = Locale.Recommended()
)

func mustRule(name string) *rule.Rule {
	return rule.Must(Locale.Rule(name))
}
