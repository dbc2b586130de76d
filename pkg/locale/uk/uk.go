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

// Package uk registers the Ukrainian rule set under the "uk" locale.
//
// It selects rules by group name only; the letter classes are widened with
// і ї є ґ so short words and abbreviations written in Ukrainian are found.
package uk

import (
	"github.com/walteh/richtypo/pkg/locale"
	"github.com/walteh/richtypo/pkg/rules"
)

const ID = "uk"

func Definition() locale.Definition {
	return locale.Definition{
		ID: ID,
		Params: rules.Definitions().With(map[string]string{
			"letter":             `[a-zà-ž0-9а-яёіїєґ]`,
			"upperLetter":        `[A-ZÀ-ŽА-ЯЁІЇЄҐ]`,
			"letterOrQuote":      `[-“”‘’«»a-zà-ž0-9а-яёіїєґ]`,
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
