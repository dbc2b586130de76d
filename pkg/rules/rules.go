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

// Package rules holds the rule templates every locale is assembled from.
//
// Templates reference shared building blocks with {{name}}. Definitions
// returns the locale-independent ones; a locale adds the Required params
// (quote characters, ordinal suffixes, number separators) and may override
// any building block, for example to widen the letter classes.
//
// The {{tag}} building block stands for markup. Rules never see tags,
// comments or code directly: every run of them is folded into a single
// placeholder rune before a rule runs, and {{tag}} matches that rune.
package rules

import (
	"github.com/walteh/richtypo/pkg/rule"
	"github.com/walteh/richtypo/pkg/span"
	"github.com/walteh/richtypo/pkg/typo"
)

// Required lists the params a locale has to provide.
var Required = []string{
	"openingQuote",
	"closingQuote",
	"ordinals",
	"decimalsSeparator",
	"thousandsSeparator",
}

// Definitions returns the shared building blocks.
func Definitions() rule.Params {
	return rule.NewParams(map[string]string{
		"nbsp":          typo.Nbsp,
		"hairspace":     typo.HairSpace,
		"space":         "[ \t{{nbsp}}{{hairspace}}]",
		"tag":           "(?:" + string(span.Placeholder) + ")",
		"quote":         `["“”«»‘’]`,
		"letter":        `[a-zà-ž0-9а-яё]`,
		"upperLetter":   `[A-ZÀ-ŽА-ЯЁ]`,
		"letterOrQuote": `[-“”‘’«»a-zà-ž0-9а-яё]`,
		"semicolon":     `(?<!&\S*);`,
		"punctuation":   `(?:{{semicolon}}|[\.,!?:])`,
		"dash":          `[-—]`,
		"openingQuotes": `[“‘«]`,
		"shortWord":     `{{letter}}{1,2}`,
	})
}

var (
	// ShortWords glues words of one or two letters to the word after them.
	ShortWords = rule.Template("shortWords", rule.Pair{
		Pattern:     `(?<=^|{{space}}|{{quote}}|{{tag}})({{shortWord}}(?:{{tag}})?){{space}}`,
		Replacement: `$1{{nbsp}}`,
		Flags:       "im",
	})

	// Orphans keeps the last short word of a paragraph on the line before it.
	Orphans = rule.Template("orphans", rule.Pair{
		Pattern:     `{{space}}([\S<]{1,10}(?:\n\n|$))`,
		Replacement: `{{nbsp}}$1`,
		Flags:       "m",
	})

	NumberUnits = rule.Template("numberUnits", rule.Pair{
		Pattern:     `(\d+(?:{{tag}})?){{space}}(\w)`,
		Replacement: `$1{{nbsp}}$2`,
		Flags:       "im",
	})

	DegreeSigns = rule.Template("degreeSigns", rule.Pair{
		Pattern:     `(\d(?:{{tag}})?){{space}}?°`,
		Replacement: `$1{{hairspace}}°`,
		Flags:       "im",
	})

	// Dashes turns hyphens used as dashes into em dashes and binds them to
	// the word before, or to the word after when the dash opens a line,
	// a sentence or a quote.
	Dashes = rule.Template("dashes",
		rule.Pair{
			Pattern:     `(\S){{space}}?—`,
			Replacement: `$1{{nbsp}}—`,
			Flags:       "im",
		},
		rule.Pair{
			Pattern:     `—(\S)`,
			Replacement: `— $1`,
			Flags:       "im",
		},
		rule.Pair{
			Pattern:     `({{letterOrQuote}}(?:{{tag}})?){{space}}{{dash}}`,
			Replacement: `$1{{nbsp}}—`,
			Flags:       "im",
		},
		rule.Pair{
			Pattern:     `(^|(?:{{punctuation}}|{{openingQuotes}}|"){{space}}?){{dash}}{{space}}`,
			Replacement: `$1—{{nbsp}}`,
			Flags:       "im",
		},
	)

	Ellipses = rule.Template("ellipses", rule.Pair{
		Pattern:     `\.{2,}`,
		Replacement: `…`,
	})

	// Amps wraps a standalone ampersand so it can be styled. Ampersands that
	// start an entity are left alone.
	Amps = rule.Template("amps", rule.Pair{
		Pattern:     `{{space}}(&(?!\S*;)){{space}}`,
		Replacement: `{{nbsp}}<span class="amp">&</span>{{nbsp}}`,
		Flags:       "im",
	})

	// Abbrs is case sensitive.
	Abbrs = rule.Template("abbrs", rule.Pair{
		Pattern:     `({{upperLetter}}{3,})`,
		Replacement: `<abbr>$1</abbr>`,
		Flags:       "m",
	})

	NumberOrdinals = rule.Template("numberOrdinals", rule.Pair{
		Pattern:     `(\d+)({{ordinals}})`,
		Replacement: `$1<sup>$2</sup>`,
		Flags:       "im",
	})

	// NumberSeparators groups the integer part of a number in thousands.
	// Digits after a decimal separator are not touched.
	NumberSeparators = rule.Template("numberSeparators", rule.Pair{
		Pattern:     `(?<!{{decimalsSeparator}}\d*)\d{1,3}(?=(?:\d{3})+(?!\d))`,
		Replacement: `$0{{thousandsSeparator}}`,
		Flags:       "im",
	})

	// Quotes replaces straight double quotes. A quote followed by a letter,
	// possibly through markup or a dash, opens; every other one closes.
	Quotes = rule.Template("quotes",
		rule.Pair{
			Pattern:     `"((?:{{tag}})?(?:{{dash}}{{space}})?{{letter}})`,
			Replacement: `{{openingQuote}}$1`,
			Flags:       "im",
		},
		rule.Pair{
			Pattern:     `"`,
			Replacement: `{{closingQuote}}`,
			Flags:       "im",
		},
	)
)
