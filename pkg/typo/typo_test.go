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
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/richtypo/pkg/rule"
	"github.com/walteh/richtypo/pkg/span"
)

var (
	percent = rule.Must(rule.New("percent", rule.Pair{Pattern: `100`, Replacement: `%`}))
	shout   = rule.Must(rule.New("shout", rule.Pair{Pattern: `[a-z]+`, Replacement: `<$0>`}))
)

func replacing(name, pattern, replacement string) *rule.Rule {
	return rule.Must(rule.New(name, rule.Pair{Pattern: pattern, Replacement: replacement}))
}

// nbsp makes non-breaking spaces visible in expectations
func nbsp(s string) string {
	return strings.ReplaceAll(s, Nbsp, "_")
}

func TestApply(t *testing.T) {
	upper := replacing("upper", `changes number % with percent`, `CHANGES NUMBER % WITH PERCENT`)

	tests := []struct {
		name  string
		rules []rule.Ruler
		input string
		want  string
	}{
		{
			name:  "run_one_rule",
			rules: []rule.Ruler{percent},
			input: "changes number 100 with percent",
			want:  "changes number % with percent",
		},
		{
			name:  "run_a_list_of_rules",
			rules: []rule.Ruler{percent, upper},
			input: "changes number 100 with percent",
			want:  "CHANGES NUMBER % WITH PERCENT",
		},
		{
			name:  "run_a_nested_list_of_rules",
			rules: []rule.Ruler{percent, rule.Set{rule.Set{upper}}},
			input: "changes number 100 with percent",
			want:  "CHANGES NUMBER % WITH PERCENT",
		},
		{
			name:  "run_a_nested_pipeline",
			rules: []rule.Ruler{New(percent), upper},
			input: "changes number 100 with percent",
			want:  "CHANGES NUMBER % WITH PERCENT",
		},
		{
			name:  "keep_html_tags",
			rules: []rule.Ruler{percent},
			input: `<b>a 100 b</b and an image <img src="pixel.gif" alt="">`,
			want:  `<b>a % b</b and an image <img src="pixel.gif" alt="">`,
		},
		{
			name:  "keep_code",
			rules: []rule.Ruler{percent},
			input: "<code> a 100 b </code>",
			want:  "<code> a 100 b </code>",
		},
		{
			name:  "keep_pre",
			rules: []rule.Ruler{percent},
			input: "<pre> a 100 b </pre>",
			want:  "<pre> a 100 b </pre>",
		},
		{
			name:  "keep_style",
			rules: []rule.Ruler{percent},
			input: "<style> a 100 b </style>",
			want:  "<style> a 100 b </style>",
		},
		{
			name:  "keep_script",
			rules: []rule.Ruler{percent},
			input: "<script> a 100 b </script>",
			want:  "<script> a 100 b </script>",
		},
		{
			name:  "keep_code_with_greater_than",
			rules: []rule.Ruler{percent},
			input: "<code> -->> </code>",
			want:  "<code> -->> </code>",
		},
		{
			name:  "keep_attributes",
			rules: []rule.Ruler{percent},
			input: `No typo <img src="hamster.jpg" alt="a 100 b"> inside tags.`,
			want:  `No typo <img src="hamster.jpg" alt="a 100 b"> inside tags.`,
		},
		{
			name:  "keep_attributes_and_code",
			rules: []rule.Ruler{percent},
			input: "More <b>a 100 b</b>. No typo <img src=\"hamster.jpg\" alt=\"a 100 b\"> inside tags. And some code: <pre><code>\na 100 b\na 100 b\na 100 b\n</code></pre>.",
			want:  "More <b>a % b</b>. No typo <img src=\"hamster.jpg\" alt=\"a 100 b\"> inside tags. And some code: <pre><code>\na 100 b\na 100 b\na 100 b\n</code></pre>.",
		},
		{
			name:  "keep_commented_out_tags",
			rules: []rule.Ruler{percent},
			input: `<!-- <script>alert("wheee");</script><style>* { color: red; }</style><pre>...</pre> 100 -->`,
			want:  `<!-- <script>alert("wheee");</script><style>* { color: red; }</style><pre>...</pre> 100 -->`,
		},
		{
			name:  "keep_conditional_comments",
			rules: []rule.Ruler{percent},
			input: `<!--[if lte IE 6]><script>alert("wheee");</script><style>* { color: red; }</style><pre>...</pre><![endif]-->`,
			want:  `<!--[if lte IE 6]><script>alert("wheee");</script><style>* { color: red; }</style><pre>...</pre><![endif]-->`,
		},
		{
			name:  "keep_conditional_comment_text",
			rules: []rule.Ruler{replacing("quotes", `“`, `"`)},
			input: `<!--[if lte IE 6]>The “quoted text.”<![endif]-->`,
			want:  `<!--[if lte IE 6]>The “quoted text.”<![endif]-->`,
		},
		{
			name:  "keep_unterminated_tag",
			rules: []rule.Ruler{percent},
			input: "100 <a title='100",
			want:  "% <a title='100",
		},
		{
			name:  "remove_repeated_spaces",
			rules: []rule.Ruler{percent},
			input: "changes   number 100  with percent",
			want:  "changes number % with percent",
		},
		{
			name:  "keep_repeated_spaces_in_pre",
			rules: []rule.Ruler{percent},
			input: "<pre>a  100</pre>   b",
			want:  "<pre>a  100</pre> b",
		},
		{
			name:  "keep_newlines",
			rules: []rule.Ruler{percent},
			input: "100\n\n100",
			want:  "%\n\n%",
		},
		{
			name:  "convert_hair_spaces_to_entities",
			rules: []rule.Ruler{replacing("hair", `100`, HairSpace)},
			input: "changes number 100 with a hair space",
			want:  "changes number &#x202f; with a hair space",
		},
		{
			name:  "remove_double_tags",
			rules: []rule.Ruler{replacing("double", `100`, `<abbr><abbr>%</abbr></abbr>`)},
			input: "changes number 100 with a tag",
			want:  "changes number <abbr>%</abbr> with a tag",
		},
		{
			name:  "remove_double_tags_with_attributes",
			rules: []rule.Ruler{replacing("double", `&`, `<span class="amp"><span class="amp">&</span></span>`)},
			input: "Dessi & Tsiri",
			want:  `Dessi <span class="amp">&</span> Tsiri`,
		},
		{
			name:  "keep_different_nested_tags",
			rules: []rule.Ruler{replacing("nested", `100`, `<b><i>%</i></b>`)},
			input: "a 100",
			want:  "a <b><i>%</i></b>",
		},
		{
			name:  "keep_double_tags_in_code",
			rules: []rule.Ruler{percent},
			input: "<code><b><b>x</b></b></code>",
			want:  "<code><b><b>x</b></b></code>",
		},
		{
			name:  "rules_see_markup_position",
			rules: []rule.Ruler{replacing("after_tag", `(\w+)` + string(span.Placeholder) + ` `, `$1`+string(span.Placeholder)+Nbsp)},
			input: "This is <b>of</b> the hook",
			want:  "This is <b>of</b>_the hook",
		},
		{
			name:  "rules_wrap_text_around_markup",
			rules: []rule.Ruler{shout},
			input: "a <br/> b",
			want:  "<a> <br/> <b>",
		},
		{
			name:  "literal_placeholder_in_input",
			rules: []rule.Ruler{percent},
			input: "a\uE000 100",
			want:  "a\uE000 %",
		},
		{
			name:  "no_rules",
			rules: nil,
			input: "a  b",
			want:  "a b",
		},
		{
			name:  "empty_input",
			rules: []rule.Ruler{percent},
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(context.Background(), tt.input, tt.rules...)
			assert.Equal(t, tt.want, nbsp(got))
		})
	}
}

func TestRunSkipsStepsThatLoseMarkup(t *testing.T) {
	dropTags := replacing("drop_tags", string(span.Placeholder), "")
	duplicateTags := replacing("duplicate_tags", `(`+string(span.Placeholder)+`)`, `$1$1`)

	got := Apply(context.Background(), "a <b>100</b>", dropTags, duplicateTags, percent)
	assert.Equal(t, "a <b>%</b>", got)
}

func TestRunKeepsProtectedSpans(t *testing.T) {
	inputs := []string{
		"More <b>a 100 b</b>. <img src=\"hamster.jpg\" alt=\"a 100 b\"> <pre><code>\na 100 b\n</code></pre>.",
		"<!-- a comment --> text <script>if (a < b) { x = \"100\" }</script> more text",
		"<p>one <em>two</em></p>\n\n<style>p > a { color: red; }</style><p>three",
		"unterminated <!-- comment with text",
	}
	letters := replacing("letters", `[a-z]`, `X`)

	for _, input := range inputs {
		got := Apply(context.Background(), input, letters)
		assert.Equal(t, protectedTexts(input), protectedTexts(got), "protected spans of %q", input)
		assert.NotEqual(t, input, got)
	}
}

func protectedTexts(s string) []string {
	var out []string
	for _, sp := range span.Scan(s) {
		if sp.Class() == span.Protected {
			out = append(out, sp.Text(s))
		}
	}
	return out
}

func TestRunOrder(t *testing.T) {
	ctx := context.Background()
	a := replacing("a", `cat`, `dog`)
	b := replacing("b", `dog`, `bird`)

	forward := Apply(ctx, "cat and dog", a, b)
	assert.Equal(t, "bird and bird", forward)
	assert.Equal(t, Apply(ctx, Apply(ctx, "cat and dog", a), b), forward)
	assert.Equal(t, "dog and bird", Apply(ctx, "cat and dog", b, a))
}

func TestPipeline(t *testing.T) {
	p := New(percent, rule.Set{shout, rule.Set{percent}})

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"percent", "shout", "percent"}, p.Names())

	rules := p.Rules()
	rules[0] = nil
	assert.Equal(t, "percent", p.Rules()[0].Name(), "Rules should return a copy")

	var nilPipeline *Pipeline
	assert.Nil(t, nilPipeline.Rules())
	assert.Nil(t, nilPipeline.Names(), "nil pipeline should have no names")
	assert.Equal(t, 0, nilPipeline.Len(), "nil pipeline should be empty")
	assert.Equal(t, "a b <b>100</b>", nilPipeline.Run(context.Background(), "a  b <b>100</b>"), "nil pipeline should only normalize")
}

func TestRunLeavesInvalidUTF8Unchanged(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "latin1_text_and_markup", input: "caf\xe9 costs 100 <b>caf\xe9</b>"},
		{name: "truncated_sequence", input: "100 \xe2\x80"},
		{name: "invalid_only_in_tag", input: "100 <a title=\"\xff\">x</a>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(context.Background(), tt.input, percent)
			assert.Equal(t, tt.input, got, "invalid UTF-8 should be returned byte for byte")
		})
	}

	assert.Equal(t, "café costs % <b>café</b>", Apply(context.Background(), "café costs 100 <b>café</b>", percent), "valid UTF-8 should still be formatted")
}

func TestPipelineConcurrentUse(t *testing.T) {
	p := New(percent, shout)
	ctx := context.Background()
	want := p.Run(ctx, "<b>100</b> cats")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Run(ctx, "<b>100</b> cats")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
	assert.Equal(t, "<b>%</b> <cats>", want)
}
