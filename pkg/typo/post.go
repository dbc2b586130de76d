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
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/walteh/richtypo/pkg/rule"
	"github.com/walteh/richtypo/pkg/span"
)

// collapseSpaces runs before the first rule; newlines are kept because the
// orphans rule treats a blank line as a paragraph end.
var collapseSpaces = rule.Must(rule.New("collapseSpaces", rule.Pair{
	Pattern:     `[ \t]{2,}`,
	Replacement: " ",
}))

var encodeHairSpaces = rule.Must(rule.New("encodeHairSpaces", rule.Pair{
	Pattern:     HairSpace,
	Replacement: HairSpaceEntity,
}))

// nestedTagRe matches an element wrapped directly in an identical element:
// <abbr><abbr>x</abbr></abbr>. Only one level is removed per match.
var nestedTagRe = regexp2.MustCompile(`<(\w+)((?:\s[^<>]*)?)><\1\2>([^<]*)</\1\s*></\1\s*>`, regexp2.IgnoreCase)

// collapseNestedTags removes doubled wrappers left by rules that wrapped text
// another rule had already wrapped. Comments and opaque bodies are skipped.
func collapseNestedTags(buf string) string {
	if !strings.Contains(buf, "><") {
		return buf
	}

	var sb strings.Builder
	sb.Grow(len(buf))
	chunkStart := 0
	for _, s := range span.Scan(buf) {
		if s.Kind != span.KindOpaque && s.Kind != span.KindComment {
			continue
		}
		sb.WriteString(collapseChunk(buf[chunkStart:s.Start]))
		sb.WriteString(s.Text(buf))
		chunkStart = s.End
	}
	sb.WriteString(collapseChunk(buf[chunkStart:]))
	return sb.String()
}

func collapseChunk(chunk string) string {
	if !strings.Contains(chunk, "><") {
		return chunk
	}
	out, err := nestedTagRe.Replace(chunk, "<$1$2>$3</$1>", -1, -1)
	if err != nil {
		return chunk
	}
	return out
}
