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

// Package span classifies the bytes of an HTML-bearing text into the regions a
// typography rule may touch and the regions it must leave alone.
//
// A single left-to-right scan recognizes tags, comments (conditional comments
// included) and the bodies of opaque elements. Anything not recognized as
// markup is plain text. The scan never fails: unterminated markup stays
// protected through the end of the buffer.
package span

import (
	"sort"
	"strings"
)

// Placeholder stands in for a run of protected spans while a rule runs.
// A literal Placeholder found in plain text is classified as protected too.
const Placeholder = '\uE000'

// 🏷️ Class tells whether a span may be rewritten by rules
type Class int

const (
	Eligible Class = iota
	Protected
)

// String returns a string representation of Class
func (c Class) String() string {
	if c == Protected {
		return "protected"
	}
	return "eligible"
}

// 🧩 Kind is what the scanner found at a span
type Kind int

const (
	KindText        Kind = iota // plain text
	KindTag                     // <...>
	KindOpaque                  // body of code, pre, style or script
	KindComment                 // <!-- ... -->
	KindPlaceholder             // literal Placeholder rune in the input
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTag:
		return "tag"
	case KindOpaque:
		return "opaque"
	case KindComment:
		return "comment"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// 📏 Span is a half-open byte range [Start, End) of the scanned buffer
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// Class maps the span kind to its classification.
func (s Span) Class() Class {
	if s.Kind == KindText {
		return Eligible
	}
	return Protected
}

// Text returns the span's bytes of buf.
func (s Span) Text(buf string) string {
	return buf[s.Start:s.End]
}

var opaqueElements = map[string]struct{}{
	"code":   {},
	"pre":    {},
	"style":  {},
	"script": {},
}

// OpaqueElements returns the element names whose bodies are never scanned.
func OpaqueElements() []string {
	names := make([]string, 0, len(opaqueElements))
	for name := range opaqueElements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

var placeholderText = string(Placeholder)

// 🔍 Scan partitions text into spans. The result is ordered, contiguous and
// covers the whole input; an empty input yields no spans.
func Scan(text string) []Span {
	s := &scanner{text: text}
	s.run()
	return s.spans
}

type scanner struct {
	text  string
	spans []Span
}

func (s *scanner) add(start, end int, kind Kind) {
	if start >= end {
		return
	}
	// adjacent plain text is one span
	if n := len(s.spans); n > 0 && kind == KindText && s.spans[n-1].Kind == KindText && s.spans[n-1].End == start {
		s.spans[n-1].End = end
		return
	}
	s.spans = append(s.spans, Span{Start: start, End: end, Kind: kind})
}

func (s *scanner) run() {
	text := s.text
	textStart := 0
	i := 0
	for i < len(text) {
		switch {
		case text[i] == '<':
			s.add(textStart, i, KindText)
			end, done := s.markup(i)
			if done {
				return
			}
			i = end
			textStart = i
		case text[i] == placeholderText[0] && strings.HasPrefix(text[i:], placeholderText):
			s.add(textStart, i, KindText)
			i += len(placeholderText)
			s.add(i-len(placeholderText), i, KindPlaceholder)
			textStart = i
		default:
			i++
		}
	}
	s.add(textStart, len(text), KindText)
}

// markup consumes the markup starting at the '<' at start. It returns the
// offset right after it, or done when the markup runs to the end of input.
func (s *scanner) markup(start int) (end int, done bool) {
	text := s.text

	if strings.HasPrefix(text[start:], commentOpen) {
		idx := strings.Index(text[start+len(commentOpen):], commentClose)
		if idx < 0 {
			s.add(start, len(text), KindComment)
			return len(text), true
		}
		end = start + len(commentOpen) + idx + len(commentClose)
		s.add(start, end, KindComment)
		return end, false
	}

	idx := strings.IndexByte(text[start+1:], '>')
	if idx < 0 {
		s.add(start, len(text), KindTag)
		return len(text), true
	}
	end = start + 1 + idx + 1
	s.add(start, end, KindTag)

	name, ok := opaqueOpening(text[start:end])
	if !ok {
		return end, false
	}

	closeStart, closeEnd := findClosing(text, end, name)
	if closeStart < 0 {
		s.add(end, len(text), KindOpaque)
		return len(text), true
	}
	s.add(end, closeStart, KindOpaque)
	s.add(closeStart, closeEnd, KindTag)
	return closeEnd, closeEnd == len(text)
}

// opaqueOpening reports whether tag opens one of the opaque elements.
func opaqueOpening(tag string) (string, bool) {
	if len(tag) < 3 || tag[1] == '/' || strings.HasSuffix(tag, "/>") {
		return "", false
	}
	n := 1
	for n < len(tag) && isNameByte(tag[n]) {
		n++
	}
	name := strings.ToLower(tag[1:n])
	if _, ok := opaqueElements[name]; !ok {
		return "", false
	}
	// <codex> is not <code>
	if c := tag[n]; c != '>' && c != '/' && !isSpace(c) {
		return "", false
	}
	return name, true
}

// findClosing finds the literal closing tag for name at or after from.
// It returns -1 when there is none.
func findClosing(text string, from int, name string) (start, end int) {
	needle := "</" + name
	for i := from; i < len(text); {
		idx := strings.IndexByte(text[i:], '<')
		if idx < 0 {
			return -1, -1
		}
		i += idx
		if len(text)-i >= len(needle) && strings.EqualFold(text[i:i+len(needle)], needle) {
			after := i + len(needle)
			if after == len(text) {
				return i, len(text)
			}
			if c := text[after]; c == '>' || isSpace(c) {
				gt := strings.IndexByte(text[after:], '>')
				if gt < 0 {
					return i, len(text)
				}
				return i, after + gt + 1
			}
		}
		i++
	}
	return -1, -1
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
