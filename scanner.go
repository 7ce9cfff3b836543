// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package org

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseFold backs equalFold, which scanJustCaseInsensitive uses for every
// case-insensitive literal match in the package (block begin/end
// markers §4.4.5, drawer and property-drawer rows, LaTeX environment
// rows). Radio-link and link-protocol matching are case-sensitive and
// do not use it. Using
// golang.org/x/text/cases instead of strings.EqualFold keeps the fold
// Unicode-aware rather than ASCII-only, matching how the rest of the
// retrieval pack reaches for x/text wherever text comparison needs to
// be locale-independent.
var caseFold = cases.Fold()

// equalFold reports whether a and b are equal under Unicode case
// folding.
func equalFold(a, b string) bool {
	return caseFold.String(a) == caseFold.String(b)
}

// toUpper uppercases s the way #+BEGIN_X / #+END_X type names and
// affiliated keyword keys are normalized (spec §4.4.5, §4.4.10).
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// scanWhitespace consumes a run of spaces and tabs starting at pos. It
// returns the end offset (pos if nothing matched) and whether anything
// was consumed.
func scanWhitespace(src string, pos int) (end int, ok bool) {
	i := pos
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i, i > pos
}

// scanNewline matches a single literal "\n" at pos. Line endings are
// never normalized: a bare "\r" is not a newline.
func scanNewline(src string, pos int) (end int, ok bool) {
	if pos < len(src) && src[pos] == '\n' {
		return pos + 1, true
	}
	return pos, false
}

// scanBlankLine matches optional whitespace followed by a newline or
// end of input, returning the end offset of the whole run (the
// BlankLine token text) and whether it matched.
func scanBlankLine(src string, pos int) (end int, ok bool) {
	i, _ := scanWhitespace(src, pos)
	if i == len(src) {
		return i, true
	}
	if nl, matched := scanNewline(src, i); matched {
		return nl, true
	}
	return pos, false
}

// isBlankLineText reports whether s (typically one line, newline
// included) consists only of spaces and tabs (plus its terminator).
func isBlankLineText(s string) bool {
	for _, b := range []byte(s) {
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return false
		}
	}
	return true
}

// scanJustCaseInsensitive matches literal case-insensitively at pos,
// returning the end offset of the matched input slice (which may
// differ in case from literal) and whether it matched.
func scanJustCaseInsensitive(src string, pos int, literal string) (end int, ok bool) {
	if pos+len(literal) > len(src) {
		return pos, false
	}
	candidate := src[pos : pos+len(literal)]
	if !equalFold(candidate, literal) {
		return pos, false
	}
	return pos + len(literal), true
}

// scanLine returns the end offset of the current line starting at pos,
// including its trailing newline if present, or the end of input.
func scanLine(src string, pos int) int {
	i := pos
	for i < len(src) && src[i] != '\n' {
		i++
	}
	if i < len(src) {
		i++
	}
	return i
}

// lineEnd returns the offset of the newline terminating the line that
// starts at pos (or len(src) if the line is unterminated), not
// including the newline itself.
func lineEnd(src string, pos int) int {
	i := pos
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

// decodeRuneAt decodes the rune starting at pos, returning it and its
// width in bytes. Invalid bytes decode as the replacement character
// with a width of 1, matching the teacher's NUL-replacement treatment
// of malformed input.
func decodeRuneAt(src string, pos int) (rune, int) {
	if pos >= len(src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(src[pos:])
}

// decodeRuneBefore decodes the rune immediately preceding pos.
func decodeRuneBefore(src string, pos int) (rune, int) {
	if pos <= 0 {
		return utf8.RuneError, 0
	}
	return utf8.DecodeLastRuneInString(src[:pos])
}

// prevValid is the zero-width PRE-char lookbehind assertion (spec
// §4.2): it reports whether predicate holds for the state's recorded
// previous character, treating start-of-input as satisfying predicates
// that explicitly allow it.
func prevValid(s *parserState, allowSOF bool, predicate func(rune) bool) bool {
	c, has := s.prev()
	if !has {
		return allowSOF
	}
	return predicate(c)
}
