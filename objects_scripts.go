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

// tryStatisticsCookie matches "[" ("NUM?%" | "NUM?/NUM?") "]" (spec
// §4.3 item 16), where NUM is an optional run of digits. Content stays
// flat Text.
func tryStatisticsCookie(p *parser) (GreenElement, bool) {
	if p.pos >= len(p.src) || p.src[p.pos] != '[' {
		return nil, false
	}
	i := p.pos + 1
	start := i
	for i < len(p.src) && isDigit(p.src[i]) {
		i++
	}
	if i < len(p.src) && p.src[i] == '%' {
		i++
		if i >= len(p.src) || p.src[i] != ']' {
			return nil, false
		}
		return statisticsCookieNode(p, start, i)
	}
	if i < len(p.src) && p.src[i] == '/' {
		i++
		for i < len(p.src) && isDigit(p.src[i]) {
			i++
		}
		if i >= len(p.src) || p.src[i] != ']' {
			return nil, false
		}
		return statisticsCookieNode(p, start, i)
	}
	return nil, false
}

func statisticsCookieNode(p *parser, contentStart, closeAt int) (GreenElement, bool) {
	var children []GreenElement
	children = append(children, p.consumeToken(KindLeftSquareBracket, contentStart))
	children = append(children, p.consumeToken(KindText, closeAt))
	children = append(children, p.consumeToken(KindRightSquareBracket, closeAt+1))
	return NewGreenNode(KindStatisticsCookie, children), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// trySubSuperscript matches PRE ("_" | "^") CONTENT (spec §4.3 item
// 10), where PRE must be a non-whitespace character (or buffer start)
// and CONTENT is one of: a sign followed by a run of alphanumerics/
// ","/"/"/"." trimmed back to its last alphanumeric character; a bare
// "*"; or a "(...)"/"{...}" bracketed span whose content is parsed
// with the standard object set (grounded on
// original_source's subscript_superscript.rs - the one construct in
// the object layer where bracketed content uses the standard set
// rather than the minimal set, confirmed by that file's own tests).
func trySubSuperscript(p *parser) (GreenElement, bool) {
	mode := p.config.UseSubSuperscripts
	if p.pos >= len(p.src) || mode == SubSuperscriptsNil {
		return nil, false
	}
	marker := p.src[p.pos]
	var markerKind, nodeKind Kind
	switch marker {
	case '_':
		markerKind, nodeKind = KindUnderscore, KindSubscript
	case '^':
		markerKind, nodeKind = KindCaret, KindSuperscript
	default:
		return nil, false
	}
	prev, hasPrev := p.state.prev()
	if hasPrev && isSubSuperWhitespace(prev) {
		return nil, false
	}
	contentStart := p.pos + 1
	if contentStart >= len(p.src) {
		return nil, false
	}
	if mode == SubSuperscriptsBrace && p.src[contentStart] != '{' {
		return nil, false
	}

	if p.src[contentStart] == '*' {
		var children []GreenElement
		children = append(children, p.consumeToken(markerKind, contentStart))
		children = append(children, p.consumeToken(KindText, contentStart+1))
		return NewGreenNode(nodeKind, children), true
	}

	if p.src[contentStart] == '(' || p.src[contentStart] == '{' {
		open := p.src[contentStart]
		close := byte(')')
		openKind, closeKind := KindLeftRoundBracket, KindRightRoundBracket
		if open == '{' {
			close = '}'
			openKind, closeKind = KindLeftCurlyBracket, KindRightCurlyBracket
		}
		bodyStart := contentStart + 1
		bodyEnd := scanBracketBody(p.src, bodyStart, open, close)
		if bodyEnd < 0 {
			return nil, false
		}
		var children []GreenElement
		children = append(children, p.consumeToken(markerKind, contentStart))
		children = append(children, p.consumeToken(openKind, bodyStart))
		children = append(children, parseObjectsUntil(p, false, func(pc *parser) bool { return pc.pos >= bodyEnd })...)
		children = append(children, p.consumeToken(closeKind, bodyEnd+1))
		return NewGreenNode(nodeKind, children), true
	}

	end, ok := scanSubSuperPlain(p.src, contentStart)
	if !ok {
		return nil, false
	}
	var children []GreenElement
	children = append(children, p.consumeToken(markerKind, contentStart))
	children = append(children, p.consumeToken(KindText, end))
	return NewGreenNode(nodeKind, children), true
}

func isSubSuperWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// scanSubSuperPlain scans an optional sign followed by a run of
// alphanumeric/","/"/"/"." characters, then trims the end back to the
// last alphanumeric character in that run (so a trailing "." or "/"
// isn't swallowed into the subscript/superscript body).
func scanSubSuperPlain(src string, pos int) (end int, ok bool) {
	i := pos
	if i < len(src) && (src[i] == '+' || src[i] == '-') {
		i++
	}
	runStart := i
	lastAlnum := -1
	for i < len(src) {
		c := src[i]
		if isAlphaNumeric(rune(c)) {
			lastAlnum = i
			i++
			continue
		}
		if c == ',' || c == '/' || c == '.' {
			i++
			continue
		}
		break
	}
	if i == runStart || lastAlnum < 0 {
		return pos, false
	}
	return lastAlnum + 1, true
}

// scanBracketBody scans a nested-bracket-balanced run starting at pos
// up to (not including) the first unbalanced close byte, returning -1
// if the line ends first (a sub/superscript bracketed body can't span
// a newline).
func scanBracketBody(src string, pos int, open, close byte) int {
	depth := 0
	i := pos
	for i < len(src) {
		c := src[i]
		if c == '\n' {
			return -1
		}
		if c == close {
			if depth == 0 {
				return i
			}
			depth--
		} else if c == open {
			depth++
		}
		i++
	}
	return -1
}
