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

// tryFootnoteReference matches "[fn:LABEL]", "[fn:LABEL:DEFINITION]",
// or "[fn::DEFINITION]" (spec §4.3 item 8). DEFINITION, when present,
// is parsed with the minimal object set (spec §4.3's minimal-set
// contexts list footnote reference definitions explicitly) so a
// footnote reference can't nest another footnote reference inside
// itself.
func tryFootnoteReference(p *parser) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, "[fn:") {
		return nil, false
	}
	start := p.pos + 4
	labelEnd, hasLabel := scanFootnoteLabel(p.src, start)

	var children []GreenElement
	children = append(children, p.consumeToken(KindLeftSquareBracket, p.pos+1))
	children = append(children, p.consumeToken(KindText, p.pos+2)) // "fn"
	children = append(children, p.consumeToken(KindColon, p.pos+1))

	if hasLabel {
		if labelEnd < len(p.src) && p.src[labelEnd] == ']' {
			children = append(children, p.consumeToken(KindFootnoteLabel, labelEnd))
			children = append(children, p.consumeToken(KindRightSquareBracket, p.pos+1))
			return NewGreenNode(KindFootnoteReference, children), true
		}
		if labelEnd < len(p.src) && p.src[labelEnd] == ':' {
			defStart := labelEnd + 1
			defEnd, ok := scanFootnoteDefinitionEnd(p.src, defStart)
			if !ok || defEnd >= len(p.src) || p.src[defEnd] != ']' {
				return nil, false
			}
			children = append(children, p.consumeToken(KindFootnoteLabel, labelEnd))
			children = append(children, p.consumeToken(KindColon, defStart))
			children = append(children, footnoteDefinitionNode(p, defEnd))
			children = append(children, p.consumeToken(KindRightSquareBracket, defEnd+1))
			return NewGreenNode(KindFootnoteReference, children), true
		}
		return nil, false
	}

	// "[fn::DEFINITION]" - no label, a bare second colon.
	if start >= len(p.src) || p.src[start] != ':' {
		return nil, false
	}
	defStart := start + 1
	defEnd, ok := scanFootnoteDefinitionEnd(p.src, defStart)
	if !ok || defEnd >= len(p.src) || p.src[defEnd] != ']' {
		return nil, false
	}
	children = append(children, p.consumeToken(KindColon, defStart))
	children = append(children, footnoteDefinitionNode(p, defEnd))
	children = append(children, p.consumeToken(KindRightSquareBracket, defEnd+1))
	return NewGreenNode(KindFootnoteReference, children), true
}

func footnoteDefinitionNode(p *parser, boundEnd int) GreenElement {
	objs := parseObjectsUntil(p, true, func(pc *parser) bool {
		return pc.pos >= boundEnd
	})
	return NewGreenNode(KindFootnoteReferenceDefinition, objs)
}

func scanFootnoteLabel(src string, pos int) (end int, ok bool) {
	i := pos
	for i < len(src) {
		c := src[i]
		if isAlphaNumeric(rune(c)) || c == '_' || c == '-' {
			i++
			continue
		}
		break
	}
	return i, i > pos
}

// scanFootnoteDefinitionEnd scans a single-line, bracket-balanced run
// starting at pos and returns the offset of the first unbalanced "]",
// which is the bracket that closes the enclosing footnote reference.
// A newline before that point fails the scan, since a footnote
// reference definition must fit on one line.
func scanFootnoteDefinitionEnd(src string, pos int) (end int, ok bool) {
	depth := 0
	i := pos
	for i < len(src) {
		switch src[i] {
		case '\n', '\r':
			return i, false
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return i, true
			}
			depth--
		}
		i++
	}
	return i, false
}
