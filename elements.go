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

// parseElement recognizes one element (plus any affiliated keywords
// prefixing it) at p's current position and returns its green
// children in source order. It always makes progress when !p.eof():
// Paragraph is the unconditional fallback, grounded on
// original_source's element.rs dispatch list, which puts paragraph_parser
// last in its choice(...) so every other alternative gets first refusal.
//
// The dispatch order below - footnote definition, drawer, plain list,
// horizontal rule, latex environment, block, comment, table, fixed
// width, keyword, paragraph - mirrors element.rs's own choice(...)
// order exactly.
func parseElement(p *parser) []GreenElement {
	var prefix []GreenElement
	for {
		ckpt := p.checkpoint()
		kw, ok := tryAffiliatedKeyword(p)
		if !ok {
			p.restore(ckpt)
			break
		}
		prefix = append(prefix, kw)
	}
	if p.eof() {
		return prefix
	}
	elem, ok := parseElementCore(p)
	if !ok {
		return prefix
	}
	return append(prefix, elem)
}

func parseElementCore(p *parser) (GreenElement, bool) {
	if elem, ok := tryFootnoteDefinition(p); ok {
		return elem, true
	}
	if elem, ok := tryDrawer(p); ok {
		return elem, true
	}
	if elem, ok := tryPlainList(p); ok {
		return elem, true
	}
	if elem, ok := tryHorizontalRule(p); ok {
		return elem, true
	}
	if elem, ok := tryLatexEnvironment(p); ok {
		return elem, true
	}
	if elem, ok := tryBlock(p); ok {
		return elem, true
	}
	if elem, ok := tryComment(p); ok {
		return elem, true
	}
	if elem, ok := tryTable(p); ok {
		return elem, true
	}
	if elem, ok := tryFixedWidth(p); ok {
		return elem, true
	}
	if elem, ok := tryKeyword(p); ok {
		return elem, true
	}
	return tryParagraph(p)
}

// parseElementsUntil repeatedly calls parseElement until stop reports
// true or input is exhausted, collecting every produced child. Used by
// every construct whose content is "a sequence of elements" (spec
// §4.4.2, §4.4.5, §4.4.6): Section, greater blocks, drawers.
// A blank line found while collecting is always consumed directly as
// its own sibling BlankLine token rather than handed to parseElement -
// whether a run of several blank lines stops the collection early (as
// for a list item, which allows only one) or not (as for a Section,
// which allows any number) is entirely up to stop.
func parseElementsUntil(p *parser, stop func(p *parser) bool) []GreenElement {
	var out []GreenElement
	for !p.eof() {
		if stop != nil && stop(p) {
			break
		}
		before := p.pos
		if end, ok := scanBlankLine(p.src, p.pos); ok {
			out = append(out, p.consumeToken(KindBlankLine, end))
		} else {
			out = append(out, parseElement(p)...)
		}
		if p.pos == before {
			// Safety valve: no element parser may return ok=true
			// without consuming input, but guard against an infinite
			// loop rather than hang if one ever does.
			break
		}
	}
	return out
}

// lineStartsAt reports whether pos is at the beginning of a line
// (start of input or immediately after a newline) - several lookahead
// predicates below only apply at a line's start.
func lineStartsAt(src string, pos int) bool {
	return pos == 0 || (pos > 0 && src[pos-1] == '\n')
}

// isBlankLineAt peeks whether the line at pos is blank, without
// consuming anything.
func isBlankLineAt(src string, pos int) bool {
	_, ok := scanBlankLine(src, pos)
	return ok
}

// isSimpleHeadingRowAt is the non-recursive heading-row lookahead used
// by paragraph termination and Section's own negative lookahead (spec
// §4.4.2, §4.4.3): one or more "*" starting exactly at pos (no leading
// whitespace), then a space, tab, line end or end of input. It deliberately does not parse TODO/priority/tags/etc., to
// stay cheap and to avoid the stack depth a full heading-subtree parse
// would risk (grounded on paragraph.rs's simple_heading_row_parser).
func isSimpleHeadingRowAt(src string, pos int) bool {
	i := pos
	for i < len(src) && src[i] == '*' {
		i++
	}
	if i == pos {
		return false
	}
	return i >= len(src) || src[i] == ' ' || src[i] == '\t' || src[i] == '\n'
}

func isTableRowAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	return i < len(src) && src[i] == '|'
}

// isListItemAt peeks whether an item.rs-style bullet row starts at
// pos: optional indent, then "-"/"+"/a counter ("1." "1)" "a."
// "a)"), or "*" (only when indented past the line start, so it can
// never be confused with a heading star), then required whitespace.
func isListItemAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	indented := i > pos
	if i >= len(src) {
		return false
	}
	switch src[i] {
	case '-', '+':
		return hasBulletWhitespaceAfter(src, i+1)
	case '*':
		return indented && hasBulletWhitespaceAfter(src, i+1)
	}
	if j, ok := scanCounterBullet(src, i); ok {
		return hasBulletWhitespaceAfter(src, j)
	}
	return false
}

func hasBulletWhitespaceAfter(src string, pos int) bool {
	return pos < len(src) && (src[pos] == ' ' || src[pos] == '\t')
}

// scanCounterBullet matches a decimal run or single letter followed by
// "." or ")", per item.rs's counter_parser.
func scanCounterBullet(src string, pos int) (end int, ok bool) {
	i := pos
	if i < len(src) && isDigit(src[i]) {
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	} else if i < len(src) && src[i] >= 'a' && src[i] <= 'z' {
		i++
	} else {
		return pos, false
	}
	if i >= len(src) || (src[i] != '.' && src[i] != ')') {
		return pos, false
	}
	return i + 1, true
}

// isDrawerBeginAt matches a drawer-name row: optional indent, ":",
// name (alnum/_/-), ":", optional trailing whitespace, newline.
func isDrawerBeginAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	if i >= len(src) || src[i] != ':' {
		return false
	}
	i++
	nameStart := i
	for i < len(src) && (isAlphaNumeric(rune(src[i])) || src[i] == '_' || src[i] == '-') {
		i++
	}
	if i == nameStart || i >= len(src) || src[i] != ':' {
		return false
	}
	i++
	i, _ = scanWhitespace(src, i)
	return i >= len(src) || src[i] == '\n'
}

func isBlockBeginAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	_, ok := scanJustCaseInsensitive(src, i, "#+begin_")
	return ok
}

func isLatexEnvBeginAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	_, ok := scanJustCaseInsensitive(src, i, `\begin{`)
	return ok
}

func isFixedWidthAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	if i >= len(src) || src[i] != ':' {
		return false
	}
	j := i + 1
	return j >= len(src) || src[j] == ' ' || src[j] == '\n'
}

func isHorizontalRuleAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	dashStart := i
	for i < len(src) && src[i] == '-' {
		i++
	}
	if i-dashStart < 5 {
		return false
	}
	i, _ = scanWhitespace(src, i)
	return i >= len(src) || src[i] == '\n'
}

func isCommentLineAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	if i >= len(src) || src[i] != '#' {
		return false
	}
	j := i + 1
	return j >= len(src) || src[j] == ' ' || src[j] == '\n'
}

// isKeywordPrefixAt matches the generic "#+KEY" opener shared by both
// Keyword and AffiliatedKeyword (they're disambiguated later by
// whether KEY is in config.AffiliatedKeywords).
func isKeywordPrefixAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	return hasPrefixAt(src, i, "#+")
}

func isFootnoteDefAt(src string, pos int) bool {
	return hasPrefixAt(src, pos, "[fn:") && scanFootnoteDefLabel(src, pos) > 0
}

// scanFootnoteDefLabel returns the end offset of "[fn:LABEL]" at pos,
// or 0 if it doesn't match.
func scanFootnoteDefLabel(src string, pos int) int {
	i := pos + len("[fn:")
	start := i
	for i < len(src) && (isAlphaNumeric(rune(src[i])) || src[i] == '_' || src[i] == '-') {
		i++
	}
	if i == start || i >= len(src) || src[i] != ']' {
		return 0
	}
	return i + 1
}
