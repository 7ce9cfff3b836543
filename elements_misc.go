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

// tryHorizontalRule matches optional indent, five or more consecutive
// "-", optional trailing whitespace, and a newline or end of input,
// per spec §4.4.8 (grounded on original_source's horizontal_rule.rs;
// its own should_panic fixture confirms four dashes is rejected). The
// dash run collapses into a single Text token, just as the grounding
// source does.
func tryHorizontalRule(p *parser) (GreenElement, bool) {
	if !isHorizontalRuleAt(p.src, p.pos) {
		return nil, false
	}
	var children []GreenElement
	wsEnd, hasWS := scanWhitespace(p.src, p.pos)
	if hasWS {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	dashEnd := wsEnd
	for dashEnd < len(p.src) && p.src[dashEnd] == '-' {
		dashEnd++
	}
	children = append(children, p.consumeToken(KindText, dashEnd))
	if wsEnd2, has := scanWhitespace(p.src, dashEnd); has {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd2))
	}
	if nl, ok := scanNewline(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindNewline, nl))
	}
	children = append(children, consumeBlankLines(p)...)
	return NewGreenNode(KindHorizontalRule, children), true
}

// tryLatexEnvironment matches a "\begin{NAME}...\end{NAME}" block, per
// spec §4.4.9 (grounded on original_source's latex_environment.rs). The
// begin and end rows are flattened directly into LatexEnvironment's
// children rather than wrapped in their own node kinds, since kind.go
// has no LatexEnvironmentBegin/End kinds (consistent with how heading
// rows and block rows are flattened elsewhere in this tree).
func tryLatexEnvironment(p *parser) (GreenElement, bool) {
	if !isLatexEnvBeginAt(p.src, p.pos) {
		return nil, false
	}
	start := p.pos
	wsEnd, _ := scanWhitespace(p.src, start)
	cmdEnd := wsEnd + len(`\begin`)
	if cmdEnd >= len(p.src) || p.src[cmdEnd] != '{' {
		return nil, false
	}
	nameStart := cmdEnd + 1
	nameEnd := nameStart
	for nameEnd < len(p.src) && isLatexEnvNameChar(p.src[nameEnd]) {
		nameEnd++
	}
	if nameEnd == nameStart || nameEnd >= len(p.src) || p.src[nameEnd] != '}' {
		return nil, false
	}
	name := p.src[nameStart:nameEnd]
	curlyCloseEnd := nameEnd + 1
	rowWsEnd, _ := scanWhitespace(p.src, curlyCloseEnd)
	if rowWsEnd >= len(p.src) || p.src[rowWsEnd] != '\n' {
		return nil, false
	}
	contentStart := rowWsEnd + 1

	endRowStart, endNameStart, endNameEnd, ok := findLatexEnvEnd(p.src, contentStart, name)
	if !ok {
		p.emit(IncompleteStructure, Span{start, len(p.src)}, "latex environment missing \\end{"+name+"}")
		return nil, false
	}

	var children []GreenElement
	if wsEnd > start {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	children = append(children, p.consumeToken(KindText, cmdEnd))
	children = append(children, p.consumeToken(KindLeftCurlyBracket, nameStart))
	children = append(children, p.consumeToken(KindText, nameEnd))
	children = append(children, p.consumeToken(KindRightCurlyBracket, curlyCloseEnd))
	if rowWsEnd > curlyCloseEnd {
		children = append(children, p.consumeToken(KindWhitespace, rowWsEnd))
	}
	children = append(children, p.consumeToken(KindNewline, contentStart))
	if endRowStart > contentStart {
		children = append(children, p.consumeToken(KindText, endRowStart))
	}
	endWsEnd, _ := scanWhitespace(p.src, p.pos)
	if endWsEnd > endRowStart {
		children = append(children, p.consumeToken(KindWhitespace, endWsEnd))
	}
	endCmdEnd := endWsEnd + len(`\end`)
	children = append(children, p.consumeToken(KindText, endCmdEnd))
	children = append(children, p.consumeToken(KindLeftCurlyBracket, endNameStart))
	children = append(children, p.consumeToken(KindText, endNameEnd))
	children = append(children, p.consumeToken(KindRightCurlyBracket, endNameEnd+1))
	if nl, ok := scanNewline(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindNewline, nl))
	}
	children = append(children, consumeBlankLines(p)...)
	return NewGreenNode(KindLatexEnvironment, children), true
}

func isLatexEnvNameChar(c byte) bool {
	return isAlphaNumeric(rune(c)) || c == '*'
}

// findLatexEnvEnd scans forward from pos for a line matching
// "\end{NAME}" (case-insensitive keyword, exact-case name match), per
// the grounding source's context-threaded name check. Returns the
// start of that end row, and the bounds of its captured NAME.
func findLatexEnvEnd(src string, pos int, name string) (rowStart, nameStart, nameEnd int, ok bool) {
	i := pos
	for i < len(src) {
		lineStart := i
		wsEnd, _ := scanWhitespace(src, i)
		if j, matched := scanJustCaseInsensitive(src, wsEnd, `\end{`); matched {
			nStart := j
			nEnd := nStart
			for nEnd < len(src) && isLatexEnvNameChar(src[nEnd]) {
				nEnd++
			}
			if nEnd < len(src) && src[nEnd] == '}' && src[nStart:nEnd] == name {
				return lineStart, nStart, nEnd, true
			}
		}
		i = scanLine(src, lineStart)
		if i == lineStart {
			break
		}
	}
	return 0, 0, 0, false
}

// tryComment matches one or more "#" comment lines, per spec §4.4.10
// (grounded on original_source's comment.rs: each line is either
// indent "#" WS1 content NL, or indent "#" NL, with no object parsing
// of the content).
func tryComment(p *parser) (GreenElement, bool) {
	if !isCommentLineAt(p.src, p.pos) {
		return nil, false
	}
	var children []GreenElement
	for isCommentLineAt(p.src, p.pos) {
		wsEnd, hasWS := scanWhitespace(p.src, p.pos)
		if hasWS {
			children = append(children, p.consumeToken(KindWhitespace, wsEnd))
		}
		children = append(children, p.consumeToken(KindHash, wsEnd+1))
		contentStart, _ := scanWS1(p.src, p.pos)
		if contentStart > p.pos {
			children = append(children, p.consumeToken(KindWhitespace, contentStart))
		}
		le := lineEnd(p.src, p.pos)
		if le > p.pos {
			children = append(children, p.consumeToken(KindText, le))
		}
		if nl, ok := scanNewline(p.src, p.pos); ok {
			children = append(children, p.consumeToken(KindNewline, nl))
		}
	}
	children = append(children, consumeBlankLines(p)...)
	return NewGreenNode(KindComment, children), true
}

// tryFixedWidth matches one or more ":"-prefixed lines, per spec
// §4.4.10. original_source's element.rs references a fixed_width
// module that is absent from the retrieval pack, so this is modeled
// directly on the standard Org-mode rule (a line whose first non-blank
// character is ":" followed by a space or line end) and structured
// analogously to tryComment, its closest sibling, substituting Colon
// for Hash.
func tryFixedWidth(p *parser) (GreenElement, bool) {
	if !isFixedWidthAt(p.src, p.pos) {
		return nil, false
	}
	var children []GreenElement
	for isFixedWidthAt(p.src, p.pos) {
		wsEnd, hasWS := scanWhitespace(p.src, p.pos)
		if hasWS {
			children = append(children, p.consumeToken(KindWhitespace, wsEnd))
		}
		children = append(children, p.consumeToken(KindColon, wsEnd+1))
		contentStart, _ := scanWS1(p.src, p.pos)
		if contentStart > p.pos {
			children = append(children, p.consumeToken(KindWhitespace, contentStart))
		}
		le := lineEnd(p.src, p.pos)
		if le > p.pos {
			children = append(children, p.consumeToken(KindText, le))
		}
		if nl, ok := scanNewline(p.src, p.pos); ok {
			children = append(children, p.consumeToken(KindNewline, nl))
		}
	}
	children = append(children, consumeBlankLines(p)...)
	return NewGreenNode(KindFixedWidth, children), true
}

// tryPlanning matches one or more "DEADLINE:"/"SCHEDULED:"/"CLOSED:"
// timestamp pairs on a single line, per spec §4.4.1 (grounded on
// original_source's planning.rs). Planning only ever appears
// immediately after a heading row, so it's called directly from
// elements_heading.go rather than through parseElementCore's dispatch
// table - planning.rs itself is unreferenced from element.rs's own
// choice(...) list for the same reason.
func tryPlanning(p *parser) (GreenElement, bool) {
	ckpt := p.checkpoint()
	var children []GreenElement
	count := 0
	for {
		lineCkpt := p.checkpoint()
		wsEnd, hasWS := scanWhitespace(p.src, p.pos)
		kwEnd, kw, ok := scanPlanningKeyword(p.src, wsEnd)
		if !ok {
			p.restore(lineCkpt)
			break
		}
		if kwEnd >= len(p.src) || p.src[kwEnd] != ':' {
			p.restore(lineCkpt)
			break
		}
		colonEnd := kwEnd + 1
		wsEnd2, hasWS2 := scanWhitespace(p.src, colonEnd)
		ts, ok := tryTimestampAt(p, wsEnd2)
		if !ok {
			p.restore(lineCkpt)
			break
		}
		_ = kw
		if hasWS {
			children = append(children, NewGreenToken(KindWhitespace, p.src[lineCkpt.pos:wsEnd]))
		}
		children = append(children, NewGreenToken(KindPlanningKeyword, p.src[wsEnd:kwEnd]))
		children = append(children, NewGreenToken(KindColon, p.src[kwEnd:colonEnd]))
		if hasWS2 {
			children = append(children, NewGreenToken(KindWhitespace, p.src[colonEnd:wsEnd2]))
		}
		children = append(children, ts)
		count++
	}
	if count == 0 {
		p.restore(ckpt)
		return nil, false
	}
	wsEnd, hasWS := scanWhitespace(p.src, p.pos)
	if hasWS {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	if nl, ok := scanNewline(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindNewline, nl))
	}
	return NewGreenNode(KindPlanning, children), true
}

func scanPlanningKeyword(src string, pos int) (end int, kw string, ok bool) {
	for _, lit := range [...]string{"DEADLINE", "SCHEDULED", "CLOSED"} {
		if hasPrefixAt(src, pos, lit) {
			return pos + len(lit), lit, true
		}
	}
	return pos, "", false
}

// tryTimestampAt parses a timestamp starting exactly at pos, advancing
// p only on success (used by tryPlanning, where a trailing keyword
// without a valid timestamp must not consume input).
func tryTimestampAt(p *parser, pos int) (GreenElement, bool) {
	if pos != p.pos {
		saved := p.pos
		p.pos = pos
		ts, ok := tryTimestamp(p)
		if !ok {
			p.pos = saved
		}
		return ts, ok
	}
	return tryTimestamp(p)
}

// tryFootnoteDefinition matches "[fn:LABEL] CONTENT", per spec §4.4.11
// (grounded on original_source's footnote_definition.rs). Content is a
// recursively parsed element sequence, stopping before a heading row,
// a second consecutive blank line, or another footnote definition.
func tryFootnoteDefinition(p *parser) (GreenElement, bool) {
	labelEnd := scanFootnoteDefLabel(p.src, p.pos)
	if labelEnd == 0 {
		return nil, false
	}
	wsEnd, hasWS := scanWS1(p.src, labelEnd)
	if !hasWS {
		return nil, false
	}
	var children []GreenElement
	children = append(children, p.consumeToken(KindLeftSquareBracket, p.pos+1))
	children = append(children, p.consumeToken(KindText, p.pos+2))
	children = append(children, p.consumeToken(KindColon, p.pos+1))
	children = append(children, p.consumeToken(KindFootnoteLabel, labelEnd-1))
	children = append(children, p.consumeToken(KindRightSquareBracket, labelEnd))
	children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	children = append(children, parseElementsUntil(p, footnoteDefContentStop)...)
	return NewGreenNode(KindFootnoteDefinition, children), true
}

func footnoteDefContentStop(p *parser) bool {
	if isSimpleHeadingRowAt(p.src, p.pos) {
		return true
	}
	if isFootnoteDefAt(p.src, p.pos) {
		return true
	}
	if isBlankLineAt(p.src, p.pos) {
		end, _ := scanBlankLine(p.src, p.pos)
		return isBlankLineAt(p.src, end)
	}
	return false
}
