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

// objectParser attempts to recognize one inline object kind at p's
// current position. It may leave p modified on failure (for example
// tryFootnoteReference consumes tokens before it can fail); callers
// checkpoint/restore around every attempt so individual parsers don't
// have to.
type objectParser func(p *parser) (GreenElement, bool)

// standardObjectOrder is the priority list for the standard object set
// (spec §4.3, items 2-17; item 1, Text, is the fallback the scanning
// loop below produces itself rather than a parser in this list).
var standardObjectOrder = []objectParser{
	tryLineBreak,
	tryEntity,
	tryLatexFragment,
	tryExportSnippet,
	tryMacro,
	tryFootnoteReference,
	tryCitation,
	tryTimestamp,
	tryLink,
	tryAngleLink,
	tryRadioLink,
	tryRadioTargetOrTarget,
	tryStatisticsCookie,
	trySubSuperscript,
	tryTextMarkup,
}

// minimalObjectOrder is used inside contexts that forbid recursive
// objects: link descriptions, citation keys, footnote reference
// definitions (spec §4.3). It excludes footnote references, citations,
// timestamps, links, and radio/targets - the "heavy"/recursive
// constructs - but still recognizes markup, since markup's own content
// always recurses through the standard set regardless of the context
// it was opened from (spec §4.3.17).
var minimalObjectOrder = []objectParser{
	tryLineBreak,
	tryEntity,
	tryLatexFragment,
	tryExportSnippet,
	tryMacro,
	tryStatisticsCookie,
	tryTextMarkup,
}

// objectOrder is assigned in init: the parsers in both lists reach
// parseObjectsUntil, which calls objectOrder, so reading the lists from
// a plain function would make their initializers a cycle.
var objectOrder func(minimal bool) []objectParser

func init() {
	objectOrder = func(minimal bool) []objectParser {
		if minimal {
			return minimalObjectOrder
		}
		return standardObjectOrder
	}
}

// parseObjectsUntil repeatedly tries the object set (minimal or
// standard) at the current position, stopping when stop reports true
// or input is exhausted. Runs of characters that don't open any object
// are coalesced into a single Text object (spec §4.3 item 1), rather
// than being split by every failed lookahead.
func parseObjectsUntil(p *parser, minimal bool, stop func(p *parser) bool) []GreenElement {
	var out []GreenElement
	order := objectOrder(minimal)
	pendingStart := p.pos
	flush := func(end int) {
		if end > pendingStart {
			out = append(out, NewGreenToken(KindText, p.src[pendingStart:end]))
		}
	}
	for {
		if p.eof() || (stop != nil && stop(p)) {
			break
		}
		matched := false
		for _, try := range order {
			ckpt := p.checkpoint()
			elem, ok := try(p)
			if ok {
				flush(ckpt.pos)
				out = append(out, elem)
				pendingStart = p.pos
				matched = true
				break
			}
			p.restore(ckpt)
		}
		if matched {
			continue
		}
		_, w := p.peek()
		if w == 0 {
			break
		}
		r, _ := p.peek()
		p.pos += w
		p.state.setPrevChar(r)
	}
	flush(p.pos)
	return out
}

// parseObject tries a single object (minimal or standard set) at the
// current position without consuming any trailing Text; used by
// callers that need exactly one object (nothing in the package or its
// tests calls it; it is kept for symmetry with objectParser).
func parseObject(p *parser, minimal bool) (GreenElement, bool) {
	for _, try := range objectOrder(minimal) {
		ckpt := p.checkpoint()
		if elem, ok := try(p); ok {
			return elem, true
		}
		p.restore(ckpt)
	}
	return nil, false
}

// tryLineBreak matches "\\" followed by optional whitespace and a
// newline (spec §4.3 item 2). It fails if the previous character was
// itself a backslash, avoiding "\\\\" being read as an escaped
// backslash plus a line break.
func tryLineBreak(p *parser) (GreenElement, bool) {
	if prevChar, has := p.state.prev(); has && prevChar == '\\' {
		return nil, false
	}
	if !hasPrefixAt(p.src, p.pos, `\\`) {
		return nil, false
	}
	wsEnd, hasWS := scanWhitespace(p.src, p.pos+2)
	if _, ok := scanNewline(p.src, wsEnd); !ok {
		return nil, false
	}
	var children []GreenElement
	children = append(children, p.consumeToken(KindBackSlash2, p.pos+2))
	if hasWS {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	nlEnd, _ := scanNewline(p.src, p.pos)
	children = append(children, p.consumeToken(KindNewline, nlEnd))
	return NewGreenNode(KindLineBreak, children), true
}

func hasPrefixAt(src string, pos int, prefix string) bool {
	return pos+len(prefix) <= len(src) && src[pos:pos+len(prefix)] == prefix
}

func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isSpaceOrTab(r rune) bool {
	return r == ' ' || r == '\t'
}
