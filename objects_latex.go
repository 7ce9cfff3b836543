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

import "strings"

// tryLatexFragment recognizes the five LaTeX fragment forms spec
// §4.3 item 4 lists, tried in the teacher-grounded priority order from
// original_source/src/parser/object/latex_fragment.rs: the delimited
// forms first (they can't be confused with plain punctuation), then
// the single/multi-char dollar forms (which need PRE/POST
// disambiguation), then the bracket/brace \NAME forms.
func tryLatexFragment(p *parser) (GreenElement, bool) {
	if elem, ok := tryLatexParen(p); ok {
		return elem, true
	}
	if elem, ok := tryLatexBracketEnv(p); ok {
		return elem, true
	}
	if elem, ok := tryLatexDoubleDollar(p); ok {
		return elem, true
	}
	if elem, ok := tryLatexDollarChar(p); ok {
		return elem, true
	}
	if elem, ok := tryLatexDollarBody(p); ok {
		return elem, true
	}
	if elem, ok := tryLatexNameBracket(p); ok {
		return elem, true
	}
	return tryLatexNameBrace(p)
}

// tryLatexParen matches \(CONTENTS\).
func tryLatexParen(p *parser) (GreenElement, bool) {
	return latexDelimited(p, `\(`, `\)`, KindBackSlash, KindLeftRoundBracket, KindBackSlash, KindRightRoundBracket)
}

// tryLatexBracketEnv matches \[CONTENTS\].
func tryLatexBracketEnv(p *parser) (GreenElement, bool) {
	return latexDelimited(p, `\[`, `\]`, KindBackSlash, KindLeftSquareBracket, KindBackSlash, KindRightSquareBracket)
}

func latexDelimited(p *parser, open, close string, openKind1, openKind2, closeKind1, closeKind2 Kind) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, open) {
		return nil, false
	}
	end := strings.Index(p.src[p.pos+len(open):], close)
	if end < 0 {
		return nil, false
	}
	contentEnd := p.pos + len(open) + end
	var children []GreenElement
	children = append(children, p.consumeToken(openKind1, p.pos+1))
	children = append(children, p.consumeToken(openKind2, p.pos+1))
	children = append(children, p.consumeToken(KindText, contentEnd))
	children = append(children, p.consumeToken(closeKind1, p.pos+1))
	children = append(children, p.consumeToken(closeKind2, p.pos+1))
	return NewGreenNode(KindLatexFragment, children), true
}

// tryLatexDoubleDollar matches $$CONTENTS$$.
func tryLatexDoubleDollar(p *parser) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, "$$") {
		return nil, false
	}
	end := strings.Index(p.src[p.pos+2:], "$$")
	if end < 0 {
		return nil, false
	}
	contentEnd := p.pos + 2 + end
	closeEnd := contentEnd + 2
	var children []GreenElement
	children = append(children, p.consumeToken(KindDollar2, p.pos+2))
	children = append(children, p.consumeToken(KindText, contentEnd))
	children = append(children, p.consumeToken(KindDollar2, closeEnd))
	return NewGreenNode(KindLatexFragment, children), true
}

func isLatexPostChar(r rune, hasRune bool) bool {
	if !hasRune {
		return true // end of input
	}
	if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
		return true
	}
	return isASCIIPunct(r)
}

func isASCIIPunct(r rune) bool {
	return strings.ContainsRune(`!"#$%&'()*+,-./:;<=>?@[\]^_`+"`"+`{|}~`, r)
}

// tryLatexDollarChar matches PRE$CHAR$POST, a single non-border
// character between dollar signs. PRE is a zero-width lookbehind
// against the previously consumed character (tracked in parser state)
// rather than a re-consumed character, since the scanning loop in
// objects.go already advanced past it.
func tryLatexDollarChar(p *parser) (GreenElement, bool) {
	prev, hasPrev := p.state.prev()
	if !hasPrev || prev == '$' {
		return nil, false
	}
	if p.eof() || p.src[p.pos] != '$' {
		return nil, false
	}
	c, w := decodeRuneAt(p.src, p.pos+1)
	if w == 0 || strings.ContainsRune(".,?;\" \t\n", c) {
		return nil, false
	}
	closeDollar := p.pos + 1 + w
	if closeDollar >= len(p.src) || p.src[closeDollar] != '$' {
		return nil, false
	}
	post, postW := decodeRuneAt(p.src, closeDollar+1)
	if !isLatexPostChar(post, postW > 0) {
		return nil, false
	}
	var children []GreenElement
	children = append(children, p.consumeToken(KindDollar, p.pos+1))
	children = append(children, p.consumeToken(KindText, p.pos+w))
	children = append(children, p.consumeToken(KindDollar, p.pos+1))
	return NewGreenNode(KindLatexFragment, children), true
}

// tryLatexDollarBody matches PRE$BORDER1 BODY BORDER2$POST.
func tryLatexDollarBody(p *parser) (GreenElement, bool) {
	prev, hasPrev := p.state.prev()
	if !hasPrev || prev == '$' {
		return nil, false
	}
	if p.eof() || p.src[p.pos] != '$' {
		return nil, false
	}
	b1, w1 := decodeRuneAt(p.src, p.pos+1)
	if w1 == 0 || strings.ContainsRune("\r\n \t.,;$", b1) {
		return nil, false
	}
	// Find the next '$' and verify the char right before it is a valid
	// border2 (not whitespace/.,/$ itself), with at least one body byte
	// between border1 and border2.
	searchFrom := p.pos + 1 + w1
	closeDollar := strings.IndexByte(p.src[searchFrom:], '$')
	if closeDollar < 0 {
		return nil, false
	}
	closeDollar += searchFrom
	if closeDollar <= searchFrom {
		return nil, false
	}
	b2, _ := decodeRuneBefore(p.src, closeDollar)
	if strings.ContainsRune("\r\n \t.,$", b2) {
		return nil, false
	}
	post, postW := decodeRuneAt(p.src, closeDollar+1)
	if !isLatexPostChar(post, postW > 0) {
		return nil, false
	}
	var children []GreenElement
	children = append(children, p.consumeToken(KindDollar, p.pos+1))
	children = append(children, p.consumeToken(KindText, closeDollar))
	children = append(children, p.consumeToken(KindDollar, p.pos+1))
	return NewGreenNode(KindLatexFragment, children), true
}

// tryLatexNameBracket matches \NAME[CONTENTS], where NAME is not a
// known entity name (an unknown macro-style LaTeX command name with a
// bracketed optional argument).
func tryLatexNameBracket(p *parser) (GreenElement, bool) {
	return latexNameDelimited(p, '[', ']', "{}[]\r\n")
}

// tryLatexNameBrace matches \NAME{CONTENTS}.
func tryLatexNameBrace(p *parser) (GreenElement, bool) {
	return latexNameDelimited(p, '{', '}', "{}\r\n")
}

func latexNameDelimited(p *parser, open, close byte, forbidden string) (GreenElement, bool) {
	if p.eof() || p.src[p.pos] != '\\' {
		return nil, false
	}
	nameEnd, ok := scanLatexName(p.src, p.pos+1)
	if !ok {
		return nil, false
	}
	name := p.src[p.pos+1 : nameEnd]
	if entityKnown(name) {
		return nil, false
	}
	if nameEnd >= len(p.src) || p.src[nameEnd] != open {
		return nil, false
	}
	i := nameEnd + 1
	for i < len(p.src) && p.src[i] != close && !strings.ContainsRune(forbidden, rune(p.src[i])) {
		i++
	}
	if i >= len(p.src) || p.src[i] != close {
		return nil, false
	}
	end := i + 1
	tok := p.consumeToken(KindText, end)
	return NewGreenNode(KindLatexFragment, []GreenElement{tok}), true
}

func scanLatexName(src string, pos int) (end int, ok bool) {
	i := pos
	for i < len(src) {
		c := src[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			i++
			continue
		}
		break
	}
	return i, i > pos
}
