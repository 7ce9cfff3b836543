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

// tryHeadingSubtree matches a heading row and everything nested under
// it - optional Planning, optional PropertyDrawer, an optional Section
// of content, and recursively nested child HeadingSubtrees - per spec
// §4.4.1. The heading row's own sub-parts (stars, TODO/DONE keyword,
// priority, COMMENT marker, title, tags) are flattened directly into
// HeadingSubtree's children with no wrapping "row" node, since kind.go
// classifies all of them as leaf tokens; for the same reason, title and
// tags are each stored as a single opaque token rather than
// recursively parsed into inline objects.
//
// Level enforcement (spec §4.1, §7): a subtree is only entered if its
// star count strictly exceeds the enclosing subtree's (0 meaning "no
// enclosing subtree"). A row that fails this check is left completely
// unconsumed and reported as LevelMismatch, so the caller's own loop
// (whether that's a parent HeadingSubtree or the document root) picks
// it up as a sibling instead.
func tryHeadingSubtree(p *parser) (GreenElement, bool) {
	if !isSimpleHeadingRowAt(p.src, p.pos) {
		return nil, false
	}
	start := p.pos
	starsEnd := start
	for starsEnd < len(p.src) && p.src[starsEnd] == '*' {
		starsEnd++
	}
	level := uint8(starsEnd - start)
	if top := p.state.currentLevel(); top != 0 && level <= top {
		p.emit(LevelMismatch, Span{start, starsEnd}, "heading level not deeper than enclosing subtree")
		return nil, false
	}

	var children []GreenElement
	children = append(children, p.consumeToken(KindHeadingRowStars, starsEnd))
	pos := starsEnd
	if wsEnd, ok := scanWS1(p.src, pos); ok {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
		pos = wsEnd
	}

	if kwEnd, isTodo, matched := scanHeadingKeyword(p, pos); matched {
		kind := KindHeadingRowKeywordDone
		if isTodo {
			kind = KindHeadingRowKeywordTodo
		}
		children = append(children, p.consumeToken(kind, kwEnd))
		pos = kwEnd
		if wsEnd, ok := scanWS1(p.src, pos); ok {
			children = append(children, p.consumeToken(KindWhitespace, wsEnd))
			pos = wsEnd
		}
	}

	if end, ok := scanHeadingPriority(p.src, pos); ok {
		children = append(children, p.consumeToken(KindHeadingRowPriority, end))
		pos = end
		if wsEnd, ok := scanWS1(p.src, pos); ok {
			children = append(children, p.consumeToken(KindWhitespace, wsEnd))
			pos = wsEnd
		}
	}

	if end, ok := scanHeadingCommentMarker(p.src, pos); ok {
		children = append(children, p.consumeToken(KindHeadingRowCommentMarker, end))
		pos = end
		if wsEnd, ok := scanWS1(p.src, pos); ok {
			children = append(children, p.consumeToken(KindWhitespace, wsEnd))
			pos = wsEnd
		}
	}

	le := lineEnd(p.src, pos)
	titleEnd, tagsStart, hasTags := splitHeadingTitleTags(p.src, pos, le)
	if titleEnd > pos {
		children = append(children, p.consumeToken(KindHeadingRowTitle, titleEnd))
		pos = titleEnd
	}
	if hasTags {
		if tagsStart > pos {
			children = append(children, p.consumeToken(KindWhitespace, tagsStart))
			pos = tagsStart
		}
		children = append(children, p.consumeToken(KindHeadingRowTags, le))
		pos = le
	}
	if nl, ok := scanNewline(p.src, pos); ok {
		children = append(children, p.consumeToken(KindNewline, nl))
	}

	p.state.pushLevel(level)

	if planning, ok := tryPlanning(p); ok {
		children = append(children, planning)
	}
	if propDrawer, ok := tryPropertyDrawer(p); ok {
		children = append(children, propDrawer)
	}
	if section := parseSection(p); section != nil {
		children = append(children, section)
	}
	for isSimpleHeadingRowAt(p.src, p.pos) {
		before := p.pos
		child, ok := tryHeadingSubtree(p)
		if !ok {
			break
		}
		children = append(children, child)
		if p.pos == before {
			break
		}
	}

	p.state.popLevel()
	return NewGreenNode(KindHeadingSubtree, children), true
}

// scanHeadingKeyword matches a bare word at pos against
// Config.TodoKeywords/DoneKeywords.
func scanHeadingKeyword(p *parser, pos int) (end int, isTodo bool, ok bool) {
	le := lineEnd(p.src, pos)
	wordEnd := pos
	for wordEnd < le && p.src[wordEnd] != ' ' && p.src[wordEnd] != '\t' {
		wordEnd++
	}
	word := p.src[pos:wordEnd]
	if _, ok := p.config.TodoKeywords[word]; ok {
		return wordEnd, true, true
	}
	if _, ok := p.config.DoneKeywords[word]; ok {
		return wordEnd, false, true
	}
	return pos, false, false
}

// scanHeadingPriority matches "[#X]" where X is a single alphanumeric
// character.
func scanHeadingPriority(src string, pos int) (end int, ok bool) {
	if !hasPrefixAt(src, pos, "[#") || pos+4 > len(src) {
		return pos, false
	}
	if !isAlphaNumeric(rune(src[pos+2])) || src[pos+3] != ']' {
		return pos, false
	}
	return pos + 4, true
}

// scanHeadingCommentMarker matches the literal, case-sensitive word
// "COMMENT" at a word boundary.
func scanHeadingCommentMarker(src string, pos int) (end int, ok bool) {
	if !hasPrefixAt(src, pos, "COMMENT") {
		return pos, false
	}
	end = pos + len("COMMENT")
	if end < len(src) && src[end] != ' ' && src[end] != '\t' && src[end] != '\n' {
		return pos, false
	}
	return end, true
}

// splitHeadingTitleTags separates a heading row's remaining text
// [pos,le) into its title and an optional trailing tags group
// (":tag1:tag2:"). The tags group must be its own whitespace-delimited
// word at the end of the line; otherwise everything is title.
func splitHeadingTitleTags(src string, pos, le int) (titleEnd, tagsStart int, hasTags bool) {
	end := le
	for end > pos && (src[end-1] == ' ' || src[end-1] == '\t') {
		end--
	}
	if end <= pos {
		return le, le, false
	}
	wordStart := end
	for wordStart > pos && src[wordStart-1] != ' ' && src[wordStart-1] != '\t' {
		wordStart--
	}
	word := src[wordStart:end]
	if wordStart > pos && isHeadingTagsWord(word) {
		titleEnd := wordStart
		for titleEnd > pos && (src[titleEnd-1] == ' ' || src[titleEnd-1] == '\t') {
			titleEnd--
		}
		if titleEnd > pos {
			return titleEnd, wordStart, true
		}
	}
	return end, le, false
}

func isHeadingTagsWord(s string) bool {
	if len(s) < 3 || s[0] != ':' || s[len(s)-1] != ':' {
		return false
	}
	inner := s[1 : len(s)-1]
	start := 0
	for i := 0; i <= len(inner); i++ {
		if i == len(inner) || inner[i] == ':' {
			if i == start {
				return false
			}
			start = i + 1
		} else if !isHeadingTagChar(inner[i]) {
			return false
		}
	}
	return true
}

func isHeadingTagChar(c byte) bool {
	return isAlphaNumeric(rune(c)) || c == '_' || c == '#' || c == '@' || c == '%'
}
