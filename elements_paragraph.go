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

// tryParagraph is the unconditional fallback element (spec §4.4.3):
// one or more non-blank lines, stopping before a blank line, end of
// input, or any line that looks like the start of a higher-priority
// element. Unlike every other element in this file, a paragraph never
// consumes its own trailing blank line(s) - termination is a pure
// lookahead, so the blank line (or run of them) is left for whichever
// container is collecting this paragraph's siblings to deal with.
//
// Content is re-parsed as the standard inline object set (spec §4.3);
// line breaks within the paragraph are ordinary newlines handled by
// the object grammar itself (a literal "\\" plus newline becomes a
// LineBreak object; anything else is just text that happens to span a
// line boundary).
func tryParagraph(p *parser) (GreenElement, bool) {
	if p.eof() || isBlankLineAt(p.src, p.pos) {
		return nil, false
	}
	end := computeParagraphEnd(p.src, p.pos)
	if end <= p.pos {
		return nil, false
	}
	children := parseObjectsUntil(p, false, func(pc *parser) bool { return pc.pos >= end })
	return NewGreenNode(KindParagraph, children), true
}

// computeParagraphEnd returns the offset where a paragraph starting at
// pos ends: the first line is always included regardless of its
// shape (tryParagraph only runs once every higher-priority element has
// already refused the current line), but each subsequent line is
// included only if it's neither blank nor the start of some other
// element.
func computeParagraphEnd(src string, pos int) int {
	i := pos
	first := true
	for i < len(src) {
		lineStart := i
		if !first {
			if isBlankLineAt(src, lineStart) || paragraphLineStops(src, lineStart) {
				break
			}
		}
		i = scanLine(src, lineStart)
		first = false
		if i == lineStart {
			break
		}
	}
	return i
}

// paragraphLineStops reports whether the line at pos looks like the
// start of some other element, and so should end the paragraph instead
// of being folded into it as a continuation line.
func paragraphLineStops(src string, pos int) bool {
	switch {
	case isSimpleHeadingRowAt(src, pos),
		isTableRowAt(src, pos),
		isListItemAt(src, pos),
		isDrawerBeginAt(src, pos),
		isBlockBeginAt(src, pos),
		isLatexEnvBeginAt(src, pos),
		isHorizontalRuleAt(src, pos),
		isCommentLineAt(src, pos),
		isKeywordPrefixAt(src, pos),
		isFixedWidthAt(src, pos),
		isFootnoteDefAt(src, pos):
		return true
	default:
		return false
	}
}
