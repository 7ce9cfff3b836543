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

// tryTable matches one or more table rows - each either a rule row
// ("|-...") or a standard row ("|" cell "|" cell ... NL) - followed by
// any trailing blank lines, per spec §4.4.10 (grounded on
// original_source's table.rs).
func tryTable(p *parser) (GreenElement, bool) {
	if !isTableRowAt(p.src, p.pos) {
		return nil, false
	}
	var children []GreenElement
	for isTableRowAt(p.src, p.pos) {
		row, ok := parseTableRow(p)
		if !ok {
			break
		}
		children = append(children, row)
	}
	children = append(children, consumeBlankLines(p)...)
	return NewGreenNode(KindTable, children), true
}

func parseTableRow(p *parser) (GreenElement, bool) {
	if isTableRuleRowAt(p.src, p.pos) {
		return parseTableRuleRow(p)
	}
	return parseTableStandardRow(p)
}

// isTableRuleRowAt reports whether the table row starting at pos is a
// rule row ("|-" at the start of the cell area, e.g. "|---+---|").
func isTableRuleRowAt(src string, pos int) bool {
	i, _ := scanWhitespace(src, pos)
	if i >= len(src) || src[i] != '|' {
		return false
	}
	return i+1 < len(src) && src[i+1] == '-'
}

// parseTableRuleRow matches indent, "|", then "-" plus the rest of the
// line collapsed into one Text token (kind.go has no Dash kind, so the
// rule decoration is kept as opaque text rather than split per-dash),
// then a newline or end of input.
func parseTableRuleRow(p *parser) (GreenElement, bool) {
	var children []GreenElement
	if wsEnd, ok := scanWhitespace(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	children = append(children, p.consumeToken(KindPipe, p.pos+1))
	le := lineEnd(p.src, p.pos)
	if le > p.pos {
		children = append(children, p.consumeToken(KindText, le))
	}
	if nl, ok := scanNewline(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindNewline, nl))
	}
	return NewGreenNode(KindTableRuleRow, children), true
}

// parseTableStandardRow matches indent, "|", then table cells
// (parseTableCell, grounded on table_cell.rs and already implemented
// for the Objects layer) until the line ends, then a newline.
func parseTableStandardRow(p *parser) (GreenElement, bool) {
	var children []GreenElement
	if wsEnd, ok := scanWhitespace(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	children = append(children, p.consumeToken(KindPipe, p.pos+1))
	for {
		le := lineEnd(p.src, p.pos)
		if p.pos >= le {
			break
		}
		cell, ok := parseTableCell(p)
		if !ok {
			break
		}
		children = append(children, cell)
	}
	if nl, ok := scanNewline(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindNewline, nl))
	}
	return NewGreenNode(KindTableStandardRow, children), true
}
