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

// tryDrawer matches ":NAME:" ... ":END:", per spec §4.4.6 (grounded on
// original_source's drawer.rs). ":PROPERTIES:" is special-cased to
// PropertyDrawer (see tryPropertyDrawer) since its content is a
// sequence of NodeProperty lines rather than recursively parsed
// elements. The drawer's content is flattened directly into Drawer's
// children (no DrawerContent wrapper node, since kind.go defines none -
// the same flattening already applied to heading rows and block rows).
func tryDrawer(p *parser) (GreenElement, bool) {
	if !isDrawerBeginAt(p.src, p.pos) {
		return nil, false
	}
	start := p.pos
	wsEnd, _ := scanWhitespace(p.src, start)
	nameStart := wsEnd + 1
	nameEnd := nameStart
	for nameEnd < len(p.src) && (isAlphaNumeric(rune(p.src[nameEnd])) || p.src[nameEnd] == '_' || p.src[nameEnd] == '-') {
		nameEnd++
	}
	name := p.src[nameStart:nameEnd]
	if toUpper(name) == "PROPERTIES" {
		if node, ok := tryPropertyDrawer(p); ok {
			return node, true
		}
	}
	colonEnd := nameEnd + 1
	rowWsEnd, _ := scanWhitespace(p.src, colonEnd)
	if rowWsEnd >= len(p.src) || p.src[rowWsEnd] != '\n' {
		return nil, false
	}

	var children []GreenElement
	if wsEnd > start {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	children = append(children, p.consumeToken(KindColon, nameStart))
	children = append(children, p.consumeToken(KindDrawerName, nameEnd))
	children = append(children, p.consumeToken(KindColon, colonEnd))
	if rowWsEnd > colonEnd {
		children = append(children, p.consumeToken(KindWhitespace, rowWsEnd))
	}
	children = append(children, p.consumeToken(KindNewline, rowWsEnd+1))

	children = append(children, parseElementsUntil(p, isDrawerEndAt)...)

	if !isDrawerEndAt(p) {
		p.emit(IncompleteStructure, Span{start, p.pos}, "drawer missing :END:")
		return NewGreenNode(KindDrawer, children), true
	}
	children = append(children, consumeDrawerEndRow(p)...)
	return NewGreenNode(KindDrawer, children), true
}

func isDrawerEndAt(p *parser) bool {
	i, _ := scanWhitespace(p.src, p.pos)
	end, ok := scanJustCaseInsensitive(p.src, i, ":end:")
	if !ok {
		return false
	}
	wsEnd, _ := scanWhitespace(p.src, end)
	return wsEnd >= len(p.src) || p.src[wsEnd] == '\n'
}

func consumeDrawerEndRow(p *parser) []GreenElement {
	var children []GreenElement
	if wsEnd, ok := scanWhitespace(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	end, _ := scanJustCaseInsensitive(p.src, p.pos, ":end:")
	children = append(children, p.consumeToken(KindDrawerEnd, end))
	if wsEnd, ok := scanWhitespace(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	if nl, ok := scanNewline(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindNewline, nl))
	}
	children = append(children, consumeBlankLines(p)...)
	return children
}

// tryPropertyDrawer matches ":PROPERTIES:" ... ":END:" with NodeProperty
// content lines, per drawer.rs's property_drawer_parser.
func tryPropertyDrawer(p *parser) (GreenElement, bool) {
	start := p.pos
	wsEnd, _ := scanWhitespace(p.src, start)
	end, ok := scanJustCaseInsensitive(p.src, wsEnd, ":properties:")
	if !ok {
		return nil, false
	}
	rowWsEnd, _ := scanWhitespace(p.src, end)
	if rowWsEnd >= len(p.src) || p.src[rowWsEnd] != '\n' {
		return nil, false
	}

	var children []GreenElement
	if wsEnd > start {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	children = append(children, p.consumeToken(KindText, end))
	if rowWsEnd > end {
		children = append(children, p.consumeToken(KindWhitespace, rowWsEnd))
	}
	children = append(children, p.consumeToken(KindNewline, rowWsEnd+1))

	for !isDrawerEndAt(p) {
		prop, ok := tryNodeProperty(p)
		if !ok {
			break
		}
		children = append(children, prop)
	}

	if !isDrawerEndAt(p) {
		p.emit(IncompleteStructure, Span{start, p.pos}, "property drawer missing :END:")
		return NewGreenNode(KindPropertyDrawer, children), true
	}
	children = append(children, consumeDrawerEndRow(p)...)
	return NewGreenNode(KindPropertyDrawer, children), true
}

// tryNodeProperty matches one ":KEY(+)?: VALUE" line, per item.rs's
// node_property_parser. The key capture includes its leading colon and
// runs up to (but not including) the final ":" - internal colons, as
// in the babel ":header-args:R:" special property, stay part of the
// key.
func tryNodeProperty(p *parser) (GreenElement, bool) {
	wsEnd, hasWS := scanWhitespace(p.src, p.pos)
	if wsEnd >= len(p.src) || p.src[wsEnd] != ':' {
		return nil, false
	}
	runEnd := wsEnd
	for runEnd < len(p.src) && p.src[runEnd] != ' ' && p.src[runEnd] != '\t' && p.src[runEnd] != '\n' {
		runEnd++
	}
	run := p.src[wsEnd:runEnd]
	hasPlus := len(run) >= 2 && run[len(run)-2] == '+' && run[len(run)-1] == ':'
	hasColon := !hasPlus && len(run) >= 1 && run[len(run)-1] == ':'
	if !hasPlus && !hasColon {
		return nil, false
	}
	nameEnd := runEnd - 1
	if hasPlus {
		nameEnd = runEnd - 2
	}
	if nameEnd <= wsEnd {
		return nil, false
	}

	var children []GreenElement
	if hasWS {
		children = append(children, p.consumeToken(KindWhitespace, wsEnd))
	}
	children = append(children, p.consumeToken(KindPropertyKey, nameEnd))
	if hasPlus {
		children = append(children, p.consumeToken(KindPlus, nameEnd+1))
	}
	children = append(children, p.consumeToken(KindColon, runEnd))
	valWsEnd, hasValWS := scanWhitespace(p.src, p.pos)
	if hasValWS {
		children = append(children, p.consumeToken(KindWhitespace, valWsEnd))
	}
	le := lineEnd(p.src, p.pos)
	valEnd := le
	for valEnd > p.pos && (p.src[valEnd-1] == ' ' || p.src[valEnd-1] == '\t') {
		valEnd--
	}
	if valEnd > p.pos {
		children = append(children, p.consumeToken(KindPropertyValue, valEnd))
	}
	if le > p.pos {
		children = append(children, p.consumeToken(KindWhitespace, le))
	}
	if nl, ok := scanNewline(p.src, p.pos); ok {
		children = append(children, p.consumeToken(KindNewline, nl))
	}
	children = append(children, consumeBlankLines(p)...)
	return NewGreenNode(KindNodeProperty, children), true
}
