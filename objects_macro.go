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

// tryExportSnippet matches "@@BACKEND:VALUE@@" (spec §4.3 item 14),
// where BACKEND is one or more alphanumeric/hyphen characters and VALUE
// is everything up to the closing "@@", optional.
func tryExportSnippet(p *parser) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, "@@") {
		return nil, false
	}
	i := p.pos + 2
	backendStart := i
	for i < len(p.src) {
		c := p.src[i]
		if isAlphaNumeric(rune(c)) || c == '-' {
			i++
			continue
		}
		break
	}
	if i == backendStart {
		return nil, false
	}
	backendEnd := i
	if i >= len(p.src) || p.src[i] != ':' {
		return nil, false
	}
	colonEnd := i + 1
	valueStart := colonEnd
	closeAt := strings.Index(p.src[valueStart:], "@@")
	if closeAt < 0 {
		return nil, false
	}
	valueEnd := valueStart + closeAt
	endAt2 := valueEnd + 2

	var children []GreenElement
	children = append(children, p.consumeToken(KindAt2, p.pos+2))
	children = append(children, p.consumeToken(KindExportSnippetBackend, backendEnd))
	children = append(children, p.consumeToken(KindColon, colonEnd))
	if valueEnd > valueStart {
		children = append(children, p.consumeToken(KindExportSnippetValue, valueEnd))
	}
	children = append(children, p.consumeToken(KindAt2, endAt2))
	return NewGreenNode(KindExportSnippet, children), true
}

// tryMacro matches "{{{NAME}}}" or "{{{NAME(ARGS)}}}" (spec §4.3 item
// 15). NAME starts with an alphabetic character and continues with
// alphanumerics, '_', or '-'. ARGS, if the parens are present at all,
// is everything up to the matching ")}}}" and may be empty (an empty
// ARGS run is simply omitted from the children, not emitted as a
// zero-width token).
func tryMacro(p *parser) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, "{{{") {
		return nil, false
	}
	nameStart := p.pos + 3
	i := nameStart
	first, w := decodeRuneAt(p.src, i)
	if w == 0 || !isAlpha(first) {
		return nil, false
	}
	i += w
	for {
		r, rw := decodeRuneAt(p.src, i)
		if rw == 0 {
			break
		}
		if isAlphaNumeric(r) || r == '_' || r == '-' {
			i += rw
			continue
		}
		break
	}
	nameEnd := i

	hasArgs := false
	var leftRoundEnd, argsEnd, rightRoundEnd int
	if i < len(p.src) && p.src[i] == '(' {
		leftRoundEnd = i + 1
		closeAt := strings.Index(p.src[leftRoundEnd:], ")}}}")
		if closeAt < 0 {
			return nil, false
		}
		argsEnd = leftRoundEnd + closeAt
		rightRoundEnd = argsEnd + 1
		hasArgs = true
		i = rightRoundEnd
	}
	if !hasPrefixAt(p.src, i, "}}}") {
		return nil, false
	}
	endAt := i + 3

	var children []GreenElement
	children = append(children, p.consumeToken(KindLeftCurlyBracket3, nameStart))
	children = append(children, p.consumeToken(KindMacroName, nameEnd))
	if hasArgs {
		children = append(children, p.consumeToken(KindLeftRoundBracket, leftRoundEnd))
		if argsEnd > leftRoundEnd {
			children = append(children, p.consumeToken(KindMacroArgs, argsEnd))
		}
		children = append(children, p.consumeToken(KindRightRoundBracket, rightRoundEnd))
	}
	children = append(children, p.consumeToken(KindRightCurlyBracket3, endAt))
	return NewGreenNode(KindMacro, children), true
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
