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

// tryRadioTargetOrTarget tries a "<<<TARGET>>>" radio target (spec
// §4.3 item 13) before falling back to a plain "<<TARGET>>" target
// (spec §4.3 item 11), since the three-angle-bracket form is a prefix
// of the two-angle-bracket form's open delimiter.
func tryRadioTargetOrTarget(p *parser) (GreenElement, bool) {
	if el, ok := tryRadioTarget(p); ok {
		return el, ok
	}
	return tryTarget(p)
}

// tryRadioTarget matches "<<<TARGET>>>" where TARGET excludes "<", ">"
// and newlines and can't start or end with whitespace. TARGET is
// reparsed with the minimal object set (spec §4.3 item 13; grounded on
// original_source's radio_target.rs test fixtures, which show an
// Entity and a LatexFragment recognized inside a radio target).
func tryRadioTarget(p *parser) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, "<<<") {
		return nil, false
	}
	contentStart := p.pos + 3
	contentEnd, ok := scanTargetBody(p.src, contentStart)
	if !ok {
		return nil, false
	}
	if !hasPrefixAt(p.src, contentEnd, ">>>") {
		return nil, false
	}
	endAt := contentEnd + 3

	var children []GreenElement
	children = append(children, p.consumeToken(KindLeftAngleBracket3, contentStart))
	children = append(children, parseObjectsUntil(p, true, func(pc *parser) bool { return pc.pos >= contentEnd })...)
	children = append(children, p.consumeToken(KindRightAngleBracket3, endAt))
	return NewGreenNode(KindRadioTarget, children), true
}

// tryTarget matches "<<TARGET>>" where TARGET follows the same
// exclusion and no-edge-whitespace rules as a radio target, but stays
// flat Text rather than being reparsed as objects (spec §4.3 item 11;
// grounded on original_source's target.rs, which is simpler than its
// radio_target.rs sibling in exactly this one way).
func tryTarget(p *parser) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, "<<") {
		return nil, false
	}
	contentStart := p.pos + 2
	contentEnd, ok := scanTargetBody(p.src, contentStart)
	if !ok {
		return nil, false
	}
	if !hasPrefixAt(p.src, contentEnd, ">>") {
		return nil, false
	}
	endAt := contentEnd + 2

	var children []GreenElement
	children = append(children, p.consumeToken(KindLeftAngleBracket2, contentStart))
	children = append(children, p.consumeToken(KindText, contentEnd))
	children = append(children, p.consumeToken(KindRightAngleBracket2, endAt))
	return NewGreenNode(KindTarget, children), true
}

// scanTargetBody scans a run of characters excluding "<", ">" and
// newlines, rejecting an empty run or one that starts or ends with
// whitespace.
func scanTargetBody(src string, pos int) (end int, ok bool) {
	i := pos
	for i < len(src) {
		c := src[i]
		if c == '<' || c == '>' || c == '\n' {
			break
		}
		i++
	}
	if i == pos {
		return pos, false
	}
	if isTargetEdgeWhitespace(src[pos]) || isTargetEdgeWhitespace(src[i-1]) {
		return pos, false
	}
	return i, true
}

func isTargetEdgeWhitespace(c byte) bool {
	return c == ' ' || c == '\t'
}
