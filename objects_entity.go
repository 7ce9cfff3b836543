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

// tryEntity recognizes \NAME, \NAME{}, and \_SPACES (spec §4.3 item 3).
// \NAME{} is tried before bare \NAME so that "\pi{}" parses as one
// Entity rather than an Entity followed by a literal "{}" - \NAME{}'s
// match is strictly longer.
func tryEntity(p *parser) (GreenElement, bool) {
	if elem, ok := tryEntityBraced(p); ok {
		return elem, true
	}
	if elem, ok := tryEntityBarePost(p); ok {
		return elem, true
	}
	return tryEntitySpaces(p)
}

func scanEntityName(src string, pos int) (end int, ok bool) {
	i := pos
	for i < len(src) {
		c := src[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			i++
			continue
		}
		break
	}
	return i, i > pos
}

func tryEntityBraced(p *parser) (GreenElement, bool) {
	if p.eof() || p.src[p.pos] != '\\' {
		return nil, false
	}
	nameEnd, ok := scanEntityName(p.src, p.pos+1)
	if !ok {
		return nil, false
	}
	name := p.src[p.pos+1 : nameEnd]
	if !entityKnown(name) {
		return nil, false
	}
	if !hasPrefixAt(p.src, nameEnd, "{}") {
		return nil, false
	}
	var children []GreenElement
	children = append(children, p.consumeToken(KindBackSlash, p.pos+1))
	children = append(children, p.consumeToken(KindEntityName, nameEnd))
	children = append(children, p.consumeToken(KindLeftCurlyBracket, p.pos+1))
	children = append(children, p.consumeToken(KindRightCurlyBracket, p.pos+1))
	return NewGreenNode(KindEntity, children), true
}

func tryEntityBarePost(p *parser) (GreenElement, bool) {
	if p.eof() || p.src[p.pos] != '\\' {
		return nil, false
	}
	nameEnd, ok := scanEntityName(p.src, p.pos+1)
	if !ok {
		return nil, false
	}
	name := p.src[p.pos+1 : nameEnd]
	if !entityKnown(name) {
		return nil, false
	}
	post, width := decodeRuneAt(p.src, nameEnd)
	if width > 0 && isAlphaNumeric(post) {
		return nil, false
	}
	var children []GreenElement
	children = append(children, p.consumeToken(KindBackSlash, p.pos+1))
	children = append(children, p.consumeToken(KindEntityName, nameEnd))
	return NewGreenNode(KindEntity, children), true
}

func tryEntitySpaces(p *parser) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, `\_`) {
		return nil, false
	}
	i := p.pos + 2
	count := 0
	for i < len(p.src) && p.src[i] == ' ' && count < 20 {
		i++
		count++
	}
	if count == 0 {
		return nil, false
	}
	var children []GreenElement
	children = append(children, p.consumeToken(KindBackSlash, p.pos+1))
	children = append(children, p.consumeToken(KindUnderscore, p.pos+1))
	children = append(children, p.consumeToken(KindWhitespace, i))
	return NewGreenNode(KindEntity, children), true
}
