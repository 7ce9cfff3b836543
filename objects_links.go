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

// angleLinkProtocols is the closed set of protocols an angle link's
// PROTOCOL part may name (spec §4.3 item 6).
var angleLinkProtocols = map[string]bool{
	"treemacs": true, "eww": true, "rmail": true, "mhe": true,
	"irc": true, "info": true, "gnus": true, "docview": true,
	"bibtex": true, "bbdb": true, "w3m": true, "doi": true,
	"attachment": true, "id": true, "file+sys": true, "file+emacs": true,
	"shell": true, "news": true, "mailto": true, "https": true,
	"http": true, "ftp": true, "help": true, "file": true, "elisp": true,
}

// tryLink matches "[[PATH]]" or "[[PATH][DESCRIPTION]]" (spec §4.3
// item 5). PATH may not contain "]"; DESCRIPTION, when present, is
// parsed with the minimal object set, since spec §4.3 lists link
// descriptions among the minimal-set contexts (a deliberate departure
// from the original implementation's regular_link.rs, which left
// DESCRIPTION as raw, un-object-parsed text - spec.md's explicit
// minimal-set rule for descriptions takes precedence).
func tryLink(p *parser) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, "[[") {
		return nil, false
	}
	pathStart := p.pos + 2
	pathEnd := scanUpToAny(p.src, pathStart, "]")
	if pathEnd == pathStart {
		return nil, false
	}
	if pathEnd >= len(p.src) || p.src[pathEnd] != ']' {
		return nil, false
	}
	pos := pathEnd + 1

	hasDescription := false
	var descStart, descEnd int
	if pos < len(p.src) && p.src[pos] == '[' {
		descStart = pos + 1
		descEnd = scanUpToAny(p.src, descStart, "]")
		if descEnd >= len(p.src) || p.src[descEnd] != ']' {
			return nil, false
		}
		hasDescription = true
		pos = descEnd + 1
	}
	if pos >= len(p.src) || p.src[pos] != ']' {
		return nil, false
	}

	var children []GreenElement
	children = append(children, p.consumeToken(KindLeftSquareBracket, p.pos+2))
	var pathChildren []GreenElement
	pathChildren = append(pathChildren, p.consumeToken(KindText, pathEnd))
	pathChildren = append(pathChildren, p.consumeToken(KindRightSquareBracket, pathEnd+1))
	children = append(children, NewGreenNode(KindLinkPath, pathChildren))
	if hasDescription {
		var descChildren []GreenElement
		descChildren = append(descChildren, p.consumeToken(KindLeftSquareBracket, descStart))
		descChildren = append(descChildren, parseObjectsUntil(p, true, func(pc *parser) bool { return pc.pos >= descEnd })...)
		descChildren = append(descChildren, p.consumeToken(KindRightSquareBracket, descEnd+1))
		children = append(children, NewGreenNode(KindLinkDescription, descChildren))
	}
	children = append(children, p.consumeToken(KindRightSquareBracket, pos+1))
	return NewGreenNode(KindLink, children), true
}

// tryAngleLink matches "<PROTOCOL:PATH>" (spec §4.3 item 6), where
// PROTOCOL is drawn from a closed list and PATH excludes ">" and ",".
func tryAngleLink(p *parser) (GreenElement, bool) {
	if p.pos >= len(p.src) || p.src[p.pos] != '<' {
		return nil, false
	}
	protoStart := p.pos + 1
	colonAt := -1
	for i := protoStart; i < len(p.src); i++ {
		c := p.src[i]
		if c == ':' {
			colonAt = i
			break
		}
		if c == '>' || c == '\n' {
			break
		}
	}
	if colonAt < 0 {
		return nil, false
	}
	proto := p.src[protoStart:colonAt]
	if !angleLinkProtocols[proto] {
		return nil, false
	}
	pathStart := colonAt + 1
	pathEnd := pathStart
	for pathEnd < len(p.src) {
		c := p.src[pathEnd]
		if c == '>' || c == ',' || c == '\n' {
			break
		}
		pathEnd++
	}
	if pathEnd >= len(p.src) || p.src[pathEnd] != '>' {
		return nil, false
	}

	var children []GreenElement
	children = append(children, p.consumeToken(KindLeftAngleBracket, protoStart))
	children = append(children, p.consumeToken(KindText, colonAt))
	children = append(children, p.consumeToken(KindColon, pathStart))
	children = append(children, p.consumeToken(KindText, pathEnd))
	children = append(children, p.consumeToken(KindRightAngleBracket, pathEnd+1))
	return NewGreenNode(KindAngleLink, children), true
}

// tryRadioLink matches a run of plain text identical to one of the
// document's previously collected radio targets (spec §4.3 item 12,
// §4.4.12), bounded by a non-alphanumeric (or buffer-edge) PRE and
// POST character. The matched span is reparsed with the minimal object
// set and becomes the RadioLink node's children directly, with no
// extra delimiter tokens - there's nothing to delimit, since the match
// is plain body text, not bracketed syntax.
func tryRadioLink(p *parser) (GreenElement, bool) {
	prev, hasPrev := p.state.prev()
	if hasPrev && isAlphaNumeric(prev) {
		return nil, false
	}
	match := p.radio.matchAt(p.src, p.pos)
	if match == "" {
		return nil, false
	}
	matchEnd := p.pos + len(match)
	post, postWidth := decodeRuneAt(p.src, matchEnd)
	if postWidth != 0 && isAlphaNumeric(post) {
		return nil, false
	}
	objs := parseObjectsUntil(p, true, func(pc *parser) bool { return pc.pos >= matchEnd })
	return NewGreenNode(KindRadioLink, objs), true
}

// scanUpToAny returns the offset of the first byte at or after pos
// that appears in stop, or len(src) if none is found.
func scanUpToAny(src string, pos int, stop string) int {
	i := pos
	for i < len(src) {
		found := false
		for k := 0; k < len(stop); k++ {
			if src[i] == stop[k] {
				found = true
				break
			}
		}
		if found {
			break
		}
		i++
	}
	return i
}
