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

// tryCitation matches "[cite" CITESTYLE? ":" GLOBALPREFIX? REFERENCE
// (";" REFERENCE)* (";" GLOBALSUFFIX)? "]" (spec §4.3 item 9, extended
// per SPEC_FULL.md's supplemented citation structure). Global
// prefix/suffix text is parsed with the standard object set; each
// reference's own key prefix/suffix is parsed with the minimal set,
// per spec §4.3's list of minimal-set contexts.
func tryCitation(p *parser) (GreenElement, bool) {
	if !hasPrefixAt(p.src, p.pos, "[cite") {
		return nil, false
	}
	i := p.pos + 5
	styleEnd := i
	hasStyle := false
	if i < len(p.src) && p.src[i] == '/' {
		j := i + 1
		k := j
		for k < len(p.src) && isCiteStyleChar(rune(p.src[k])) {
			k++
		}
		if k > j {
			hasStyle = true
			styleEnd = k
			if styleEnd < len(p.src) && p.src[styleEnd] == '/' {
				j2 := styleEnd + 1
				k2 := j2
				for k2 < len(p.src) && isCiteStyleChar2(rune(p.src[k2])) {
					k2++
				}
				if k2 > j2 {
					styleEnd = k2
				}
			}
		}
	}
	if styleEnd >= len(p.src) || p.src[styleEnd] != ':' {
		return nil, false
	}
	colonEnd := styleEnd + 1

	pos := colonEnd
	hasGlobalPrefix := false
	var prefixEnd int
	if segEnd := scanCitationSegment(p.src, pos, true, true); segEnd > pos && segEnd < len(p.src) && p.src[segEnd] == ';' {
		hasGlobalPrefix = true
		prefixEnd = segEnd
		pos = segEnd + 1
	}

	type refSpan struct {
		prefixEnd, atPos, keyEnd, suffixEnd int
		hasPrefix, hasSuffix                bool
	}
	var refs []refSpan
	for {
		var r refSpan
		start := pos
		if c := scanCitationSegment(p.src, start, true, true); c > start {
			r.hasPrefix = true
			r.prefixEnd = c
			pos = c
		}
		if pos >= len(p.src) || p.src[pos] != '@' {
			return nil, false
		}
		r.atPos = pos
		keyEnd, ok := scanCitationKey(p.src, pos+1)
		if !ok {
			return nil, false
		}
		r.keyEnd = keyEnd
		pos = keyEnd
		if c := scanCitationSegment(p.src, pos, true, false); c > pos {
			r.hasSuffix = true
			r.suffixEnd = c
			pos = c
		}
		refs = append(refs, r)
		if pos < len(p.src) && p.src[pos] == ';' {
			// Peek ahead: is this ';' separating another reference, or
			// does it introduce the trailing global suffix?
			next := pos + 1
			if c := scanCitationSegment(p.src, next, true, true); c > next && c < len(p.src) && p.src[c] == '@' {
				pos = next
				continue
			}
			if next < len(p.src) && p.src[next] == '@' {
				pos = next
				continue
			}
		}
		break
	}

	hasGlobalSuffix := false
	var suffixSemiPos, globalSuffixEnd int
	if pos < len(p.src) && p.src[pos] == ';' {
		suffixSemiPos = pos
		globalSuffixEnd = scanCitationSegment(p.src, pos+1, false, false)
		hasGlobalSuffix = true
		pos = globalSuffixEnd
	}
	if pos >= len(p.src) || p.src[pos] != ']' {
		return nil, false
	}

	var children []GreenElement
	children = append(children, p.consumeToken(KindLeftSquareBracket, p.pos+1))
	children = append(children, p.consumeToken(KindText, p.pos+4)) // "cite"
	if hasStyle {
		children = append(children, p.consumeToken(KindCitationCitestyle, styleEnd))
	}
	children = append(children, p.consumeToken(KindColon, colonEnd))
	if hasGlobalPrefix {
		children = append(children, standardObjectsNode(p, KindCitationGlobalPrefix, prefixEnd))
		children = append(children, p.consumeToken(KindSemicolon, prefixEnd+1))
	}
	for idx, r := range refs {
		if idx > 0 {
			children = append(children, p.consumeToken(KindSemicolon, p.pos+1))
		}
		var refChildren []GreenElement
		if r.hasPrefix {
			refChildren = append(refChildren, minimalObjectsNode(p, KindCitationReferenceKeyPrefix, r.prefixEnd))
		}
		refChildren = append(refChildren, p.consumeToken(KindAt, r.atPos+1))
		refChildren = append(refChildren, p.consumeToken(KindCitationReferenceKey, r.keyEnd))
		if r.hasSuffix {
			refChildren = append(refChildren, minimalObjectsNode(p, KindCitationReferenceKeyPrefix, r.suffixEnd))
		}
		children = append(children, NewGreenNode(KindCitationReference, refChildren))
	}
	if hasGlobalSuffix {
		children = append(children, p.consumeToken(KindSemicolon, suffixSemiPos+1))
		children = append(children, standardObjectsNode(p, KindCitationGlobalSuffix, globalSuffixEnd))
	}
	children = append(children, p.consumeToken(KindRightSquareBracket, pos+1))
	return NewGreenNode(KindCitation, children), true
}

func standardObjectsNode(p *parser, kind Kind, boundEnd int) GreenElement {
	objs := parseObjectsUntil(p, false, func(pc *parser) bool { return pc.pos >= boundEnd })
	return NewGreenNode(kind, objs)
}

func minimalObjectsNode(p *parser, kind Kind, boundEnd int) GreenElement {
	objs := parseObjectsUntil(p, true, func(pc *parser) bool { return pc.pos >= boundEnd })
	return NewGreenNode(kind, objs)
}

func isCiteStyleChar(r rune) bool {
	return isAlphaNumeric(r) || r == '-' || r == '_'
}

func isCiteStyleChar2(r rune) bool {
	return isAlphaNumeric(r) || r == '-' || r == '_' || r == '/'
}

func isCitationKeyChar(r rune) bool {
	return isAlphaNumeric(r) || strings.ContainsRune(`-.:?!`+"`"+`'/*@+|(){}<>&_^$#%~`, r)
}

func scanCitationKey(src string, pos int) (end int, ok bool) {
	i := pos
	for i < len(src) {
		r, w := decodeRuneAt(src, i)
		if w == 0 || !isCitationKeyChar(r) {
			break
		}
		i += w
	}
	return i, i > pos
}

// scanCitationSegment scans a bracket-balanced run starting at pos,
// stopping (without consuming) at the first unbalanced ']', or, when
// stopAtSemicolon is set, the first unbalanced ';'. When avoidAtKey is
// set, it also stops just before an unbalanced '@' that begins a valid
// citation key, so the scan never swallows the reference that follows
// a prefix.
func scanCitationSegment(src string, pos int, stopAtSemicolon, avoidAtKey bool) int {
	depth := 0
	i := pos
	for i < len(src) {
		c := src[i]
		if depth == 0 {
			if c == ']' {
				return i
			}
			if stopAtSemicolon && c == ';' {
				return i
			}
			if avoidAtKey && c == '@' {
				if _, ok := scanCitationKey(src, i+1); ok {
					return i
				}
			}
		}
		if c == '[' {
			depth++
		} else if c == ']' && depth > 0 {
			depth--
		}
		i++
	}
	return i
}
