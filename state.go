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

// parserState is the single-threaded cooperative context threaded
// through every combinator (spec §4.1). It is mutated in place by
// whichever parser is currently running; any combinator that mutates
// it and then fails must restore it via a stateCheckpoint taken before
// the mutating attempt (spec §5).
type parserState struct {
	// levelStack holds the nesting path of heading star counts for the
	// subtrees currently open.
	levelStack []uint8
	// itemIndent holds the indent column of each currently-open list,
	// outermost first.
	itemIndent []int
	// blockType is the upper-cased type name of the innermost block
	// whose content is being parsed, or "" outside any block. List-item
	// content reads it to stop at the enclosing block's #+END_ row.
	blockType string
	// prevChar is the last input character consumed by an object/text
	// parser, used for PRE-char lookbehind. hasPrevChar distinguishes
	// "no previous character" (start of buffer) from '\x00'.
	prevChar    rune
	hasPrevChar bool
}

func newParserState() parserState {
	return parserState{}
}

// stateCheckpoint is a cheap snapshot of parserState sufficient to
// restore it, provided the only mutations between checkpoint and
// restore are pushes (growing the stacks) and scalar field writes.
// This mirrors the "persistent stack" approach spec §9 recommends:
// since levelStack/itemIndent are only ever grown-then-truncated in a
// well-nested fashion, remembering their lengths is enough to roll
// back without copying the backing arrays.
type stateCheckpoint struct {
	levelLen    int
	indentLen   int
	blockType   string
	prevChar    rune
	hasPrevChar bool
}

// checkpoint captures the current state for a later restore.
func (s *parserState) checkpoint() stateCheckpoint {
	return stateCheckpoint{
		levelLen:    len(s.levelStack),
		indentLen:   len(s.itemIndent),
		blockType:   s.blockType,
		prevChar:    s.prevChar,
		hasPrevChar: s.hasPrevChar,
	}
}

// restore rolls the state back to a previously taken checkpoint,
// discarding anything pushed onto levelStack/itemIndent since then.
func (s *parserState) restore(c stateCheckpoint) {
	s.levelStack = s.levelStack[:c.levelLen]
	s.itemIndent = s.itemIndent[:c.indentLen]
	s.blockType = c.blockType
	s.prevChar = c.prevChar
	s.hasPrevChar = c.hasPrevChar
}

func (s *parserState) pushLevel(level uint8) {
	s.levelStack = append(s.levelStack, level)
}

func (s *parserState) popLevel() {
	s.levelStack = s.levelStack[:len(s.levelStack)-1]
}

// currentLevel returns the star count of the innermost open subtree,
// or 0 if none is open.
func (s *parserState) currentLevel() uint8 {
	if len(s.levelStack) == 0 {
		return 0
	}
	return s.levelStack[len(s.levelStack)-1]
}

func (s *parserState) pushIndent(col int) {
	s.itemIndent = append(s.itemIndent, col)
}

func (s *parserState) popIndent() {
	s.itemIndent = s.itemIndent[:len(s.itemIndent)-1]
}

// currentIndent returns the indent column of the innermost open list,
// or -1 if no list is open.
func (s *parserState) currentIndent() int {
	if len(s.itemIndent) == 0 {
		return -1
	}
	return s.itemIndent[len(s.itemIndent)-1]
}

// setPrevChar records c as the last consumed input character.
func (s *parserState) setPrevChar(c rune) {
	s.prevChar = c
	s.hasPrevChar = true
}

// prev returns the last consumed character and whether one exists
// (false at the start of the buffer).
func (s *parserState) prev() (rune, bool) {
	return s.prevChar, s.hasPrevChar
}
