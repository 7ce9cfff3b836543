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

// Parser is the public façade (spec §2, §6): a configuration plus a
// Parse method. A Parser holds no mutable state between calls and is
// safe to reuse or share across goroutines, since each Parse call
// builds its own scratch state (spec §5's "parser state fields are
// scoped to one parse").
type Parser struct {
	Config Config
}

// NewParser returns a Parser with the given configuration.
func NewParser(config Config) *Parser {
	return &Parser{Config: config}
}

// Parse turns input into a CST. It performs no I/O and never reads
// files, environment, or stdin (spec §6): input is the entire document
// already in memory.
func (p *Parser) Parse(input string) *Tree {
	pc := &parser{
		src:    input,
		config: p.Config,
		radio:  collectRadioTargets(input),
	}
	root := parseDocument(pc)
	return &Tree{Root: root, Diagnostics: pc.diags}
}

// Parse is a package-level convenience that parses input with
// DefaultConfig.
func Parse(input string) *Tree {
	return NewParser(DefaultConfig()).Parse(input)
}

// parser is the mutable, single-threaded cooperative context threaded
// through every combinator (spec §4.1, §5). It is never shared between
// goroutines and never outlives one Parse call.
type parser struct {
	src    string
	pos    int
	state  parserState
	config Config
	diags  []Diagnostic
	radio  *radioTargetSet
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) remaining() string {
	return p.src[p.pos:]
}

func (p *parser) peek() (rune, int) {
	return decodeRuneAt(p.src, p.pos)
}

// emit records a recoverable diagnostic (spec §7). Emitting a
// diagnostic never stops the parse.
func (p *parser) emit(kind DiagnosticKind, span Span, msg string) {
	p.diags = append(p.diags, Diagnostic{Kind: kind, Span: span, Message: msg})
}

// consumeToken advances the parser's cursor to end, returning a token
// covering [p.pos, end) and updating state.prevChar to the token's
// last rune - the "each object/text parser updates prev_char" rule
// (spec §4.1, §4.2). A zero-width token (end == p.pos) leaves
// prevChar untouched.
func (p *parser) consumeToken(kind Kind, end int) *GreenToken {
	text := p.src[p.pos:end]
	p.pos = end
	if text != "" {
		r, _ := decodeRuneBefore(p.src, end)
		p.state.setPrevChar(r)
	}
	return NewGreenToken(kind, text)
}

// checkpoint captures everything needed to roll back a failed
// alternative: the cursor position (a plain int, trivially cheap) plus
// the mutable parserState snapshot (spec §5's commit-on-success,
// restore-on-failure discipline).
type checkpoint struct {
	pos   int
	state stateCheckpoint
}

func (p *parser) checkpoint() checkpoint {
	return checkpoint{pos: p.pos, state: p.state.checkpoint()}
}

func (p *parser) restore(c checkpoint) {
	p.pos = c.pos
	p.state.restore(c.state)
}
