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

// GreenElement is either a *GreenNode or a *GreenToken: one entry in a
// green node's ordered child sequence. Green elements carry no
// absolute offset - only a width - so that they can be shared freely
// between trees (spec §3).
type GreenElement interface {
	Kind() Kind
	Width() int

	greenElement()
}

// GreenNode is an immutable, shareable interior node of the CST. It is
// never mutated after construction; parsers build green trees
// bottom-up and never reach back in to edit a child.
type GreenNode struct {
	kind     Kind
	children []GreenElement
	width    int
}

// NewGreenNode builds a green node of the given kind from an ordered
// list of children. The node's width is the sum of its children's
// widths, maintaining the byte-preservation invariant by construction:
// a node never claims width its children don't account for.
func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	n := &GreenNode{kind: kind, children: children}
	for _, c := range children {
		n.width += c.Width()
	}
	return n
}

func (n *GreenNode) Kind() Kind {
	if n == nil {
		return 0
	}
	return n.kind
}

func (n *GreenNode) Width() int {
	if n == nil {
		return 0
	}
	return n.width
}

// Children returns the node's ordered children. The returned slice
// must not be mutated.
func (n *GreenNode) Children() []GreenElement {
	if n == nil {
		return nil
	}
	return n.children
}

// ChildCount returns the number of direct children.
func (n *GreenNode) ChildCount() int {
	return len(n.Children())
}

func (n *GreenNode) greenElement() {}

// GreenToken is an immutable, shareable leaf of the CST: a kind plus
// the literal source text it covers. Concatenating every token's text
// in a left-to-right traversal of the tree reproduces the original
// input exactly (spec §3 invariant 1).
type GreenToken struct {
	kind Kind
	text string
}

// NewGreenToken builds a token that owns the given literal text.
func NewGreenToken(kind Kind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() Kind {
	if t == nil {
		return 0
	}
	return t.kind
}

func (t *GreenToken) Width() int {
	if t == nil {
		return 0
	}
	return len(t.text)
}

// Text returns the token's literal source text.
func (t *GreenToken) Text() string {
	if t == nil {
		return ""
	}
	return t.text
}

func (t *GreenToken) greenElement() {}

// elementText concatenates the literal text of every token reachable
// from e, depth-first left-to-right. For a well-formed tree this
// equals the byte range e covers in the original source.
func elementText(e GreenElement) string {
	switch v := e.(type) {
	case *GreenToken:
		return v.Text()
	case *GreenNode:
		var buf []byte
		for _, c := range v.children {
			buf = append(buf, elementText(c)...)
		}
		return string(buf)
	default:
		return ""
	}
}
