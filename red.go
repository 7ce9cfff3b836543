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

// RedNode is an addressable view over a GreenElement: it adds the
// absolute byte offset and parent pointer that the green tree
// deliberately omits (spec §3). Red nodes are created lazily by
// walking down from a root and are cheap to discard; nothing holds a
// RedNode alive except whoever is currently looking at it.
type RedNode struct {
	green  GreenElement
	offset int
	parent *RedNode
	index  int
}

// NewRed returns the red root for a green tree.
func NewRed(root GreenElement) *RedNode {
	if root == nil {
		return nil
	}
	return &RedNode{green: root, offset: 0, index: -1}
}

// Kind returns the underlying green element's kind.
func (r *RedNode) Kind() Kind {
	if r == nil {
		return 0
	}
	return r.green.Kind()
}

// Span returns the node's absolute byte range in the original source.
func (r *RedNode) Span() Span {
	if r == nil {
		return NullSpan()
	}
	return Span{Start: r.offset, End: r.offset + r.green.Width()}
}

// Parent returns the node's parent, or nil for the root.
func (r *RedNode) Parent() *RedNode {
	if r == nil {
		return nil
	}
	return r.parent
}

// Index returns the node's position among its parent's children, or -1
// for the root.
func (r *RedNode) Index() int {
	if r == nil {
		return -1
	}
	return r.index
}

// Green returns the underlying green element.
func (r *RedNode) Green() GreenElement {
	if r == nil {
		return nil
	}
	return r.green
}

// AsGreenNode returns the underlying *GreenNode, or nil if r wraps a
// token.
func (r *RedNode) AsGreenNode() *GreenNode {
	if r == nil {
		return nil
	}
	n, _ := r.green.(*GreenNode)
	return n
}

// AsGreenToken returns the underlying *GreenToken, or nil if r wraps a
// node.
func (r *RedNode) AsGreenToken() *GreenToken {
	if r == nil {
		return nil
	}
	t, _ := r.green.(*GreenToken)
	return t
}

// IsToken reports whether r wraps a leaf token.
func (r *RedNode) IsToken() bool {
	return r.AsGreenToken() != nil
}

// ChildCount returns the number of children, 0 for tokens.
func (r *RedNode) ChildCount() int {
	if n := r.AsGreenNode(); n != nil {
		return n.ChildCount()
	}
	return 0
}

// Child returns the red view of the i'th child, computing its offset
// from the cumulative width of its preceding siblings.
func (r *RedNode) Child(i int) *RedNode {
	n := r.AsGreenNode()
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	offset := r.offset
	for j := 0; j < i; j++ {
		offset += n.children[j].Width()
	}
	return &RedNode{green: n.children[i], offset: offset, parent: r, index: i}
}

// Children returns the red views of every direct child, in order.
func (r *RedNode) Children() []*RedNode {
	n := r.AsGreenNode()
	if n == nil {
		return nil
	}
	out := make([]*RedNode, len(n.children))
	offset := r.offset
	for i, c := range n.children {
		out[i] = &RedNode{green: c, offset: offset, parent: r, index: i}
		offset += c.Width()
	}
	return out
}

// Text returns the node's literal source text, reconstructed by
// concatenating every descendant token (or, for a token itself, its
// own text).
func (r *RedNode) Text() string {
	if r == nil {
		return ""
	}
	return elementText(r.green)
}

// FindFirst returns the first descendant (including r itself) with the
// given kind, in depth-first left-to-right order, or nil.
func (r *RedNode) FindFirst(kind Kind) *RedNode {
	if r == nil {
		return nil
	}
	if r.Kind() == kind {
		return r
	}
	for _, c := range r.Children() {
		if found := c.FindFirst(kind); found != nil {
			return found
		}
	}
	return nil
}

// FindAll appends every descendant (including r itself) with the given
// kind, in depth-first left-to-right order, to out and returns it.
func (r *RedNode) FindAll(kind Kind, out []*RedNode) []*RedNode {
	if r == nil {
		return out
	}
	if r.Kind() == kind {
		out = append(out, r)
	}
	for _, c := range r.Children() {
		out = c.FindAll(kind, out)
	}
	return out
}
