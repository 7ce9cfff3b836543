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

import (
	"fmt"
	"strconv"
	"strings"
)

// Tree is the result of a parse: a green tree rooted at Root, plus any
// diagnostics collected along the way (spec §7's {tree, diagnostics}
// tuple).
type Tree struct {
	Root        *GreenNode
	Diagnostics []Diagnostic
}

// Red returns the addressable red-tree view of t's root.
func (t *Tree) Red() *RedNode {
	if t == nil || t.Root == nil {
		return nil
	}
	return NewRed(t.Root)
}

// Text reconstructs the original source from the tree's tokens.
// It always equals the string that was parsed (spec §8 property 1).
func (t *Tree) Text() string {
	if t == nil || t.Root == nil {
		return ""
	}
	return elementText(t.Root)
}

// Dump renders the tree in the one-line-per-node debug format spec §6
// specifies as a cross-language conformance oracle:
//
//	<Kind>@<start>..<end>
//	  <Kind>@<start>..<end> "<literal text>"
//	  …
func Dump(t *Tree) string {
	var sb strings.Builder
	if t == nil || t.Root == nil {
		return ""
	}
	dumpNode(&sb, NewRed(t.Root), 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, r *RedNode, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sp := r.Span()
	fmt.Fprintf(sb, "%s@%d..%d", r.Kind(), sp.Start, sp.End)
	if tok := r.AsGreenToken(); tok != nil {
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(tok.Text()))
	}
	sb.WriteString("\n")
	for _, c := range r.Children() {
		dumpNode(sb, c, depth+1)
	}
}
