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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParseRoundTrip is the cross-cutting conformance check spec §8
// calls out as invariant 1: for any input, concatenating every token's
// text in depth-first order reproduces the source exactly, regardless
// of how malformed the input is or how many diagnostics it produces.
func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"\n",
		"just a paragraph\n",
		"paragraph with no trailing newline",
		"* heading\n",
		"* TODO [#A] COMMENT Title :tag1:tag2:\nbody\n",
		"** level 2\n*** level 3\n** back to 2\n",
		"* a\n*** skip a level\n",
		"- item one\n- item two\n  continuation\n- item three\n",
		"- item one\n\n\n- item two\n",
		"1. first\n2. second\n",
		"term :: definition\n",
		"#+BEGIN_SRC R\nf <- function(x) x\n#+END_SRC\n",
		"#+begin_src python\nprint(1)\n#+end_src\n",
		"#+BEGIN_CENTER\nsome *bold* text\n#+END_CENTER\n",
		"#+BEGIN_QUOTE\n* not a heading here\n#+END_QUOTE\n",
		"#+BEGIN_WEIRD\nstuff\n#+END_WEIRD\n",
		"#+BEGIN_SRC python\nunterminated\n",
		":DRAWERNAME:\nsome content\n:END:\n",
		":PROPERTIES:\n:CUSTOM_ID: foo\n:header-args:R: :session *R*\n:END:\n",
		"| a | b |\n|---+---|\n| 1 | 2 |\n",
		"-----\n",
		"# just a comment\n# another line\n",
		": fixed width content\n: more\n",
		"#+TITLE: My Document\n",
		"#+CAPTION[short]: long caption with *bold*\n",
		"\\begin{equation}\nx = y\n\\end{equation}\n",
		"[fn:1] a footnote definition\n",
		"[fn:1] multi\nline footnote\n\nnext paragraph\n",
		"* heading\nDEADLINE: <2024-01-01 Mon>\ncontent\n",
		"* heading\nSCHEDULED: <2024-01-01 Mon> DEADLINE: <2024-01-02 Tue>\n",
		"Some *bold text* and /italic/ and [[https://example.com][a link]].\n",
		"Citation: [cite/style:pre;@key1 suf;@key2;global].\n",
		"A footnote[fn:1] reference and [fn::an inline one].\n",
		"radio target test: <<<TARGET>>> and a TARGET mention.\n",
		"line one\\\\\nline two\n",
		"stats [50%] and [1/3] cookies.\n",
		"sub_script and super^script and CHAR_{braced}.\n",
		"malformed #+BEGIN_SRC\n",
		"#+BEGIN_SRC python\nfoo\n#+END_DRC\n",
		"*foo\n* Heading\nbody\n",
		"* h1\n** h2\n* h1 again\n** h2 again\n*** h3\n",
	}
	for _, src := range tests {
		t.Run("", func(t *testing.T) {
			tree := Parse(src)
			got := tree.Text()
			if got != src {
				t.Errorf("round trip mismatch:\n input: %q\n  text: %q", src, got)
			}
		})
	}
}

// TestParseEmptyYieldsEmptyDocument checks that an empty input still
// produces a well-formed Root/Document pair with no Section, rather
// than a nil tree.
func TestParseEmptyYieldsEmptyDocument(t *testing.T) {
	tree := Parse("")
	if tree.Root == nil {
		t.Fatal("Root is nil for empty input")
	}
	if tree.Root.Kind() != KindRoot {
		t.Fatalf("Root kind = %v, want KindRoot", tree.Root.Kind())
	}
	if tree.Root.ChildCount() != 1 {
		t.Fatalf("Root has %d children, want 1 (Document)", tree.Root.ChildCount())
	}
	doc := tree.Root.Children()[0]
	if doc.Kind() != KindDocument {
		t.Fatalf("Root's child kind = %v, want KindDocument", doc.Kind())
	}
}

// TestHeadingLevelMismatch checks that a heading no deeper than its
// enclosing subtree is rejected as a child and instead reappears as a
// sibling, with a LevelMismatch diagnostic recorded.
func TestHeadingLevelMismatch(t *testing.T) {
	src := "* one\n* two\n"
	tree := Parse(src)
	red := tree.Red()
	doc := red.Child(0)
	if doc.ChildCount() != 2 {
		t.Fatalf("Document has %d children, want 2 top-level headings", doc.ChildCount())
	}
	for i := 0; i < doc.ChildCount(); i++ {
		if k := doc.Child(i).Kind(); k != KindHeadingSubtree {
			t.Errorf("child %d kind = %v, want KindHeadingSubtree", i, k)
		}
	}
	gotKinds := make([]DiagnosticKind, len(tree.Diagnostics))
	for i, d := range tree.Diagnostics {
		gotKinds[i] = d.Kind
	}
	if diff := cmp.Diff([]DiagnosticKind{LevelMismatch}, gotKinds); diff != "" {
		t.Errorf("diagnostic kinds (-want +got):\n%s", diff)
	}
}

// TestDeeperHeadingNestsUnderParent confirms the positive case: a
// strictly deeper heading is accepted as a nested child rather than a
// sibling.
func TestDeeperHeadingNestsUnderParent(t *testing.T) {
	src := "* one\n** two\n"
	tree := Parse(src)
	red := tree.Red()
	doc := red.Child(0)
	if doc.ChildCount() != 1 {
		t.Fatalf("Document has %d children, want 1 top-level heading", doc.ChildCount())
	}
	outer := doc.Child(0)
	var found *RedNode
	for _, c := range outer.Children() {
		if found = c.FindFirst(KindHeadingSubtree); found != nil {
			break
		}
	}
	if found == nil || found == outer {
		t.Fatal("expected a nested HeadingSubtree distinct from the outer one")
	}
}

// TestListBlankLineTermination reproduces the original parser's
// test_list_03 behavior: a second consecutive blank line mid-list ends
// the list early rather than being absorbed as an inter-item gap.
func TestListBlankLineTermination(t *testing.T) {
	src := "- one\n\n\n- two\n"
	tree := Parse(src)
	red := tree.Red()
	doc := red.Child(0)
	section := doc.Child(0)
	if section.Kind() != KindSection {
		t.Fatalf("first child kind = %v, want KindSection", section.Kind())
	}
	lists := section.FindAll(KindList, nil)
	if len(lists) != 2 {
		t.Fatalf("got %d lists, want 2 (blank run should split them)", len(lists))
	}
}

// TestListSingleBlankLineStaysInsideList checks the companion case: a
// single blank line between items does not split the list.
func TestListSingleBlankLineStaysInsideList(t *testing.T) {
	src := "- one\n\n- two\n"
	tree := Parse(src)
	red := tree.Red()
	doc := red.Child(0)
	section := doc.Child(0)
	lists := section.FindAll(KindList, nil)
	if len(lists) != 1 {
		t.Fatalf("got %d lists, want 1", len(lists))
	}
}

// TestBlockTypeCasingPreserved checks the deliberate deviation from the
// grounding source: the BEGIN/END TYPE tokens keep their literal source
// casing even though matching between them is case-insensitive.
func TestBlockTypeCasingPreserved(t *testing.T) {
	src := "#+begin_SrC python\ncode\n#+END_src\n"
	tree := Parse(src)
	if tree.Text() != src {
		t.Fatalf("round trip mismatch: got %q, want %q", tree.Text(), src)
	}
	red := tree.Red()
	types := red.FindAll(KindBlockType, nil)
	if len(types) != 2 {
		t.Fatalf("got %d BlockType tokens, want 2", len(types))
	}
	if types[0].Text() != "SrC" {
		t.Errorf("begin TYPE text = %q, want %q", types[0].Text(), "SrC")
	}
	if types[1].Text() != "src" {
		t.Errorf("end TYPE text = %q, want %q", types[1].Text(), "src")
	}
}

// TestGreaterBlockRecursesIntoElements checks the other deliberate
// deviation: a CENTER block's content is parsed as a real nested
// element sequence, not flattened into one literal Text/Paragraph span.
func TestGreaterBlockRecursesIntoElements(t *testing.T) {
	src := "#+BEGIN_CENTER\n- a list item\n#+END_CENTER\n"
	tree := Parse(src)
	red := tree.Red()
	block := red.FindFirst(KindCenterBlock)
	if block == nil {
		t.Fatal("no CenterBlock found")
	}
	if block.FindFirst(KindList) == nil {
		t.Error("CenterBlock content was not recursively parsed into a List")
	}
}

// TestIncompleteBlockFallsBackToParagraph checks that a block missing
// its closing row is abandoned (with IncompleteStructure reported) and
// its tokens are reparsed as ordinary paragraph content rather than
// left unconsumed.
func TestIncompleteBlockFallsBackToParagraph(t *testing.T) {
	src := "#+BEGIN_SRC python\nunterminated\n"
	tree := Parse(src)
	gotKinds := make([]DiagnosticKind, len(tree.Diagnostics))
	for i, d := range tree.Diagnostics {
		gotKinds[i] = d.Kind
	}
	if diff := cmp.Diff([]DiagnosticKind{IncompleteStructure}, gotKinds); diff != "" {
		t.Errorf("diagnostic kinds (-want +got):\n%s", diff)
	}
	red := tree.Red()
	if red.FindFirst(KindSrcBlock) != nil {
		t.Error("an incomplete block should not produce a SrcBlock node")
	}
	if red.FindFirst(KindParagraph) == nil {
		t.Error("incomplete block content should fall back to Paragraph")
	}
}

// TestBlockTypeMismatch reproduces spec §7 scenario S2: a block closed
// by an #+END_ row naming a different TYPE than its #+BEGIN_ row must
// be reported as BlockTypeMismatch, not silently skipped as ordinary
// content until IncompleteStructure fires at EOF.
func TestBlockTypeMismatch(t *testing.T) {
	src := "#+BEGIN_SRC python\nfoo\n#+END_DRC\n"
	tree := Parse(src)
	if tree.Text() != src {
		t.Fatalf("round trip mismatch: got %q, want %q", tree.Text(), src)
	}
	gotKinds := make([]DiagnosticKind, len(tree.Diagnostics))
	for i, d := range tree.Diagnostics {
		gotKinds[i] = d.Kind
	}
	if diff := cmp.Diff([]DiagnosticKind{BlockTypeMismatch}, gotKinds); diff != "" {
		t.Errorf("diagnostic kinds (-want +got):\n%s", diff)
	}
	red := tree.Red()
	if red.FindFirst(KindSrcBlock) != nil {
		t.Error("a type-mismatched block should not produce a SrcBlock node")
	}
}

// TestPropertyDrawerNodeProperties checks key/value/append-plus parsing
// including the babel-style internal-colon property name.
func TestPropertyDrawerNodeProperties(t *testing.T) {
	src := ":PROPERTIES:\n:CUSTOM_ID: foo\n:header-args:R: :session *R*\n:tag+: extra\n:END:\n"
	tree := Parse(src)
	if tree.Text() != src {
		t.Fatalf("round trip mismatch: got %q, want %q", tree.Text(), src)
	}
	red := tree.Red()
	props := red.FindAll(KindNodeProperty, nil)
	if len(props) != 3 {
		t.Fatalf("got %d NodeProperty nodes, want 3", len(props))
	}
	keys := make([]string, len(props))
	for i, p := range props {
		if k := p.FindFirst(KindPropertyKey); k != nil {
			keys[i] = k.Text()
		}
	}
	want := []string{":CUSTOM_ID", ":header-args:R", ":tag"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("property keys (-want +got):\n%s", diff)
	}
}

// TestMarkupClosingMarkerStopsAtParagraphBoundary checks that an
// unclosed markup marker on one line does not reach across a
// blank-line or heading-row boundary to find its closing marker on a
// later, unrelated line - a bare "*" starting the next line is a
// heading row, not a Bold close.
func TestMarkupClosingMarkerStopsAtParagraphBoundary(t *testing.T) {
	src := "*foo\n* Heading\nbody\n"
	tree := Parse(src)
	if tree.Text() != src {
		t.Fatalf("round trip mismatch: got %q, want %q", tree.Text(), src)
	}
	red := tree.Red()
	if red.FindFirst(KindBold) != nil {
		t.Error("unclosed '*foo' should not be parsed as Bold by reaching into the next line")
	}
	if red.FindFirst(KindHeadingSubtree) == nil {
		t.Error("'* Heading' should still be recognized as a HeadingSubtree")
	}
}

// TestHeadingTagCharset checks the tag-group character set: alphanumeric,
// '_', '#', '@', and '%' are all valid tag characters, but '-' is not.
func TestHeadingTagCharset(t *testing.T) {
	tree := Parse("* h :tag#:\n")
	red := tree.Red()
	tags := red.FindFirst(KindHeadingRowTags)
	if tags == nil {
		t.Fatal("expected :tag#: to be recognized as a tags group")
	}
	if tags.Text() != ":tag#:" {
		t.Errorf("tags text = %q, want %q", tags.Text(), ":tag#:")
	}

	tree = Parse("* h :tag-x:\n")
	red = tree.Red()
	if red.FindFirst(KindHeadingRowTags) != nil {
		t.Error(":tag-x: should not be recognized as a tags group ('-' is not a tag char)")
	}
}

// TestFootnoteDefinitionStopsAtBlankRun checks that a footnote
// definition's recursively-parsed content stops before a double blank
// line, leaving the next paragraph as a sibling rather than folding it
// into the definition.
func TestFootnoteDefinitionStopsAtBlankRun(t *testing.T) {
	src := "[fn:1] definition text\n\n\nnext paragraph\n"
	tree := Parse(src)
	red := tree.Red()
	def := red.FindFirst(KindFootnoteDefinition)
	if def == nil {
		t.Fatal("no FootnoteDefinition found")
	}
	if def.FindFirst(KindParagraph) == nil {
		t.Fatal("expected a Paragraph inside the footnote definition")
	}
	doc := red.Child(0)
	section := doc.Child(0)
	paragraphs := section.FindAll(KindParagraph, nil)
	foundSiblingParagraph := false
	for _, p := range paragraphs {
		if p.Parent().Kind() != KindSection {
			continue
		}
		if p.Text() == "next paragraph\n" {
			foundSiblingParagraph = true
		}
	}
	if !foundSiblingParagraph {
		t.Error("expected \"next paragraph\" to be a sibling, not part of the footnote definition")
	}
}
