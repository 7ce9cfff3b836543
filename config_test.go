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

import "testing"

func TestDefaultConfigKeywordPartition(t *testing.T) {
	c := DefaultConfig()

	if !c.IsTodoKeyword("TODO") {
		t.Error(`IsTodoKeyword("TODO") = false, want true`)
	}
	if !c.IsTodoKeyword("DONE") {
		t.Error(`IsTodoKeyword("DONE") = false, want true (DONE is still a TODO-class keyword)`)
	}
	if !c.IsDoneKeyword("DONE") {
		t.Error(`IsDoneKeyword("DONE") = false, want true`)
	}
	if c.IsDoneKeyword("TODO") {
		t.Error(`IsDoneKeyword("TODO") = true, want false`)
	}
	if c.IsTodoKeyword("todo") {
		t.Error(`IsTodoKeyword("todo") = true, want false (matching is case-sensitive)`)
	}

	parsed := c.DualKeywordsParsed()
	if _, ok := parsed["CAPTION"]; !ok {
		t.Error("CAPTION missing from DualKeywordsParsed")
	}
	if _, ok := parsed["RESULTS"]; ok {
		t.Error("RESULTS unexpectedly in DualKeywordsParsed")
	}

	strs := c.DualKeywordsString()
	if _, ok := strs["RESULTS"]; !ok {
		t.Error("RESULTS missing from DualKeywordsString")
	}
	if _, ok := strs["CAPTION"]; ok {
		t.Error("CAPTION unexpectedly in DualKeywordsString")
	}

	nonDual := c.NonDualStringKeywords()
	for _, k := range []string{"DATA", "HEADER", "HEADERS", "LABEL", "NAME", "PLOT", "RESNAME", "RESULT", "SOURCE", "SRCNAME", "TBLNAME"} {
		if _, ok := nonDual[k]; !ok {
			t.Errorf("%s missing from NonDualStringKeywords", k)
		}
	}
	if _, ok := nonDual["CAPTION"]; ok {
		t.Error("CAPTION unexpectedly in NonDualStringKeywords")
	}
	if _, ok := nonDual["RESULTS"]; ok {
		t.Error("RESULTS unexpectedly in NonDualStringKeywords")
	}
}

// TestAffiliatedVsGenericKeyword checks the disambiguation rule: a
// "#+KEY: VALUE" line becomes AffiliatedKeyword only when KEY is in the
// configured affiliated set, else a plain Keyword.
func TestAffiliatedVsGenericKeyword(t *testing.T) {
	tree := Parse("#+NAME: table-1\n#+TITLE: Something\n")
	red := tree.Red()
	if red.FindFirst(KindAffiliatedKeyword) == nil {
		t.Error("expected #+NAME to parse as AffiliatedKeyword")
	}
	if red.FindFirst(KindKeyword) == nil {
		t.Error("expected #+TITLE to parse as a generic Keyword")
	}
}
