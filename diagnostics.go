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

import "fmt"

// DiagnosticKind classifies a recoverable parse failure (spec §7).
// None of these stop the parse: the parser always falls back to a
// lower-priority element (usually Paragraph) and keeps going.
type DiagnosticKind int

const (
	// LevelMismatch: a heading row with fewer or equal stars than the
	// enclosing subtree. The subtree branch fails at that row.
	LevelMismatch DiagnosticKind = iota + 1
	// BlockTypeMismatch: #+END_X did not match #+BEGIN_Y. The block
	// parser fails and its content is reparsed as a paragraph.
	BlockTypeMismatch
	// IndentUnderflow: a list item less-indented than the enclosing
	// list's stored indent. The item parser fails and the list closes.
	IndentUnderflow
	// IncompleteStructure: end of input reached inside an open
	// construct. A block or LaTeX environment is abandoned and its
	// tokens are reparsed as a paragraph; a drawer or property drawer
	// is not abandoned: its partially built node is kept and runs to
	// the end of input.
	IncompleteStructure
)

func (k DiagnosticKind) String() string {
	switch k {
	case LevelMismatch:
		return "LevelMismatch"
	case BlockTypeMismatch:
		return "BlockTypeMismatch"
	case IndentUnderflow:
		return "IndentUnderflow"
	case IncompleteStructure:
		return "IncompleteStructure"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic reports one recoverable parse anomaly found while
// building the tree. The tree itself is always well-formed per spec §3
// regardless of how many diagnostics are present.
type Diagnostic struct {
	Kind    DiagnosticKind
	Span    Span
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%v@%v: %s", d.Kind, d.Span, d.Message)
}
