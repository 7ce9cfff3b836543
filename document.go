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

// parseDocument builds the whole tree for one parse: a Root wrapping a
// single Document, per spec §4.5. A Document is the optional zeroth
// Section (everything before the first heading row - comments,
// property drawers, keywords, paragraphs, blank lines, whatever
// ordinary element content precedes the first heading, all handled
// uniformly by parseSection/parseElementCore's dispatch) followed by
// zero or more top-level HeadingSubtrees.
func parseDocument(pc *parser) *GreenNode {
	var children []GreenElement
	if section := parseSection(pc); section != nil {
		children = append(children, section)
	}
	for !pc.eof() {
		before := pc.pos
		heading, ok := tryHeadingSubtree(pc)
		if !ok {
			break
		}
		children = append(children, heading)
		if pc.pos == before {
			break
		}
	}
	doc := NewGreenNode(KindDocument, children)
	return NewGreenNode(KindRoot, []GreenElement{doc})
}
