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

// radioTargetSet is the process-wide (really: per-parse) set of
// strings defined by <<<...>>> somewhere in the document, computed by
// a pre-pass before the main document parse (spec §4.4.12). It is
// populated once and is read-only for the remainder of the parse; a
// caller parsing multiple documents must use a fresh set per parse
// (spec §5), which Parse always does since it builds one locally.
type radioTargetSet struct {
	targets []string // longest first, for longest-match radio-link scanning
}

// collectRadioTargets scans src for every <<<TEXT>>> occurrence and
// records TEXT as a radio target. It does not attempt to parse
// anything else about the line; a full object/element parse happens
// afterwards and may reject a line the pre-pass matched loosely (the
// pre-pass is intentionally permissive, since its only job is to seed
// radio-link recognition, not to validate target syntax).
func collectRadioTargets(src string) *radioTargetSet {
	set := &radioTargetSet{}
	seen := make(map[string]bool)
	i := 0
	for {
		start := strings.Index(src[i:], "<<<")
		if start < 0 {
			break
		}
		start += i
		end := strings.Index(src[start+3:], ">>>")
		if end < 0 {
			break
		}
		end += start + 3
		text := src[start+3 : end]
		if text != "" && !strings.Contains(text, "\n") && !seen[text] {
			seen[text] = true
			set.targets = append(set.targets, text)
		}
		i = end + 3
	}
	// Longest-first so radio-link matching greedily prefers the longest
	// known target at a given position (spec §4.3.13).
	for a := 1; a < len(set.targets); a++ {
		for b := a; b > 0 && len(set.targets[b-1]) < len(set.targets[b]); b-- {
			set.targets[b-1], set.targets[b] = set.targets[b], set.targets[b-1]
		}
	}
	return set
}

// matchAt reports the longest radio target that matches src starting
// at pos, or "" if none do.
func (set *radioTargetSet) matchAt(src string, pos int) string {
	if set == nil {
		return ""
	}
	for _, target := range set.targets {
		if strings.HasPrefix(src[pos:], target) {
			return target
		}
	}
	return ""
}
