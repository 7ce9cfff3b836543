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

// UseSubSuperscripts controls how CHAR_x / CHAR^x are disambiguated
// from a literal underscore or caret in running text (spec §4.3.16).
type UseSubSuperscripts int

const (
	// SubSuperscriptsNil disables subscript/superscript recognition
	// entirely; "_" and "^" are always literal text.
	SubSuperscriptsNil UseSubSuperscripts = iota
	// SubSuperscriptsBrace recognizes only the braced forms, CHAR_{...}
	// and CHAR^{...}.
	SubSuperscriptsBrace
	// SubSuperscriptsDefault recognizes both the braced forms and the
	// bare org-mode default grammar (CHAR_word, CHAR^word).
	SubSuperscriptsDefault
)

// Config holds the explicit, enumerated parser options from spec §6.
// It has no file format and is never loaded from disk; a caller
// constructs one in code, typically starting from DefaultConfig.
type Config struct {
	// TodoKeywords is the set of strings recognized as the "requiring
	// action" TODO class. Matched case-sensitively against raw input
	// (spec §9 open question).
	TodoKeywords map[string]struct{}
	// DoneKeywords is the set of strings recognized as the
	// "no further action" DONE class. Matched case-sensitively.
	DoneKeywords map[string]struct{}

	// UseSubSuperscripts selects the subscript/superscript grammar.
	UseSubSuperscripts UseSubSuperscripts

	// ParsedKeywords is the set of affiliated keywords whose VALUE
	// (and, if dual, OPT) contains parsed inline objects rather than a
	// raw string.
	ParsedKeywords map[string]struct{}
	// DualKeywords is the set of affiliated keywords that accept an
	// optional [OPT] before the colon.
	DualKeywords map[string]struct{}
	// AffiliatedKeywords is the full set of keys recognized as
	// affiliated keywords at all.
	AffiliatedKeywords map[string]struct{}
}

func stringSet(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// DefaultConfig returns the configuration spec §4.4.10 and §6 describe
// as defaults: TODO/DONE, org-mode-default sub/superscripts, CAPTION as
// the sole parsed+dual keyword, RESULTS as a dual string keyword, and
// the fixed non-dual-string keyword set.
func DefaultConfig() Config {
	return Config{
		TodoKeywords:       stringSet("TODO"),
		DoneKeywords:       stringSet("DONE"),
		UseSubSuperscripts: SubSuperscriptsDefault,
		ParsedKeywords:     stringSet("CAPTION"),
		DualKeywords:       stringSet("CAPTION", "RESULTS"),
		AffiliatedKeywords: stringSet(
			"CAPTION", "DATA", "HEADER", "HEADERS", "LABEL", "NAME", "PLOT",
			"RESNAME", "RESULT", "RESULTS", "SOURCE", "SRCNAME", "TBLNAME",
		),
	}
}

// IsTodoKeyword reports whether s is configured as a requiring-action
// or no-further-action keyword.
func (c *Config) IsTodoKeyword(s string) bool {
	if _, ok := c.TodoKeywords[s]; ok {
		return true
	}
	_, ok := c.DoneKeywords[s]
	return ok
}

// IsDoneKeyword reports whether s is in the no-further-action class.
func (c *Config) IsDoneKeyword(s string) bool {
	_, ok := c.DoneKeywords[s]
	return ok
}

// DualKeywordsParsed returns the subset of DualKeywords whose VALUE/OPT
// are parsed as objects rather than raw strings.
func (c *Config) DualKeywordsParsed() map[string]struct{} {
	out := make(map[string]struct{})
	for k := range c.DualKeywords {
		if _, ok := c.ParsedKeywords[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// DualKeywordsString returns the subset of DualKeywords whose VALUE/OPT
// are raw strings.
func (c *Config) DualKeywordsString() map[string]struct{} {
	out := make(map[string]struct{})
	for k := range c.DualKeywords {
		if _, ok := c.ParsedKeywords[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// NonDualStringKeywords returns the affiliated keywords that are
// neither dual nor parsed: plain "#+KEY: VALUE" with a raw string
// VALUE.
func (c *Config) NonDualStringKeywords() map[string]struct{} {
	out := make(map[string]struct{})
	for k := range c.AffiliatedKeywords {
		_, dual := c.DualKeywords[k]
		_, parsed := c.ParsedKeywords[k]
		if !dual && !parsed {
			out[k] = struct{}{}
		}
	}
	return out
}
