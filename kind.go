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

// Kind is the closed enumeration of node and token kinds that make up
// the CST (spec §3). Unlike a typed AST, every classification a parser
// can produce - from whole elements down to a single punctuation byte -
// is one Kind, so that the green tree's invariant ("concatenating all
// token text equals the source") can be checked uniformly regardless of
// how deep a given span sits in the tree.
type Kind uint16

const (
	// Structure
	KindRoot Kind = 1 + iota
	KindDocument
	KindSection
	KindHeadingSubtree

	// Greater elements
	KindTable
	KindDrawer
	KindPropertyDrawer
	KindCenterBlock
	KindQuoteBlock
	KindSpecialBlock
	KindList
	KindListItem
	KindFootnoteDefinition

	// Lesser elements
	KindParagraph
	KindSrcBlock
	KindCommentBlock
	KindVerseBlock
	KindExampleBlock
	KindExportBlock
	KindHorizontalRule
	KindLatexEnvironment
	KindKeyword
	KindAffiliatedKeyword
	KindTableStandardRow
	KindTableRuleRow
	KindFixedWidth
	KindComment
	KindPlanning
	KindPlanningKeyword
	KindNodeProperty

	// Objects
	KindBold
	KindItalic
	KindUnderline
	KindStrikethrough
	KindCode
	KindVerbatim
	KindEntity
	KindLatexFragment
	KindLink
	KindLinkPath
	KindLinkDescription
	KindAngleLink
	KindRadioLink
	KindRadioTarget
	KindTarget
	KindTimestamp
	KindMacro
	KindFootnoteReference
	KindFootnoteReferenceDefinition
	KindCitation
	KindCitationReference
	KindCitationGlobalPrefix
	KindCitationGlobalSuffix
	KindCitationReferenceKeyPrefix
	KindSubscript
	KindSuperscript
	KindLineBreak
	KindStatisticsCookie
	KindExportSnippet
	KindTableCell
	KindText

	// Tokens: whitespace & structure
	KindWhitespace
	KindNewline
	KindBlankLine

	// Tokens: punctuation / markers
	KindAsterisk
	KindSlash
	KindUnderscore
	KindPlus
	KindEquals
	KindTilde
	KindCaret
	KindColon
	KindPipe
	KindDollar
	KindDollar2
	KindHash
	KindHashPlus
	KindLeftSquareBracket
	KindRightSquareBracket
	KindLeftAngleBracket
	KindLeftAngleBracket2
	KindLeftAngleBracket3
	KindRightAngleBracket
	KindRightAngleBracket2
	KindRightAngleBracket3
	KindLeftCurlyBracket
	KindLeftCurlyBracket3
	KindRightCurlyBracket
	KindRightCurlyBracket3
	KindLeftRoundBracket
	KindRightRoundBracket
	KindBackSlash
	KindBackSlash2
	KindAt
	KindAt2
	KindSemicolon

	// Tokens: named runs
	KindEntityName
	KindMacroName
	KindMacroArgs
	KindExportSnippetBackend
	KindExportSnippetValue
	KindCitationCitestyle
	KindCitationReferenceKey

	// Tokens: heading row sub-parts
	KindHeadingRowStars
	KindHeadingRowKeywordTodo
	KindHeadingRowKeywordDone
	KindHeadingRowPriority
	KindHeadingRowCommentMarker
	KindHeadingRowTitle
	KindHeadingRowTags

	// Tokens: block sub-parts
	KindBlockBegin
	KindBlockEnd
	KindBlockType
	KindBlockParameters

	// Tokens: drawer sub-parts
	KindDrawerName
	KindDrawerEnd

	// Tokens: property drawer sub-parts
	KindPropertyKey
	KindPropertyValue

	// Tokens: affiliated keyword sub-parts
	KindAffiliatedKeywordKey
	KindAffiliatedKeywordOpt
	KindAffiliatedKeywordValue

	// Tokens: list item sub-parts
	KindListBullet
	KindListCounterSet
	KindListCheckbox
	KindListTag

	// Tokens: footnote sub-parts
	KindFootnoteLabel

	kindMax
)

var kindNames = [...]string{
	KindRoot:                    "Root",
	KindDocument:                "Document",
	KindSection:                 "Section",
	KindHeadingSubtree:          "HeadingSubtree",
	KindTable:                   "Table",
	KindDrawer:                  "Drawer",
	KindPropertyDrawer:          "PropertyDrawer",
	KindCenterBlock:             "CenterBlock",
	KindQuoteBlock:              "QuoteBlock",
	KindSpecialBlock:            "SpecialBlock",
	KindList:                    "List",
	KindListItem:                "ListItem",
	KindFootnoteDefinition:      "FootnoteDefinition",
	KindParagraph:               "Paragraph",
	KindSrcBlock:                "SrcBlock",
	KindCommentBlock:            "CommentBlock",
	KindVerseBlock:              "VerseBlock",
	KindExampleBlock:            "ExampleBlock",
	KindExportBlock:             "ExportBlock",
	KindHorizontalRule:          "HorizontalRule",
	KindLatexEnvironment:        "LatexEnvironment",
	KindKeyword:                 "Keyword",
	KindAffiliatedKeyword:       "AffiliatedKeyword",
	KindTableStandardRow:        "TableStandardRow",
	KindTableRuleRow:            "TableRuleRow",
	KindFixedWidth:              "FixedWidth",
	KindComment:                 "Comment",
	KindPlanning:                "Planning",
	KindPlanningKeyword:         "PlanningKeyword",
	KindNodeProperty:            "NodeProperty",
	KindBold:                    "Bold",
	KindItalic:                  "Italic",
	KindUnderline:               "Underline",
	KindStrikethrough:           "Strikethrough",
	KindCode:                    "Code",
	KindVerbatim:                "Verbatim",
	KindEntity:                  "Entity",
	KindLatexFragment:           "LatexFragment",
	KindLink:                    "Link",
	KindLinkPath:                "LinkPath",
	KindLinkDescription:         "LinkDescription",
	KindAngleLink:               "AngleLink",
	KindRadioLink:               "RadioLink",
	KindRadioTarget:             "RadioTarget",
	KindTarget:                  "Target",
	KindTimestamp:               "Timestamp",
	KindMacro:                   "Macro",
	KindFootnoteReference:       "FootnoteReference",
	KindFootnoteReferenceDefinition: "FootnoteReferenceDefinition",
	KindCitation:                "Citation",
	KindCitationReference:       "CitationReference",
	KindCitationGlobalPrefix:    "CitationGlobalPrefix",
	KindCitationGlobalSuffix:    "CitationGlobalSuffix",
	KindCitationReferenceKeyPrefix: "CitationReferenceKeyPrefix",
	KindSubscript:               "Subscript",
	KindSuperscript:             "Superscript",
	KindLineBreak:               "LineBreak",
	KindStatisticsCookie:        "StatisticsCookie",
	KindExportSnippet:           "ExportSnippet",
	KindTableCell:               "TableCell",
	KindText:                    "Text",
	KindWhitespace:              "Whitespace",
	KindNewline:                 "Newline",
	KindBlankLine:               "BlankLine",
	KindAsterisk:                "Asterisk",
	KindSlash:                   "Slash",
	KindUnderscore:              "Underscore",
	KindPlus:                    "Plus",
	KindEquals:                  "Equals",
	KindTilde:                   "Tilde",
	KindCaret:                   "Caret",
	KindColon:                   "Colon",
	KindPipe:                    "Pipe",
	KindDollar:                  "Dollar",
	KindDollar2:                 "Dollar2",
	KindHash:                    "Hash",
	KindHashPlus:                "HashPlus",
	KindLeftSquareBracket:       "LeftSquareBracket",
	KindRightSquareBracket:      "RightSquareBracket",
	KindLeftAngleBracket:        "LeftAngleBracket",
	KindLeftAngleBracket2:       "LeftAngleBracket2",
	KindLeftAngleBracket3:       "LeftAngleBracket3",
	KindRightAngleBracket:       "RightAngleBracket",
	KindRightAngleBracket2:      "RightAngleBracket2",
	KindRightAngleBracket3:      "RightAngleBracket3",
	KindLeftCurlyBracket:        "LeftCurlyBracket",
	KindLeftCurlyBracket3:       "LeftCurlyBracket3",
	KindRightCurlyBracket:       "RightCurlyBracket",
	KindRightCurlyBracket3:      "RightCurlyBracket3",
	KindLeftRoundBracket:        "LeftRoundBracket",
	KindRightRoundBracket:       "RightRoundBracket",
	KindBackSlash:               "BackSlash",
	KindBackSlash2:              "BackSlash2",
	KindAt:                      "At",
	KindAt2:                     "At2",
	KindSemicolon:               "Semicolon",
	KindEntityName:              "EntityName",
	KindMacroName:               "MacroName",
	KindMacroArgs:               "MacroArgs",
	KindExportSnippetBackend:    "ExportSnippetBackend",
	KindExportSnippetValue:      "ExportSnippetValue",
	KindCitationCitestyle:       "CitationCitestyle",
	KindCitationReferenceKey:    "CitationReferenceKey",
	KindHeadingRowStars:         "HeadingRowStars",
	KindHeadingRowKeywordTodo:   "HeadingRowKeywordTodo",
	KindHeadingRowKeywordDone:   "HeadingRowKeywordDone",
	KindHeadingRowPriority:      "HeadingRowPriority",
	KindHeadingRowCommentMarker: "HeadingRowCommentMarker",
	KindHeadingRowTitle:         "HeadingRowTitle",
	KindHeadingRowTags:          "HeadingRowTags",
	KindBlockBegin:              "BlockBegin",
	KindBlockEnd:                "BlockEnd",
	KindBlockType:               "BlockType",
	KindBlockParameters:         "BlockParameters",
	KindDrawerName:              "DrawerName",
	KindDrawerEnd:               "DrawerEnd",
	KindPropertyKey:             "PropertyKey",
	KindPropertyValue:           "PropertyValue",
	KindAffiliatedKeywordKey:    "AffiliatedKeywordKey",
	KindAffiliatedKeywordOpt:    "AffiliatedKeywordOpt",
	KindAffiliatedKeywordValue:  "AffiliatedKeywordValue",
	KindListBullet:              "ListBullet",
	KindListCounterSet:          "ListCounterSet",
	KindListCheckbox:            "ListCheckbox",
	KindListTag:                 "ListTag",
	KindFootnoteLabel:           "FootnoteLabel",
}

// String returns the kind's name, e.g. "HeadingSubtree", matching the
// literal used in Dump output.
func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "Kind(" + itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// IsGreaterElement reports whether k is one of the greater-element
// kinds, whose content is recursively parsed as elements.
func (k Kind) IsGreaterElement() bool {
	switch k {
	case KindTable, KindDrawer, KindPropertyDrawer, KindCenterBlock,
		KindQuoteBlock, KindSpecialBlock, KindList, KindListItem,
		KindFootnoteDefinition:
		return true
	default:
		return false
	}
}

// IsLesserElement reports whether k is one of the lesser-element kinds.
func (k Kind) IsLesserElement() bool {
	switch k {
	case KindParagraph, KindSrcBlock, KindCommentBlock, KindVerseBlock,
		KindExampleBlock, KindExportBlock, KindHorizontalRule,
		KindLatexEnvironment, KindKeyword, KindAffiliatedKeyword,
		KindTableStandardRow, KindTableRuleRow, KindFixedWidth,
		KindComment, KindPlanning, KindNodeProperty:
		return true
	default:
		return false
	}
}

// IsObject reports whether k is one of the inline object kinds.
func (k Kind) IsObject() bool {
	switch k {
	case KindBold, KindItalic, KindUnderline, KindStrikethrough, KindCode,
		KindVerbatim, KindEntity, KindLatexFragment, KindLink, KindAngleLink,
		KindRadioLink, KindRadioTarget, KindTarget, KindTimestamp, KindMacro,
		KindFootnoteReference, KindCitation, KindCitationReference,
		KindSubscript, KindSuperscript, KindLineBreak, KindStatisticsCookie,
		KindExportSnippet, KindTableCell, KindText:
		return true
	default:
		return false
	}
}
