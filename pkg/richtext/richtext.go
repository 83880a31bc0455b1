// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

/*
Package richtext models the block-based rich text documents stored for
rich-text attribute values.

The document format mirrors editor.js output: a flat list of typed blocks
(paragraph, header, list, quote) whose data carries HTML-annotated text.
Mercata never renders this format server-side; it only needs to flatten it
to plain text for validation (is the document empty?) and for deriving the
display name of the stored value.
*/
package richtext

import (
	"html"
	"regexp"
	"strings"
)

// htmlTag matches inline markup (<b>, <i>, <a href=...>) embedded in block text.
var htmlTag = regexp.MustCompile(`<[^>]*>`)

// Document is a block-based rich text document.
type Document struct {
	Time    int64   `json:"time,omitempty"`
	Blocks  []Block `json:"blocks"`
	Version string  `json:"version,omitempty"`
}

// Block is one typed content block within a [Document].
type Block struct {
	Type string    `json:"type"`
	Data BlockData `json:"data"`
}

// BlockData carries the payload of a block. Text is used by paragraph,
// header, and quote blocks; Items by list blocks.
type BlockData struct {
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// PlainText flattens the document to whitespace-joined plain text.
//
// Inline HTML markup is stripped and entities are unescaped, so a document
// containing only empty paragraphs or markup-only text flattens to "".
func (d *Document) PlainText() string {
	if d == nil {
		return ""
	}

	var parts []string
	for _, block := range d.Blocks {
		if text := cleanFragment(block.Data.Text); text != "" {
			parts = append(parts, text)
		}
		for _, item := range block.Data.Items {
			if text := cleanFragment(item); text != "" {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(parts, " ")
}

// IsEmpty reports whether the document flattens to no visible text.
func (d *Document) IsEmpty() bool {
	return strings.TrimSpace(d.PlainText()) == ""
}

// cleanFragment strips markup from a single block fragment.
func cleanFragment(s string) string {
	s = htmlTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}
