// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package richtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quangdam/mercata/pkg/richtext"
)

/*
TestDocument_PlainText verifies flattening across block shapes: paragraph
text, list items, inline markup, and HTML entities.
*/
func TestDocument_PlainText(t *testing.T) {
	tests := []struct {
		name     string
		document richtext.Document
		expected string
	}{
		{
			name: "paragraphs_joined",
			document: richtext.Document{Blocks: []richtext.Block{
				{Type: "paragraph", Data: richtext.BlockData{Text: "Hand wash only."}},
				{Type: "paragraph", Data: richtext.BlockData{Text: "Do not tumble dry."}},
			}},
			expected: "Hand wash only. Do not tumble dry.",
		},
		{
			name: "list_items_flattened",
			document: richtext.Document{Blocks: []richtext.Block{
				{Type: "list", Data: richtext.BlockData{Items: []string{"Cotton", "Wool"}}},
			}},
			expected: "Cotton Wool",
		},
		{
			name: "markup_stripped",
			document: richtext.Document{Blocks: []richtext.Block{
				{Type: "paragraph", Data: richtext.BlockData{Text: `<b>Bold</b> &amp; <i>quiet</i>`}},
			}},
			expected: "Bold & quiet",
		},
		{
			name:     "no_blocks",
			document: richtext.Document{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.document.PlainText())
		})
	}
}

/*
TestDocument_IsEmpty verifies that markup-only documents count as empty,
which is what required-ness checks rely on.
*/
func TestDocument_IsEmpty(t *testing.T) {
	empty := richtext.Document{Blocks: []richtext.Block{
		{Type: "paragraph", Data: richtext.BlockData{Text: "<b> </b>"}},
	}}
	assert.True(t, empty.IsEmpty())

	filled := richtext.Document{Blocks: []richtext.Block{
		{Type: "paragraph", Data: richtext.BlockData{Text: "x"}},
	}}
	assert.False(t, filled.IsEmpty())
}
