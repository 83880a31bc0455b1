// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quangdam/mercata/pkg/slug"
)

/*
TestFrom verifies the slug pipeline across the inputs the attribute engine
feeds it: display names, file names, and composed natural keys.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Winter Jacket", "winter-jacket"},
		{"accents_stripped", "Rouge Foncé", "rouge-fonce"},
		{"case_folded", "ROUGE fonce", "rouge-fonce"},
		{"file_name", "spec.pdf", "spec-pdf"},
		{"composed_key", "prod-1_42", "prod-1-42"},
		{"punctuation_collapsed", "100% -- Cotton!", "100-cotton"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

/*
TestFrom_EqualInputsConverge verifies that visually different spellings of
one value produce the same slug, since value deduplication rides on it.
*/
func TestFrom_EqualInputsConverge(t *testing.T) {
	assert.Equal(t, slug.From("Deep  Red"), slug.From("deep red"))
	assert.Equal(t, slug.From("Café"), slug.From("cafe"))
}
