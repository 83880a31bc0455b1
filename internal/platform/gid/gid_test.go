// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package gid_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdam/mercata/internal/platform/gid"
)

/*
TestGID_Roundtrip verifies encode/decode symmetry for every addressable type.
*/
func TestGID_Roundtrip(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		id       string
	}{
		{"attribute", gid.TypeAttribute, "42"},
		{"product", gid.TypeProduct, "0192f3a1-7b9c-7e55-a3c4-9f2d1e88c001"},
		{"page", gid.TypePage, "0192f3a1-7b9c-7e55-a3c4-9f2d1e88c002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := gid.Encode(tt.typeName, tt.id)

			decoded, err := gid.Decode(raw, tt.typeName)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

/*
TestGID_WrongType verifies that a well-formed ID of another kind is rejected.
*/
func TestGID_WrongType(t *testing.T) {
	raw := gid.Encode(gid.TypeProduct, "abc")

	_, err := gid.Decode(raw, gid.TypeAttribute)
	assert.Error(t, err)
}

/*
TestGID_Malformed verifies rejection of syntactically broken addresses.
*/
func TestGID_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not_base64", "!!not-base64!!"},
		{"no_separator", base64.StdEncoding.EncodeToString([]byte("Attribute42"))},
		{"empty_id", base64.StdEncoding.EncodeToString([]byte("Attribute:"))},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := gid.DecodeAny(tt.raw)
			assert.Error(t, err)
		})
	}
}

/*
TestGID_DecodeInt verifies integer key parsing on top of type checking.
*/
func TestGID_DecodeInt(t *testing.T) {
	raw := gid.EncodeInt(gid.TypeAttribute, 7)

	key, err := gid.DecodeInt(raw, gid.TypeAttribute)
	require.NoError(t, err)
	assert.Equal(t, 7, key)

	// Non-numeric internal key
	_, err = gid.DecodeInt(gid.Encode(gid.TypeAttribute, "seven"), gid.TypeAttribute)
	assert.Error(t, err)
}
