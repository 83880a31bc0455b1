// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

// Package gid implements the global-ID addressing scheme used by the public API.
//
// # Format
//
// A global ID is the base64 encoding of "TypeName:internalID", e.g.
// base64("Attribute:42"). Encoding the type name into the address lets the
// decoder reject IDs of the wrong kind before any database work happens.
package gid

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Type names addressable through global IDs.
const (
	TypeAttribute      = "Attribute"
	TypeAttributeValue = "AttributeValue"
	TypeProduct        = "Product"
	TypeProductVariant = "ProductVariant"
	TypePage           = "Page"
)

// Encode builds a global ID from a type name and an internal ID.
func Encode(typeName, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(typeName + ":" + id))
}

// EncodeInt builds a global ID from a type name and an integer internal key.
func EncodeInt(typeName string, id int) string {
	return Encode(typeName, strconv.Itoa(id))
}

// DecodeAny decodes a global ID without checking its type tag.
func DecodeAny(raw string) (typeName, id string, err error) {
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", "", fmt.Errorf("gid: malformed global ID %q", raw)
	}

	typeName, id, found := strings.Cut(string(decoded), ":")
	if !found || typeName == "" || id == "" {
		return "", "", fmt.Errorf("gid: malformed global ID %q", raw)
	}

	return typeName, id, nil
}

// Decode decodes a global ID and verifies it addresses the expected type.
func Decode(raw, expectedType string) (string, error) {
	typeName, id, err := DecodeAny(raw)
	if err != nil {
		return "", err
	}

	if typeName != expectedType {
		return "", fmt.Errorf("gid: expected %s ID, got %s", expectedType, typeName)
	}

	return id, nil
}

// DecodeInt decodes a global ID whose internal key is an integer.
func DecodeInt(raw, expectedType string) (int, error) {
	id, err := Decode(raw, expectedType)
	if err != nil {
		return 0, err
	}

	key, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("gid: non-numeric internal key in %q", raw)
	}

	return key, nil
}
