// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps standards like [strconv] to provide fault-tolerant conversions
(e.g., returning 0 instead of an error when string parsing fails). This is
highly useful in API handler contexts parsing query parameters.
*/
package convert

import "strconv"

// ToInt converts a string to an int, returning 0 on failure.
func ToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ToIntDefault converts a string to an int, returning the fallback on failure.
func ToIntDefault(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// ToBool converts a string to a bool, returning false on failure.
func ToBool(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return v
}
