// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"fmt"
	"strings"
	"time"

	"github.com/quangdam/mercata/pkg/richtext"
)

// AssignInput is one caller-supplied attribute entry in an assignment
// request. The attribute is addressed by exactly one of ID (global ID) or
// Slug. Of the value branches, only the one matching the attribute's input
// type is read; callers may populate others and they are ignored.
type AssignInput struct {
	// ID is the attribute's global ID address.
	ID *string `json:"id,omitempty"`
	// Slug is the attribute's slug address.
	Slug *string `json:"slug,omitempty"`

	// Values carries select-like and numeric entries, in caller order.
	Values []string `json:"values,omitempty"`

	// FileURL and ContentType carry a file value.
	FileURL     *string `json:"file_url,omitempty"`
	ContentType *string `json:"content_type,omitempty"`

	// References carries global IDs of referenced entities, in caller order.
	References []string `json:"references,omitempty"`

	RichText  *richtext.Document `json:"rich_text,omitempty"`
	PlainText *string            `json:"plain_text,omitempty"`
	Boolean   *bool              `json:"boolean,omitempty"`
	Date      *Date              `json:"date,omitempty"`
	DateTime  *time.Time         `json:"date_time,omitempty"`

	// globalID is filled by the identity resolver once the attribute is
	// known; every violation reports it back to the caller.
	globalID string

	// refs holds the resolved reference entities, replacing the raw
	// References addresses for the materialization phase.
	refs []*EntityRef
}

// Address returns the attribute address as the caller supplied it,
// used in error reporting before resolution succeeds.
func (in *AssignInput) Address() string {
	if in.ID != nil {
		return *in.ID
	}
	if in.Slug != nil {
		return *in.Slug
	}
	return ""
}

// GlobalID returns the resolved attribute's global ID. Before resolution
// it falls back to the raw caller-supplied address.
func (in *AssignInput) GlobalID() string {
	if in.globalID != "" {
		return in.globalID
	}
	return in.Address()
}

// Date is a calendar date (no time component) decoding from "2006-01-02".
type Date struct {
	time.Time
}

// UnmarshalJSON decodes an ISO calendar date.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return nil
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return fmt.Errorf("attribute: invalid date %q (want YYYY-MM-DD)", raw)
	}

	d.Time = parsed
	return nil
}

// MarshalJSON encodes the date back to ISO format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// Pair binds one resolved attribute definition to its caller input.
type Pair struct {
	Attribute *Attribute
	Input     *AssignInput
}

// CleanedInput is the ordered output of [Service.Clean]: every pair has a
// resolved attribute, resolved references, and has passed validation.
type CleanedInput []Pair
