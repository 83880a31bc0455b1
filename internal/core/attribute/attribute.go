// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

/*
Package attribute implements the typed attribute assignment engine at the heart
of the Mercata catalogue.

Products, variants, and pages carry caller-defined attributes (free text,
numbers, booleans, dates, rich text, files, references to other catalogue
entities). This package validates a caller's attribute input against the
schema and persists it as a deduplicated, ordered set of value associations.

# Two-Phase Contract

The engine exposes exactly two operations (see [Service]):

  - Clean: resolve attribute addresses, resolve references, run every
    per-type validator, and aggregate ALL violations into one error.
    Pure reads; safe to call outside a transaction.
  - Save: materialize values (get-or-create by natural key) and replace the
    owner's associations in caller order, inside one transaction.

Save must only be called with input that Clean accepted, and only after the
owner instance has a durable identity.
*/
package attribute

import (
	"encoding/json"
	"time"

	"github.com/quangdam/mercata/internal/platform/gid"
)

// InputType is the closed set of attribute input shapes.
type InputType string

const (
	InputDropdown    InputType = "dropdown"
	InputMultiselect InputType = "multiselect"
	InputFile        InputType = "file"
	InputReference   InputType = "reference"
	InputRichText    InputType = "rich_text"
	InputPlainText   InputType = "plain_text"
	InputNumeric     InputType = "numeric"
	InputBoolean     InputType = "boolean"
	InputDate        InputType = "date"
	InputDateTime    InputType = "date_time"
)

// IsSelect reports whether the input type stores caller-supplied option
// values shared across instances (dropdown or multiselect).
func (t InputType) IsSelect() bool {
	return t == InputDropdown || t == InputMultiselect
}

// Valid reports whether t is one of the known input types.
func (t InputType) Valid() bool {
	switch t {
	case InputDropdown, InputMultiselect, InputFile, InputReference,
		InputRichText, InputPlainText, InputNumeric, InputBoolean,
		InputDate, InputDateTime:
		return true
	}
	return false
}

// EntityType is the closed set of catalogue kinds a reference attribute
// may point at, and also the set of owner kinds values can be assigned to.
type EntityType string

const (
	EntityProduct EntityType = "product"
	EntityVariant EntityType = "variant"
	EntityPage    EntityType = "page"
)

// GIDType maps the entity type to its public global-ID type tag.
func (e EntityType) GIDType() string {
	switch e {
	case EntityProduct:
		return gid.TypeProduct
	case EntityVariant:
		return gid.TypeProductVariant
	case EntityPage:
		return gid.TypePage
	}
	return ""
}

// NameMaxLength caps the stored name of select-like values.
const NameMaxLength = 250

// TextNameLength caps the derived display name of text-based values.
const TextNameLength = 200

// Attribute is a schema-level field definition owned by the external
// schema registry. It is immutable during the engine's execution.
type Attribute struct {
	ID        int       `json:"-"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	InputType InputType `json:"input_type"`

	// EntityType is only meaningful when InputType is [InputReference].
	EntityType *EntityType `json:"entity_type,omitempty"`

	// ValueRequired marks the attribute as mandatory at instance creation.
	ValueRequired bool `json:"value_required"`

	CreatedAt time.Time `json:"-"`
}

// GlobalID returns the public address of the attribute.
func (a *Attribute) GlobalID() string {
	return gid.EncodeInt(gid.TypeAttribute, a.ID)
}

// Value is a stored, attribute-scoped value row. The (AttributeID, Slug)
// pair is unique; exactly one payload field is populated, matching the
// attribute's input type.
type Value struct {
	ID          int             `json:"-"`
	AttributeID int             `json:"-"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	FileURL     *string         `json:"file_url,omitempty"`
	ContentType *string         `json:"content_type,omitempty"`
	PlainText   *string         `json:"plain_text,omitempty"`
	RichText    json.RawMessage `json:"rich_text,omitempty"`
	Boolean     *bool           `json:"boolean,omitempty"`
	DateTime    *time.Time      `json:"date_time,omitempty"`
	Reference   *EntityRef      `json:"reference,omitempty"`
}

// GlobalID returns the public address of the value.
func (v *Value) GlobalID() string {
	return gid.EncodeInt(gid.TypeAttributeValue, v.ID)
}

// EntityRef is a resolved pointer to one catalogue entity, carrying the
// canonical display name of the target for value naming.
type EntityRef struct {
	Type EntityType `json:"type"`
	ID   string     `json:"id"`
	Name string     `json:"name"`
}

// GlobalID returns the public address of the referenced entity.
func (r *EntityRef) GlobalID() string {
	return gid.Encode(r.Type.GIDType(), r.ID)
}

// Owner identifies the already-persisted instance values are assigned to.
type Owner struct {
	Type EntityType `json:"type"`
	ID   string     `json:"id"`
}

// Assignment is the ordered link between one owner and one attribute's
// value set. It never persists with zero values.
type Assignment struct {
	ID        int        `json:"-"`
	Attribute *Attribute `json:"attribute"`
	Values    []*Value   `json:"values"`
}

// ScopeKind selects which slice of a type's schema applies: attributes of
// products of a product type, of their variants, or of pages of a page type.
type ScopeKind string

const (
	ScopeProduct ScopeKind = "product"
	ScopeVariant ScopeKind = "variant"
	ScopePage    ScopeKind = "page"
)

// Scope addresses the set of attributes allowed for one owner, derived
// from the owner's product type or page type.
type Scope struct {
	Kind   ScopeKind
	TypeID int
}
