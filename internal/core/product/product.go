// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

// Package product implements the catalogue's product domain: product types,
// products, and their variants, each carrying typed attribute assignments.
package product

import (
	"time"

	"github.com/quangdam/mercata/internal/core/attribute"
	"github.com/quangdam/mercata/internal/platform/gid"
)

// JSON field identifiers used in validation errors.
const (
	FieldName        = "name"
	FieldTypeID      = "type_id"
	FieldSKU         = "sku"
	FieldDescription = "description"
)

// ProductType is the schema anchor for products: it decides which
// attributes products of this type (and their variants) may carry.
type ProductType struct {
	ID        int       `json:"-"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is one sellable catalogue item.
type Product struct {
	ID          string    `json:"id"`
	TypeID      int       `json:"-"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Attributes []*attribute.Assignment `json:"attributes,omitempty"`
}

// GlobalID returns the public address of the product.
func (p *Product) GlobalID() string {
	return gid.Encode(gid.TypeProduct, p.ID)
}

// Variant is one purchasable variation of a product. Variants share the
// product's type and therefore its variant-scoped attribute set.
type Variant struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	CreatedAt time.Time `json:"created_at"`

	Attributes []*attribute.Assignment `json:"attributes,omitempty"`
}

// GlobalID returns the public address of the variant.
func (v *Variant) GlobalID() string {
	return gid.Encode(gid.TypeProductVariant, v.ID)
}

// CreateProductInput is the request payload for creating a product.
type CreateProductInput struct {
	TypeID      int                      `json:"type_id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Attributes  []*attribute.AssignInput `json:"attributes"`
}

// CreateVariantInput is the request payload for creating a variant.
type CreateVariantInput struct {
	Name       string                   `json:"name"`
	SKU        string                   `json:"sku"`
	Attributes []*attribute.AssignInput `json:"attributes"`
}

// AssignAttributesInput is the request payload for replacing attribute
// values on an existing product or variant.
type AssignAttributesInput struct {
	Attributes []*attribute.AssignInput `json:"attributes"`
}
