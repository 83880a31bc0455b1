// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

// Package page implements the catalogue's content pages, typed analogously
// to products: a page type anchors which attributes its pages may carry.
package page

import (
	"time"

	"github.com/quangdam/mercata/internal/core/attribute"
	"github.com/quangdam/mercata/internal/platform/gid"
)

const (
	FieldTitle  = "title"
	FieldTypeID = "type_id"
)

// PageType is the schema anchor for pages.
type PageType struct {
	ID        int       `json:"-"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is one content page.
type Page struct {
	ID        string    `json:"id"`
	TypeID    int       `json:"-"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Attributes []*attribute.Assignment `json:"attributes,omitempty"`
}

// GlobalID returns the public address of the page.
func (p *Page) GlobalID() string {
	return gid.Encode(gid.TypePage, p.ID)
}

// CreatePageInput is the request payload for creating a page.
type CreatePageInput struct {
	TypeID     int                      `json:"type_id"`
	Title      string                   `json:"title"`
	Attributes []*attribute.AssignInput `json:"attributes"`
}

// AssignAttributesInput is the request payload for replacing attribute
// values on an existing page.
type AssignAttributesInput struct {
	Attributes []*attribute.AssignInput `json:"attributes"`
}
