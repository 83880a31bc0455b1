// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/quangdam/mercata/pkg/slug"
)

// OpKind selects the persistence strategy for one planned value.
type OpKind int

const (
	// OpGetOrCreate inserts under a shared natural key and, on conflict,
	// adopts the existing row. Used where equal inputs must converge on one
	// value row (selects, booleans, references).
	OpGetOrCreate OpKind = iota

	// OpUpdateOrCreate upserts under an instance-scoped natural key,
	// overwriting the payload in place. Used where each owner holds exactly
	// one private value row (numeric, dates, texts).
	OpUpdateOrCreate

	// OpFile creates a fresh value row with a uniquified slug, reusing an
	// existing row only when the same owner already points at the same URL.
	OpFile
)

// ValueOp is one planned value write. Slug is the natural key (empty for
// OpFile, whose key is generated at write time); Defaults carries the
// payload columns to set when the row is created.
type ValueOp struct {
	Kind     OpKind
	Slug     string
	Defaults Value
}

// AttributePlan is the full set of value writes for one attribute, in the
// order the owner's association list must end up in. An empty Ops list
// means "clear this attribute's assignment".
type AttributePlan struct {
	Attribute *Attribute
	Ops       []ValueOp
}

// materialize translates one cleaned pair into its persistence plan. It is
// pure: all storage decisions are encoded in the returned ops, so the plan
// can be inspected in tests without a database.
func materialize(owner Owner, pair Pair) AttributePlan {
	attr, in := pair.Attribute, pair.Input
	plan := AttributePlan{Attribute: attr}

	switch attr.InputType {
	case InputDropdown, InputMultiselect:
		for _, raw := range in.Values {
			plan.Ops = append(plan.Ops, ValueOp{
				Kind:     OpGetOrCreate,
				Slug:     slug.From(raw),
				Defaults: Value{Name: raw},
			})
		}

	case InputNumeric:
		if len(in.Values) == 0 {
			break
		}
		plan.Ops = append(plan.Ops, ValueOp{
			Kind:     OpUpdateOrCreate,
			Slug:     instanceSlug(owner, attr),
			Defaults: Value{Name: in.Values[0]},
		})

	case InputBoolean:
		if in.Boolean == nil {
			break
		}
		label := "No"
		if *in.Boolean {
			label = "Yes"
		}
		plan.Ops = append(plan.Ops, ValueOp{
			Kind:     OpGetOrCreate,
			Slug:     slug.From(fmt.Sprintf("%d_%t", attr.ID, *in.Boolean)),
			Defaults: Value{Name: fmt.Sprintf("%s: %s", attr.Name, label), Boolean: in.Boolean},
		})

	case InputDate:
		if in.Date == nil {
			break
		}
		// Stored as midnight UTC so date and date_time values share a column.
		midnight := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, time.UTC)
		plan.Ops = append(plan.Ops, ValueOp{
			Kind:     OpUpdateOrCreate,
			Slug:     instanceSlug(owner, attr),
			Defaults: Value{Name: in.Date.Format("2006-01-02"), DateTime: &midnight},
		})

	case InputDateTime:
		if in.DateTime == nil {
			break
		}
		utc := in.DateTime.UTC()
		plan.Ops = append(plan.Ops, ValueOp{
			Kind:     OpUpdateOrCreate,
			Slug:     instanceSlug(owner, attr),
			Defaults: Value{Name: utc.Format(time.RFC3339), DateTime: &utc},
		})

	case InputRichText:
		if in.RichText == nil || in.RichText.IsEmpty() {
			break
		}
		doc, err := json.Marshal(in.RichText)
		if err != nil {
			break
		}
		plan.Ops = append(plan.Ops, ValueOp{
			Kind:     OpUpdateOrCreate,
			Slug:     instanceSlug(owner, attr),
			Defaults: Value{Name: truncateName(in.RichText.PlainText()), RichText: doc},
		})

	case InputPlainText:
		if in.PlainText == nil || strings.TrimSpace(*in.PlainText) == "" {
			break
		}
		plan.Ops = append(plan.Ops, ValueOp{
			Kind:     OpUpdateOrCreate,
			Slug:     instanceSlug(owner, attr),
			Defaults: Value{Name: truncateName(*in.PlainText), PlainText: in.PlainText},
		})

	case InputReference:
		for _, ref := range in.refs {
			plan.Ops = append(plan.Ops, ValueOp{
				Kind:     OpGetOrCreate,
				Slug:     slug.From(owner.ID + "_" + ref.ID),
				Defaults: Value{Name: ref.Name, Reference: ref},
			})
		}

	case InputFile:
		if in.FileURL == nil || strings.TrimSpace(*in.FileURL) == "" {
			break
		}
		fileURL := strings.TrimSpace(*in.FileURL)
		plan.Ops = append(plan.Ops, ValueOp{
			Kind:     OpFile,
			Defaults: Value{Name: fileName(fileURL), FileURL: &fileURL, ContentType: in.ContentType},
		})
	}

	return plan
}

// instanceSlug is the natural key of instance-scoped value types: one value
// row per (owner, attribute).
func instanceSlug(owner Owner, attr *Attribute) string {
	return slug.From(fmt.Sprintf("%s_%d", owner.ID, attr.ID))
}

// truncateName caps display names derived from free text, cutting on rune
// boundaries.
func truncateName(s string) string {
	runes := []rune(s)
	if len(runes) <= TextNameLength {
		return s
	}
	return string(runes[:TextNameLength])
}

// fileName derives the display name from the last path segment of the URL,
// falling back to the raw string when it does not parse.
func fileName(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Path == "" {
		return raw
	}
	return path.Base(parsed.Path)
}
