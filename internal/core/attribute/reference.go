// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"context"

	"github.com/quangdam/mercata/internal/platform/gid"
	"github.com/quangdam/mercata/pkg/slice"
)

// resolveReferences resolves the reference addresses of every
// reference-typed pair to concrete catalogue entities of the type the
// attribute declares.
//
// All addresses of one attribute resolve in a single batch lookup. If any
// address in the batch fails to decode, carries the wrong entity type, or
// points at a nonexistent row, the whole attribute's reference list is
// marked invalid; the caller sees one violation naming the offending
// attributes rather than one per address. Violations are collected into
// errs and surface at the commit gate together with validator output.
//
// Successfully resolved entities replace the raw addresses on the input,
// so materialization operates only on resolved references. Supplying no
// references is not a resolution concern (required-ness handles absence).
func (service *Service) resolveReferences(ctx context.Context, pairs CleanedInput, errs *Errors) error {
	var invalid []string

	for _, pair := range pairs {
		attr, in := pair.Attribute, pair.Input
		if attr.InputType != InputReference || len(in.References) == 0 {
			continue
		}

		// A reference attribute without a declared entity type cannot
		// resolve anything; treat its whole list as invalid.
		if attr.EntityType == nil {
			invalid = append(invalid, in.GlobalID())
			continue
		}
		entityType := *attr.EntityType

		ids := make([]string, 0, len(in.References))
		decodable := true
		for _, raw := range in.References {
			id, err := gid.Decode(raw, entityType.GIDType())
			if err != nil {
				decodable = false
				break
			}
			ids = append(ids, id)
		}
		if !decodable {
			invalid = append(invalid, in.GlobalID())
			continue
		}

		refs, err := service.repo.ResolveEntities(ctx, entityType, slice.Dedupe(ids))
		if err != nil {
			return err
		}

		byID := make(map[string]*EntityRef, len(refs))
		for _, ref := range refs {
			byID[ref.ID] = ref
		}

		// Rebuild in caller order; a missing row invalidates the list.
		resolved := make([]*EntityRef, 0, len(ids))
		complete := true
		for _, id := range ids {
			ref, found := byID[id]
			if !found {
				complete = false
				break
			}
			resolved = append(resolved, ref)
		}
		if !complete {
			invalid = append(invalid, in.GlobalID())
			continue
		}

		in.refs = resolved
	}

	if len(invalid) > 0 {
		errs.Add(ErrInvalid, "Some of the provided attribute references are invalid.", invalid...)
	}

	return nil
}
