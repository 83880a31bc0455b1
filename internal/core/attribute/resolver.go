// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"context"

	"github.com/quangdam/mercata/internal/platform/gid"
)

// resolveAttributes turns caller-supplied attribute addresses into resolved
// (attribute, input) pairs, in input order.
//
// Addresses are partitioned into decoded internal keys and slugs, then
// fetched in one batch against the scope's allowed set. Resolution failures
// are fatal for the whole request, since proceeding without a definition is
// meaningless, but they are batched: every bad address is collected before
// the single raise.
func (service *Service) resolveAttributes(ctx context.Context, scope Scope, inputs []*AssignInput) (CleanedInput, error) {
	errs := &Errors{}

	keys := make([]int, 0, len(inputs))
	slugs := make([]string, 0, len(inputs))
	// parsedKey[i] holds the decoded internal key for inputs addressed by
	// global ID; byID[i] marks which branch input i took, since any integer
	// (zero included) is a well-formed decoded key.
	parsedKey := make([]int, len(inputs))
	byID := make([]bool, len(inputs))

	for i, in := range inputs {
		switch {
		case in.ID != nil && in.Slug != nil:
			errs.Add(ErrInvalidID, "Attribute must be addressed by either 'id' or 'slug', not both.", *in.ID)
		case in.ID == nil && in.Slug == nil:
			errs.Add(ErrInvalidID, "Attribute must be addressed by 'id' or 'slug'.")
		case in.ID != nil:
			byID[i] = true
			key, err := gid.DecodeInt(*in.ID, gid.TypeAttribute)
			if err != nil {
				errs.Add(ErrInvalidID, "Could not resolve one of the attribute IDs.", *in.ID)
				continue
			}
			parsedKey[i] = key
			keys = append(keys, key)
		default:
			slugs = append(slugs, *in.Slug)
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	resolved, err := service.repo.ListByRef(ctx, scope, keys, slugs)
	if err != nil {
		return nil, err
	}

	byKey := make(map[int]*Attribute, len(resolved))
	bySlug := make(map[string]*Attribute, len(resolved))
	for _, attr := range resolved {
		byKey[attr.ID] = attr
		bySlug[attr.Slug] = attr
	}

	pairs := make(CleanedInput, 0, len(inputs))
	seen := make(map[int]bool, len(inputs))
	var missing []string

	for i, in := range inputs {
		var attr *Attribute
		if byID[i] {
			attr = byKey[parsedKey[i]]
		} else {
			attr = bySlug[*in.Slug]
		}

		// Every requested key and slug must appear in the batch result.
		if attr == nil {
			missing = append(missing, in.Address())
			continue
		}

		// Catches the same attribute addressed twice, including once by ID
		// and once by slug.
		if seen[attr.ID] {
			errs.Add(ErrDuplicatedInputItem, "The same attribute was supplied more than once.", attr.GlobalID())
			continue
		}
		seen[attr.ID] = true

		in.globalID = attr.GlobalID()
		pairs = append(pairs, Pair{Attribute: attr, Input: in})
	}

	if len(missing) > 0 {
		errs.Add(ErrNotFound, "Could not resolve attributes within the allowed set.", missing...)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}
