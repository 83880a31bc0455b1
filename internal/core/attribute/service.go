// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"context"
	"log/slog"
)

// DuplicatePolicy decides what happens when a multi-select input carries
// the same value twice.
type DuplicatePolicy string

const (
	// DuplicatesReject fails validation with DUPLICATED_INPUT_ITEM.
	DuplicatesReject DuplicatePolicy = "reject"
	// DuplicatesAllow keeps duplicates, producing repeated associations.
	DuplicatesAllow DuplicatePolicy = "allow"
	// DuplicatesDedupe silently keeps the first occurrence of each value.
	DuplicatesDedupe DuplicatePolicy = "dedupe"
)

// Service is the attribute assignment engine. Writing attributes is a
// two-call contract: Clean validates and resolves the payload without
// touching storage, then Save persists a cleaned payload. Callers run Clean
// before creating the owning instance and Save after, so a validation
// failure never leaves a half-created instance behind.
type Service struct {
	repo       Repository
	logger     *slog.Logger
	duplicates DuplicatePolicy
}

// Option configures optional service behavior.
type Option func(*Service)

// WithDuplicatePolicy overrides the default reject policy for duplicated
// multi-select values.
func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(service *Service) {
		service.duplicates = policy
	}
}

func NewService(repo Repository, logger *slog.Logger, opts ...Option) *Service {
	service := &Service{
		repo:       repo,
		logger:     logger,
		duplicates: DuplicatesReject,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Clean validates the raw payload against the scope and returns the
// resolved pairs, in input order. It performs no writes.
//
// Resolution failures (bad IDs, unknown attributes, duplicated entries)
// raise on their own since nothing further can run without definitions.
// Everything after resolution accumulates: reference problems, per-type
// violations, and, when creating is set, missing value-required attributes
// all come back in one *Errors.
func (service *Service) Clean(ctx context.Context, scope Scope, inputs []*AssignInput, creating bool) (CleanedInput, error) {
	pairs, err := service.resolveAttributes(ctx, scope, inputs)
	if err != nil {
		return nil, err
	}

	errs := &Errors{}
	if err := service.resolveReferences(ctx, pairs, errs); err != nil {
		return nil, err
	}

	for _, pair := range pairs {
		validatePair(pair, service.duplicates, errs)
	}

	if creating {
		allowed, err := service.repo.ListByScope(ctx, scope)
		if err != nil {
			return nil, err
		}
		checkCompleteness(allowed, pairs, errs)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// Save materializes a cleaned payload for the owner and hands the plan to
// the repository, which executes it in one transaction. Attributes not
// present in cleaned keep their existing assignments; an attribute present
// with no usable value has its assignment cleared.
func (service *Service) Save(ctx context.Context, owner Owner, cleaned CleanedInput) error {
	plans := make([]AttributePlan, 0, len(cleaned))
	for _, pair := range cleaned {
		plans = append(plans, materialize(owner, pair))
	}

	if err := service.repo.Save(ctx, owner, plans); err != nil {
		return err
	}

	service.logger.DebugContext(ctx, "attributes saved",
		slog.String("owner_type", string(owner.Type)),
		slog.String("owner_id", owner.ID),
		slog.Int("attributes", len(plans)))
	return nil
}

// ListForScope returns the attributes assignable within the scope.
func (service *Service) ListForScope(ctx context.Context, scope Scope) ([]*Attribute, error) {
	return service.repo.ListByScope(ctx, scope)
}

// Assignments returns the owner's stored assignments with values in
// persisted order.
func (service *Service) Assignments(ctx context.Context, owner Owner) ([]*Assignment, error) {
	return service.repo.ListAssignments(ctx, owner)
}
