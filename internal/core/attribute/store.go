package attribute

import "context"

// Repository is the storage contract of the attribute engine.
//
// Read methods back the Clean phase and are safe outside a transaction.
// Save executes one materialization plan atomically: the implementation
// must wrap value creation and association replacement in a single
// transaction, and must treat a unique violation on a natural-key insert
// as "a concurrent writer created it" by fetching the existing row.
type Repository interface {
	// ListByScope returns every attribute allowed for the scope.
	ListByScope(ctx context.Context, scope Scope) ([]*Attribute, error)

	// ListByRef resolves a mixed batch of internal keys and slugs against
	// the scope's allowed attributes in one query. Missing entries are
	// simply absent from the result; the caller detects them.
	ListByRef(ctx context.Context, scope Scope, ids []int, slugs []string) ([]*Attribute, error)

	// ResolveEntities fetches referenced catalogue entities of one kind
	// by internal ID, carrying back their canonical display names.
	ResolveEntities(ctx context.Context, entity EntityType, ids []string) ([]*EntityRef, error)

	// Save materializes the planned values and replaces the owner's
	// associations for every attribute present in plans, preserving plan
	// order. An empty op list deletes the owner's assignment for that
	// attribute. Attributes absent from plans are left untouched.
	Save(ctx context.Context, owner Owner, plans []AttributePlan) error

	// ListAssignments returns the owner's current assignments with their
	// values in persisted order.
	ListAssignments(ctx context.Context, owner Owner) ([]*Assignment, error)
}
