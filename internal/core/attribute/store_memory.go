// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/quangdam/mercata/pkg/slug"
)

// MemoryRepository is an in-memory Repository mirroring the Postgres
// semantics, including natural-key convergence and file slug uniquification.
// It backs the engine's tests and local development without a database.
type MemoryRepository struct {
	mu sync.Mutex

	nextValueID      int
	nextAssignmentID int

	attributes map[int]*Attribute
	scopes     map[Scope][]int
	entities   map[EntityType]map[string]string

	values      map[int]*Value
	valueBySlug map[string]int

	assignments map[string]*memoryAssignment
}

type memoryAssignment struct {
	id          int
	attributeID int
	valueIDs    []int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		attributes:  make(map[int]*Attribute),
		scopes:      make(map[Scope][]int),
		entities:    make(map[EntityType]map[string]string),
		values:      make(map[int]*Value),
		valueBySlug: make(map[string]int),
		assignments: make(map[string]*memoryAssignment),
	}
}

// SeedAttribute registers an attribute as allowed within the scope.
func (repository *MemoryRepository) SeedAttribute(scope Scope, attr *Attribute) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.attributes[attr.ID] = attr
	repository.scopes[scope] = append(repository.scopes[scope], attr.ID)
}

// SeedEntity registers a referencable catalogue entity.
func (repository *MemoryRepository) SeedEntity(entity EntityType, id, name string) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.entities[entity] == nil {
		repository.entities[entity] = make(map[string]string)
	}
	repository.entities[entity][id] = name
}

// ValueCount reports the number of stored value rows, letting tests assert
// reuse versus creation.
func (repository *MemoryRepository) ValueCount() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.values)
}

func (repository *MemoryRepository) ListByScope(ctx context.Context, scope Scope) ([]*Attribute, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	out := make([]*Attribute, 0, len(repository.scopes[scope]))
	for _, id := range repository.scopes[scope] {
		out = append(out, repository.attributes[id])
	}
	return out, nil
}

func (repository *MemoryRepository) ListByRef(ctx context.Context, scope Scope, ids []int, slugs []string) ([]*Attribute, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	wantID := make(map[int]bool, len(ids))
	for _, id := range ids {
		wantID[id] = true
	}
	wantSlug := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		wantSlug[s] = true
	}

	out := make([]*Attribute, 0)
	for _, id := range repository.scopes[scope] {
		attr := repository.attributes[id]
		if wantID[attr.ID] || wantSlug[attr.Slug] {
			out = append(out, attr)
		}
	}
	return out, nil
}

func (repository *MemoryRepository) ResolveEntities(ctx context.Context, entity EntityType, ids []string) ([]*EntityRef, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	out := make([]*EntityRef, 0, len(ids))
	for _, id := range ids {
		if name, ok := repository.entities[entity][id]; ok {
			out = append(out, &EntityRef{Type: entity, ID: id, Name: name})
		}
	}
	return out, nil
}

func (repository *MemoryRepository) Save(ctx context.Context, owner Owner, plans []AttributePlan) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, plan := range plans {
		valueIDs := make([]int, 0, len(plan.Ops))
		for _, op := range plan.Ops {
			valueIDs = append(valueIDs, repository.resolveOp(owner, plan.Attribute, op))
		}

		key := assignmentKey(owner, plan.Attribute.ID)
		if len(valueIDs) == 0 {
			delete(repository.assignments, key)
			continue
		}

		assignment, ok := repository.assignments[key]
		if !ok {
			repository.nextAssignmentID++
			assignment = &memoryAssignment{id: repository.nextAssignmentID, attributeID: plan.Attribute.ID}
			repository.assignments[key] = assignment
		}
		assignment.valueIDs = valueIDs
	}

	return nil
}

func (repository *MemoryRepository) resolveOp(owner Owner, attr *Attribute, op ValueOp) int {
	switch op.Kind {
	case OpGetOrCreate:
		key := valueKey(attr.ID, op.Slug)
		if id, ok := repository.valueBySlug[key]; ok {
			return id
		}
		return repository.createValue(attr.ID, op.Slug, op.Defaults)

	case OpUpdateOrCreate:
		key := valueKey(attr.ID, op.Slug)
		if id, ok := repository.valueBySlug[key]; ok {
			existing := repository.values[id]
			existing.Name = op.Defaults.Name
			existing.PlainText = op.Defaults.PlainText
			existing.RichText = op.Defaults.RichText
			existing.Boolean = op.Defaults.Boolean
			existing.DateTime = op.Defaults.DateTime
			return id
		}
		return repository.createValue(attr.ID, op.Slug, op.Defaults)

	case OpFile:
		if assignment, ok := repository.assignments[assignmentKey(owner, attr.ID)]; ok {
			for _, id := range assignment.valueIDs {
				existing := repository.values[id]
				if existing.FileURL != nil && op.Defaults.FileURL != nil && *existing.FileURL == *op.Defaults.FileURL {
					return id
				}
			}
		}

		base := slug.From(op.Defaults.Name)
		for attempt := 1; ; attempt++ {
			candidate := base
			if attempt > 1 {
				candidate = fmt.Sprintf("%s-%d", base, attempt)
			}
			if _, taken := repository.valueBySlug[valueKey(attr.ID, candidate)]; !taken {
				return repository.createValue(attr.ID, candidate, op.Defaults)
			}
		}
	}
	return 0
}

func (repository *MemoryRepository) createValue(attributeID int, valueSlug string, defaults Value) int {
	repository.nextValueID++
	value := defaults
	value.ID = repository.nextValueID
	value.AttributeID = attributeID
	value.Slug = valueSlug
	repository.values[value.ID] = &value
	repository.valueBySlug[valueKey(attributeID, valueSlug)] = value.ID
	return value.ID
}

func (repository *MemoryRepository) ListAssignments(ctx context.Context, owner Owner) ([]*Assignment, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	prefix := string(owner.Type) + "|" + owner.ID + "|"
	stored := make([]*memoryAssignment, 0)
	for key, assignment := range repository.assignments {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			stored = append(stored, assignment)
		}
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].id < stored[j].id })

	out := make([]*Assignment, 0, len(stored))
	for _, assignment := range stored {
		values := make([]*Value, 0, len(assignment.valueIDs))
		for _, id := range assignment.valueIDs {
			values = append(values, repository.values[id])
		}
		out = append(out, &Assignment{
			ID:        assignment.id,
			Attribute: repository.attributes[assignment.attributeID],
			Values:    values,
		})
	}
	return out, nil
}

func assignmentKey(owner Owner, attributeID int) string {
	return fmt.Sprintf("%s|%s|%d", owner.Type, owner.ID, attributeID)
}

func valueKey(attributeID int, valueSlug string) string {
	return fmt.Sprintf("%d|%s", attributeID, valueSlug)
}
