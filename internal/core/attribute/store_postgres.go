// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quangdam/mercata/internal/platform/database/schema"
	"github.com/quangdam/mercata/internal/platform/dberr"
	"github.com/quangdam/mercata/pkg/slug"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListByScope(context context.Context, scope Scope) ([]*Attribute, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s
		FROM %s a
		JOIN %s s ON s.%s = a.%s
		WHERE s.%s = $1 AND s.%s = $2
		ORDER BY a.%s ASC
	`,
		schema.AttrAttribute.ID, schema.AttrAttribute.Name, schema.AttrAttribute.Slug,
		schema.AttrAttribute.InputType, schema.AttrAttribute.EntityType, schema.AttrAttribute.ValueRequired,
		schema.AttrAttribute.Table, schema.AttrScope.Table,
		schema.AttrScope.AttributeID, schema.AttrAttribute.ID,
		schema.AttrScope.ScopeKind, schema.AttrScope.ScopeID,
		schema.AttrAttribute.ID,
	)

	rows, err := repository.db.Query(context, query, string(scope.Kind), scope.TypeID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_attributes_by_scope")
	}
	defer rows.Close()

	return scanAttributes(rows)
}

func (repository *PostgresRepository) ListByRef(context context.Context, scope Scope, ids []int, slugs []string) ([]*Attribute, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s
		FROM %s a
		JOIN %s s ON s.%s = a.%s
		WHERE s.%s = $1 AND s.%s = $2
		  AND (a.%s = ANY($3) OR a.%s = ANY($4))
	`,
		schema.AttrAttribute.ID, schema.AttrAttribute.Name, schema.AttrAttribute.Slug,
		schema.AttrAttribute.InputType, schema.AttrAttribute.EntityType, schema.AttrAttribute.ValueRequired,
		schema.AttrAttribute.Table, schema.AttrScope.Table,
		schema.AttrScope.AttributeID, schema.AttrAttribute.ID,
		schema.AttrScope.ScopeKind, schema.AttrScope.ScopeID,
		schema.AttrAttribute.ID, schema.AttrAttribute.Slug,
	)

	rows, err := repository.db.Query(context, query, string(scope.Kind), scope.TypeID, ids, slugs)
	if err != nil {
		return nil, dberr.Wrap(err, "list_attributes_by_ref")
	}
	defer rows.Close()

	return scanAttributes(rows)
}

func (repository *PostgresRepository) ResolveEntities(context context.Context, entity EntityType, ids []string) ([]*EntityRef, error) {
	var table, idColumn, nameColumn string
	switch entity {
	case EntityProduct:
		table, idColumn, nameColumn = schema.CatalogProduct.Table, schema.CatalogProduct.ID, schema.CatalogProduct.Name
	case EntityVariant:
		table, idColumn, nameColumn = schema.CatalogVariant.Table, schema.CatalogVariant.ID, schema.CatalogVariant.Name
	case EntityPage:
		table, idColumn, nameColumn = schema.CatalogPage.Table, schema.CatalogPage.ID, schema.CatalogPage.Title
	default:
		return nil, fmt.Errorf("attribute: unknown entity type %q", entity)
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1)`,
		idColumn, nameColumn, table, idColumn)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_entities")
	}
	defer rows.Close()

	refs := make([]*EntityRef, 0, len(ids))
	for rows.Next() {
		ref := &EntityRef{Type: entity}
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_entity_ref")
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// Save executes the materialization plan in one transaction: resolve every
// op to a value row ID, then replace the owner's association list for each
// planned attribute.
func (repository *PostgresRepository) Save(context context.Context, owner Owner, plans []AttributePlan) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_save_attributes")
	}
	defer transaction.Rollback(context)

	for _, plan := range plans {
		valueIDs := make([]int, 0, len(plan.Ops))
		for _, op := range plan.Ops {
			valueID, err := repository.resolveOp(context, transaction, owner, plan.Attribute, op)
			if err != nil {
				return err
			}
			valueIDs = append(valueIDs, valueID)
		}

		if err := repository.replaceAssignment(context, transaction, owner, plan.Attribute.ID, valueIDs); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_save_attributes")
	}
	return nil
}

// resolveOp turns one planned value write into a concrete value row ID.
func (repository *PostgresRepository) resolveOp(context context.Context, transaction pgx.Tx, owner Owner, attr *Attribute, op ValueOp) (int, error) {
	switch op.Kind {
	case OpGetOrCreate:
		return repository.getOrCreateValue(context, transaction, attr.ID, op.Slug, op.Defaults)
	case OpUpdateOrCreate:
		return repository.updateOrCreateValue(context, transaction, attr.ID, op.Slug, op.Defaults)
	case OpFile:
		return repository.createFileValue(context, transaction, owner, attr.ID, op.Defaults)
	}
	return 0, fmt.Errorf("attribute: unknown value op kind %d", op.Kind)
}

func valueInsertQuery(conflictClause string) string {
	return fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		%s
		RETURNING %s
	`,
		schema.AttrValue.Table,
		schema.AttrValue.AttributeID, schema.AttrValue.Name, schema.AttrValue.Slug,
		schema.AttrValue.FileURL, schema.AttrValue.ContentType,
		schema.AttrValue.PlainText, schema.AttrValue.RichText,
		schema.AttrValue.Boolean, schema.AttrValue.DateTime,
		schema.AttrValue.RefType, schema.AttrValue.RefID,
		conflictClause,
		schema.AttrValue.ID,
	)
}

func valueInsertArgs(attributeID int, valueSlug string, defaults Value) []any {
	var refType, refID *string
	if defaults.Reference != nil {
		t := string(defaults.Reference.Type)
		refType, refID = &t, &defaults.Reference.ID
	}

	var richText []byte
	if len(defaults.RichText) > 0 {
		richText = defaults.RichText
	}

	return []any{
		attributeID, defaults.Name, valueSlug,
		defaults.FileURL, defaults.ContentType,
		defaults.PlainText, richText,
		defaults.Boolean, defaults.DateTime,
		refType, refID,
	}
}

// getOrCreateValue converges concurrent writers on one row per natural key.
// DO NOTHING makes the insert silent when the key exists, in which case the
// winner's row is fetched. A concurrent insert between the two statements
// is impossible inside the transaction because DO NOTHING already observed
// the committed row.
func (repository *PostgresRepository) getOrCreateValue(context context.Context, transaction pgx.Tx, attributeID int, valueSlug string, defaults Value) (int, error) {
	insert := valueInsertQuery(fmt.Sprintf(`ON CONFLICT (%s, %s) DO NOTHING`,
		schema.AttrValue.AttributeID, schema.AttrValue.Slug))

	var id int
	err := transaction.QueryRow(context, insert, valueInsertArgs(attributeID, valueSlug, defaults)...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, dberr.Wrap(err, "insert_attribute_value")
	}

	// The key already exists; adopt the existing row.
	fetch := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.AttrValue.ID, schema.AttrValue.Table,
		schema.AttrValue.AttributeID, schema.AttrValue.Slug)
	if err := transaction.QueryRow(context, fetch, attributeID, valueSlug).Scan(&id); err != nil {
		return 0, dberr.Wrap(err, "fetch_attribute_value")
	}
	return id, nil
}

// updateOrCreateValue upserts the owner-private row for instance-scoped
// value types, overwriting the payload in place.
func (repository *PostgresRepository) updateOrCreateValue(context context.Context, transaction pgx.Tx, attributeID int, valueSlug string, defaults Value) (int, error) {
	upsert := valueInsertQuery(fmt.Sprintf(`
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		schema.AttrValue.AttributeID, schema.AttrValue.Slug,
		schema.AttrValue.Name, schema.AttrValue.Name,
		schema.AttrValue.PlainText, schema.AttrValue.PlainText,
		schema.AttrValue.RichText, schema.AttrValue.RichText,
		schema.AttrValue.Boolean, schema.AttrValue.Boolean,
		schema.AttrValue.DateTime, schema.AttrValue.DateTime,
	))

	var id int
	err := transaction.QueryRow(context, upsert, valueInsertArgs(attributeID, valueSlug, defaults)...).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "upsert_attribute_value")
	}
	return id, nil
}

// createFileValue reuses the owner's existing value when it already points
// at the same URL, otherwise inserts a fresh row under a uniquified slug.
func (repository *PostgresRepository) createFileValue(context context.Context, transaction pgx.Tx, owner Owner, attributeID int, defaults Value) (int, error) {
	reuse := fmt.Sprintf(`
		SELECT v.%s
		FROM %s v
		JOIN %s av ON av.%s = v.%s
		JOIN %s a ON av.%s = a.%s
		WHERE a.%s = $1 AND a.%s = $2 AND a.%s = $3 AND v.%s = $4
		LIMIT 1
	`,
		schema.AttrValue.ID,
		schema.AttrValue.Table,
		schema.AttrAssignedValue.Table, schema.AttrAssignedValue.ValueID, schema.AttrValue.ID,
		schema.AttrAssignment.Table, schema.AttrAssignedValue.AssignmentID, schema.AttrAssignment.ID,
		schema.AttrAssignment.OwnerType, schema.AttrAssignment.OwnerID, schema.AttrAssignment.AttributeID,
		schema.AttrValue.FileURL,
	)

	var id int
	err := transaction.QueryRow(context, reuse,
		string(owner.Type), owner.ID, attributeID, defaults.FileURL).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, dberr.Wrap(err, "reuse_file_value")
	}

	insert := valueInsertQuery(fmt.Sprintf(`ON CONFLICT (%s, %s) DO NOTHING`,
		schema.AttrValue.AttributeID, schema.AttrValue.Slug))

	// Walk suffixed candidates until an insert wins; DO NOTHING reports a
	// taken slug as zero returned rows.
	base := slug.From(defaults.Name)
	for attempt := 1; ; attempt++ {
		candidate := base
		if attempt > 1 {
			candidate = fmt.Sprintf("%s-%d", base, attempt)
		}

		err := transaction.QueryRow(context, insert, valueInsertArgs(attributeID, candidate, defaults)...).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, dberr.Wrap(err, "insert_file_value")
		}
	}
}

// replaceAssignment swaps the owner's association list for one attribute.
// Membership rows are rewritten wholesale so sort order always mirrors the
// latest accepted input.
func (repository *PostgresRepository) replaceAssignment(context context.Context, transaction pgx.Tx, owner Owner, attributeID int, valueIDs []int) error {
	if len(valueIDs) == 0 {
		del := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3`,
			schema.AttrAssignment.Table,
			schema.AttrAssignment.OwnerType, schema.AttrAssignment.OwnerID, schema.AttrAssignment.AttributeID)
		if _, err := transaction.Exec(context, del, string(owner.Type), owner.ID, attributeID); err != nil {
			return dberr.Wrap(err, "delete_assignment")
		}
		return nil
	}

	upsert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s, %s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s
	`,
		schema.AttrAssignment.Table,
		schema.AttrAssignment.OwnerType, schema.AttrAssignment.OwnerID, schema.AttrAssignment.AttributeID,
		schema.AttrAssignment.OwnerType, schema.AttrAssignment.OwnerID, schema.AttrAssignment.AttributeID,
		schema.AttrAssignment.AttributeID, schema.AttrAssignment.AttributeID,
		schema.AttrAssignment.ID,
	)

	var assignmentID int
	err := transaction.QueryRow(context, upsert, string(owner.Type), owner.ID, attributeID).Scan(&assignmentID)
	if err != nil {
		return dberr.Wrap(err, "upsert_assignment")
	}

	wipe := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.AttrAssignedValue.Table, schema.AttrAssignedValue.AssignmentID)
	if _, err := transaction.Exec(context, wipe, assignmentID); err != nil {
		return dberr.Wrap(err, "clear_assigned_values")
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.AttrAssignedValue.Table,
		schema.AttrAssignedValue.AssignmentID, schema.AttrAssignedValue.ValueID, schema.AttrAssignedValue.SortOrder)
	for sortOrder, valueID := range valueIDs {
		if _, err := transaction.Exec(context, insert, assignmentID, valueID, sortOrder); err != nil {
			return dberr.Wrap(err, "insert_assigned_value")
		}
	}

	return nil
}

func scanAttributes(rows pgx.Rows) ([]*Attribute, error) {
	attributes := make([]*Attribute, 0)
	for rows.Next() {
		attr := &Attribute{}
		var entityType *string
		err := rows.Scan(&attr.ID, &attr.Name, &attr.Slug, &attr.InputType, &entityType, &attr.ValueRequired)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_attribute")
		}
		if entityType != nil {
			et := EntityType(*entityType)
			attr.EntityType = &et
		}
		attributes = append(attributes, attr)
	}
	return attributes, nil
}

func (repository *PostgresRepository) ListAssignments(context context.Context, owner Owner) ([]*Assignment, error) {
	aQuery := fmt.Sprintf(`
		SELECT asg.%s,
		       a.%s, a.%s, a.%s, a.%s, a.%s, a.%s
		FROM %s asg
		JOIN %s a ON asg.%s = a.%s
		WHERE asg.%s = $1 AND asg.%s = $2
		ORDER BY asg.%s ASC
	`,
		schema.AttrAssignment.ID,
		schema.AttrAttribute.ID, schema.AttrAttribute.Name, schema.AttrAttribute.Slug,
		schema.AttrAttribute.InputType, schema.AttrAttribute.EntityType, schema.AttrAttribute.ValueRequired,
		schema.AttrAssignment.Table, schema.AttrAttribute.Table,
		schema.AttrAssignment.AttributeID, schema.AttrAttribute.ID,
		schema.AttrAssignment.OwnerType, schema.AttrAssignment.OwnerID,
		schema.AttrAssignment.ID,
	)

	aRows, err := repository.db.Query(context, aQuery, string(owner.Type), owner.ID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_assignments")
	}
	defer aRows.Close()

	assignments := make([]*Assignment, 0)
	byID := make(map[int]*Assignment)

	for aRows.Next() {
		assignment := &Assignment{Attribute: &Attribute{}, Values: make([]*Value, 0)}
		var entityType *string
		err := aRows.Scan(
			&assignment.ID,
			&assignment.Attribute.ID, &assignment.Attribute.Name, &assignment.Attribute.Slug,
			&assignment.Attribute.InputType, &entityType, &assignment.Attribute.ValueRequired,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_assignment")
		}
		if entityType != nil {
			et := EntityType(*entityType)
			assignment.Attribute.EntityType = &et
		}
		assignments = append(assignments, assignment)
		byID[assignment.ID] = assignment
	}
	aRows.Close()

	vQuery := fmt.Sprintf(`
		SELECT av.%s,
		       v.%s, v.%s, v.%s, v.%s, v.%s, v.%s, v.%s, v.%s, v.%s, v.%s, v.%s, v.%s
		FROM %s av
		JOIN %s v ON av.%s = v.%s
		JOIN %s asg ON av.%s = asg.%s
		WHERE asg.%s = $1 AND asg.%s = $2
		ORDER BY av.%s ASC, av.%s ASC
	`,
		schema.AttrAssignedValue.AssignmentID,
		schema.AttrValue.ID, schema.AttrValue.AttributeID, schema.AttrValue.Name, schema.AttrValue.Slug,
		schema.AttrValue.FileURL, schema.AttrValue.ContentType,
		schema.AttrValue.PlainText, schema.AttrValue.RichText,
		schema.AttrValue.Boolean, schema.AttrValue.DateTime,
		schema.AttrValue.RefType, schema.AttrValue.RefID,
		schema.AttrAssignedValue.Table,
		schema.AttrValue.Table, schema.AttrAssignedValue.ValueID, schema.AttrValue.ID,
		schema.AttrAssignment.Table, schema.AttrAssignedValue.AssignmentID, schema.AttrAssignment.ID,
		schema.AttrAssignment.OwnerType, schema.AttrAssignment.OwnerID,
		schema.AttrAssignedValue.AssignmentID, schema.AttrAssignedValue.SortOrder,
	)

	vRows, err := repository.db.Query(context, vQuery, string(owner.Type), owner.ID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_assigned_values")
	}
	defer vRows.Close()

	for vRows.Next() {
		var assignmentID int
		value := &Value{}
		var richText []byte
		var refType, refID *string

		err := vRows.Scan(
			&assignmentID,
			&value.ID, &value.AttributeID, &value.Name, &value.Slug,
			&value.FileURL, &value.ContentType,
			&value.PlainText, &richText,
			&value.Boolean, &value.DateTime,
			&refType, &refID,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_assigned_value")
		}

		value.RichText = richText
		if refType != nil && refID != nil {
			value.Reference = &EntityRef{Type: EntityType(*refType), ID: *refID}
		}

		if assignment, ok := byID[assignmentID]; ok {
			assignment.Values = append(assignment.Values, value)
		}
	}

	return assignments, nil
}
