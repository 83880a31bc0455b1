// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdam/mercata/internal/core/attribute"
	"github.com/quangdam/mercata/internal/platform/gid"
	"github.com/quangdam/mercata/pkg/pointer"
	"github.com/quangdam/mercata/pkg/richtext"
)

var testScope = attribute.Scope{Kind: attribute.ScopeProduct, TypeID: 1}

func newEngine(t *testing.T, opts ...attribute.Option) (*attribute.Service, *attribute.MemoryRepository) {
	t.Helper()
	repo := attribute.NewMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return attribute.NewService(repo, logger, opts...), repo
}

func attrGID(id int) string {
	return gid.EncodeInt(gid.TypeAttribute, id)
}

func seedColor(repo *attribute.MemoryRepository) *attribute.Attribute {
	attr := &attribute.Attribute{ID: 1, Name: "Color", Slug: "color", InputType: attribute.InputMultiselect}
	repo.SeedAttribute(testScope, attr)
	return attr
}

/*
TestClean_ResolvesByIDAndSlug verifies that attributes can be addressed by
global ID or slug interchangeably and that input order is preserved.
*/
func TestClean_ResolvesByIDAndSlug(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Color", Slug: "color", InputType: attribute.InputDropdown})
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 2, Name: "Material", Slug: "material", InputType: attribute.InputDropdown})

	cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("material"), Values: []string{"Wool"}},
		{ID: pointer.To(attrGID(1)), Values: []string{"Red"}},
	}, false)

	require.NoError(t, err)
	require.Len(t, cleaned, 2)
	assert.Equal(t, "material", cleaned[0].Attribute.Slug)
	assert.Equal(t, "color", cleaned[1].Attribute.Slug)
}

/*
TestClean_AddressingErrors covers malformed addresses: missing, ambiguous,
and undecodable ones.
*/
func TestClean_AddressingErrors(t *testing.T) {
	tests := []struct {
		name  string
		input *attribute.AssignInput
		code  attribute.ErrorCode
	}{
		{"no_address", &attribute.AssignInput{Values: []string{"x"}}, attribute.ErrInvalidID},
		{"both_addresses", &attribute.AssignInput{ID: pointer.To(attrGID(1)), Slug: pointer.To("color"), Values: []string{"x"}}, attribute.ErrInvalidID},
		{"garbage_id", &attribute.AssignInput{ID: pointer.To("not-a-gid"), Values: []string{"x"}}, attribute.ErrInvalidID},
		{"wrong_type_id", &attribute.AssignInput{ID: pointer.To(gid.EncodeInt(gid.TypeAttributeValue, 1)), Values: []string{"x"}}, attribute.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newEngine(t)
			seedColor(repo)

			_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{tt.input}, false)

			verrs := attribute.AsErrors(err)
			require.NotNil(t, verrs)
			require.Len(t, verrs.Violations(), 1)
			assert.Equal(t, tt.code, verrs.Violations()[0].Code)
		})
	}
}

/*
TestClean_UnknownAttribute verifies that addresses outside the scope's
allowed set fail with NOT_FOUND, reporting the raw caller addresses.
*/
func TestClean_UnknownAttribute(t *testing.T) {
	service, repo := newEngine(t)
	seedColor(repo)

	missingID := attrGID(99)
	_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{ID: pointer.To(missingID), Values: []string{"x"}},
		{Slug: pointer.To("no-such-slug"), Values: []string{"y"}},
	}, false)

	verrs := attribute.AsErrors(err)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Violations(), 1)
	violation := verrs.Violations()[0]
	assert.Equal(t, attribute.ErrNotFound, violation.Code)
	assert.ElementsMatch(t, []string{missingID, "no-such-slug"}, violation.Attributes)
}

/*
TestClean_ZeroKeyID verifies that a well-formed attribute ID carrying the
key zero resolves like any other unknown attribute instead of crashing.
*/
func TestClean_ZeroKeyID(t *testing.T) {
	service, repo := newEngine(t)
	seedColor(repo)

	zeroID := attrGID(0)
	_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{ID: pointer.To(zeroID), Values: []string{"x"}},
	}, false)

	verrs := attribute.AsErrors(err)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Violations(), 1)
	violation := verrs.Violations()[0]
	assert.Equal(t, attribute.ErrNotFound, violation.Code)
	assert.Equal(t, []string{zeroID}, violation.Attributes)
}

/*
TestClean_DuplicateAttribute verifies that supplying one attribute twice,
even once by ID and once by slug, is rejected.
*/
func TestClean_DuplicateAttribute(t *testing.T) {
	service, repo := newEngine(t)
	seedColor(repo)

	_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{ID: pointer.To(attrGID(1)), Values: []string{"Red"}},
		{Slug: pointer.To("color"), Values: []string{"Blue"}},
	}, false)

	verrs := attribute.AsErrors(err)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Violations(), 1)
	assert.Equal(t, attribute.ErrDuplicatedInputItem, verrs.Violations()[0].Code)
}

/*
TestClean_AggregatesViolations verifies that validation never fails fast:
identical failures merge their attribute lists and distinct failures appear
side by side in one error.
*/
func TestClean_AggregatesViolations(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Color", Slug: "color", InputType: attribute.InputDropdown, ValueRequired: true})
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 2, Name: "Material", Slug: "material", InputType: attribute.InputDropdown, ValueRequired: true})
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 3, Name: "Weight", Slug: "weight", InputType: attribute.InputNumeric})

	_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("color")},
		{Slug: pointer.To("material")},
		{Slug: pointer.To("weight"), Values: []string{"heavy"}},
	}, false)

	verrs := attribute.AsErrors(err)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Violations(), 2)

	required := verrs.Violations()[0]
	assert.Equal(t, attribute.ErrRequired, required.Code)
	assert.ElementsMatch(t, []string{attrGID(1), attrGID(2)}, required.Attributes)

	invalid := verrs.Violations()[1]
	assert.Equal(t, attribute.ErrInvalid, invalid.Code)
	assert.Equal(t, []string{attrGID(3)}, invalid.Attributes)
}

/*
TestClean_CompletenessOnCreationOnly verifies that value-required
attributes missing from input fail only when creating the owner, never on
updates.
*/
func TestClean_CompletenessOnCreationOnly(t *testing.T) {
	service, repo := newEngine(t)
	seedColor(repo)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 2, Name: "Material", Slug: "material", InputType: attribute.InputDropdown, ValueRequired: true})

	inputs := []*attribute.AssignInput{{Slug: pointer.To("color"), Values: []string{"Red"}}}

	_, err := service.Clean(context.Background(), testScope, inputs, true)
	verrs := attribute.AsErrors(err)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Violations(), 1)
	assert.Equal(t, attribute.ErrRequired, verrs.Violations()[0].Code)
	assert.Equal(t, []string{attrGID(2)}, verrs.Violations()[0].Attributes)

	_, err = service.Clean(context.Background(), testScope, inputs, false)
	assert.NoError(t, err)
}

/*
TestClean_SelectValidation covers arity, blank, and length rules for the
select input types.
*/
func TestClean_SelectValidation(t *testing.T) {
	tests := []struct {
		name      string
		inputType attribute.InputType
		required  bool
		values    []string
		wantCode  attribute.ErrorCode
		wantOK    bool
	}{
		{"dropdown_single", attribute.InputDropdown, false, []string{"Red"}, "", true},
		{"dropdown_many", attribute.InputDropdown, false, []string{"Red", "Blue"}, attribute.ErrInvalid, false},
		{"multiselect_many", attribute.InputMultiselect, false, []string{"Red", "Blue"}, "", true},
		{"required_empty", attribute.InputDropdown, true, nil, attribute.ErrRequired, false},
		{"optional_empty", attribute.InputDropdown, false, nil, "", true},
		{"blank_value", attribute.InputMultiselect, false, []string{"Red", "   "}, attribute.ErrRequired, false},
		{"oversized_value", attribute.InputDropdown, false, []string{strings.Repeat("x", 251)}, attribute.ErrInvalid, false},
		{"multibyte_at_limit", attribute.InputDropdown, false, []string{strings.Repeat("é", 250)}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newEngine(t)
			repo.SeedAttribute(testScope, &attribute.Attribute{
				ID: 1, Name: "Color", Slug: "color",
				InputType: tt.inputType, ValueRequired: tt.required,
			})

			_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
				{Slug: pointer.To("color"), Values: tt.values},
			}, false)

			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			verrs := attribute.AsErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, tt.wantCode, verrs.Violations()[0].Code)
		})
	}
}

/*
TestClean_NumericValidation verifies numeric parsing, single-value arity,
and blank classification. Blank entries violate required-ness, the parse
check covers only entries with content, and independent checks all fire.
*/
func TestClean_NumericValidation(t *testing.T) {
	tests := []struct {
		name      string
		values    []string
		wantCodes []attribute.ErrorCode
	}{
		{"integer", []string{"10"}, nil},
		{"float", []string{"3.14"}, nil},
		{"negative_exponent", []string{"-5e2"}, nil},
		{"not_a_number", []string{"heavy"}, []attribute.ErrorCode{attribute.ErrInvalid}},
		{"blank_value", []string{"   "}, []attribute.ErrorCode{attribute.ErrRequired}},
		{"two_values", []string{"1", "2"}, []attribute.ErrorCode{attribute.ErrInvalid}},
		{"arity_and_content", []string{"heavy", "1"}, []attribute.ErrorCode{attribute.ErrInvalid, attribute.ErrInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newEngine(t)
			repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Weight", Slug: "weight", InputType: attribute.InputNumeric})

			_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
				{Slug: pointer.To("weight"), Values: tt.values},
			}, false)

			if len(tt.wantCodes) == 0 {
				assert.NoError(t, err)
				return
			}

			verrs := attribute.AsErrors(err)
			require.NotNil(t, verrs)
			codes := make([]attribute.ErrorCode, 0, len(verrs.Violations()))
			for _, violation := range verrs.Violations() {
				codes = append(codes, violation.Code)
			}
			assert.ElementsMatch(t, tt.wantCodes, codes)
		})
	}
}

/*
TestClean_BooleanFalseSatisfiesRequired verifies that an explicit false is
a real value: only a missing boolean violates required-ness.
*/
func TestClean_BooleanFalseSatisfiesRequired(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Waterproof", Slug: "waterproof", InputType: attribute.InputBoolean, ValueRequired: true})

	_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("waterproof"), Boolean: pointer.To(false)},
	}, false)
	assert.NoError(t, err)

	_, err = service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("waterproof")},
	}, false)
	verrs := attribute.AsErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, attribute.ErrRequired, verrs.Violations()[0].Code)
}

/*
TestClean_DuplicateValuePolicies verifies the three behaviors for repeated
multi-select values: reject (default), allow, and dedupe.
*/
func TestClean_DuplicateValuePolicies(t *testing.T) {
	owner := attribute.Owner{Type: attribute.EntityProduct, ID: "prod-1"}
	values := []string{"Red", "Red", "Blue"}

	t.Run("reject_by_default", func(t *testing.T) {
		service, repo := newEngine(t)
		seedColor(repo)

		_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("color"), Values: values},
		}, false)

		verrs := attribute.AsErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, attribute.ErrDuplicatedInputItem, verrs.Violations()[0].Code)
	})

	t.Run("allow_keeps_repeats", func(t *testing.T) {
		service, repo := newEngine(t, attribute.WithDuplicatePolicy(attribute.DuplicatesAllow))
		seedColor(repo)

		cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("color"), Values: values},
		}, false)
		require.NoError(t, err)
		require.NoError(t, service.Save(context.Background(), owner, cleaned))

		assignments, err := service.Assignments(context.Background(), owner)
		require.NoError(t, err)
		require.Len(t, assignments, 1)
		assert.Equal(t, []string{"Red", "Red", "Blue"}, valueNames(assignments[0]))
		// Repeats share one stored row.
		assert.Equal(t, 2, repo.ValueCount())
	})

	t.Run("dedupe_keeps_first", func(t *testing.T) {
		service, repo := newEngine(t, attribute.WithDuplicatePolicy(attribute.DuplicatesDedupe))
		seedColor(repo)

		cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("color"), Values: values},
		}, false)
		require.NoError(t, err)
		require.NoError(t, service.Save(context.Background(), owner, cleaned))

		assignments, err := service.Assignments(context.Background(), owner)
		require.NoError(t, err)
		assert.Equal(t, []string{"Red", "Blue"}, valueNames(assignments[0]))
	})
}

/*
TestClean_ReferenceResolution verifies that reference addresses resolve as
one batch per attribute and that any bad address invalidates the whole
list.
*/
func TestClean_ReferenceResolution(t *testing.T) {
	entityType := attribute.EntityPage
	seedRef := func(repo *attribute.MemoryRepository) {
		repo.SeedAttribute(testScope, &attribute.Attribute{
			ID: 1, Name: "Related Pages", Slug: "related-pages",
			InputType: attribute.InputReference, EntityType: &entityType,
		})
		repo.SeedEntity(attribute.EntityPage, "page-1", "Size Guide")
		repo.SeedEntity(attribute.EntityPage, "page-2", "Care Instructions")
	}

	t.Run("resolves_in_order", func(t *testing.T) {
		service, repo := newEngine(t)
		seedRef(repo)

		cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("related-pages"), References: []string{
				gid.Encode(gid.TypePage, "page-2"),
				gid.Encode(gid.TypePage, "page-1"),
			}},
		}, false)
		require.NoError(t, err)

		owner := attribute.Owner{Type: attribute.EntityProduct, ID: "prod-1"}
		require.NoError(t, service.Save(context.Background(), owner, cleaned))

		assignments, err := service.Assignments(context.Background(), owner)
		require.NoError(t, err)
		require.Len(t, assignments, 1)
		assert.Equal(t, []string{"Care Instructions", "Size Guide"}, valueNames(assignments[0]))
	})

	t.Run("wrong_entity_type", func(t *testing.T) {
		service, repo := newEngine(t)
		seedRef(repo)

		_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("related-pages"), References: []string{gid.Encode(gid.TypeProduct, "page-1")}},
		}, false)

		verrs := attribute.AsErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, attribute.ErrInvalid, verrs.Violations()[0].Code)
	})

	t.Run("nonexistent_target", func(t *testing.T) {
		service, repo := newEngine(t)
		seedRef(repo)

		_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("related-pages"), References: []string{
				gid.Encode(gid.TypePage, "page-1"),
				gid.Encode(gid.TypePage, "page-404"),
			}},
		}, false)

		verrs := attribute.AsErrors(err)
		require.NotNil(t, verrs)
		require.Len(t, verrs.Violations(), 1)
		assert.Equal(t, attribute.ErrInvalid, verrs.Violations()[0].Code)
	})
}

/*
TestSave_SharedValuesConverge verifies that equal select inputs from
different owners deduplicate onto one stored value row via the natural key.
*/
func TestSave_SharedValuesConverge(t *testing.T) {
	service, repo := newEngine(t)
	seedColor(repo)

	for _, ownerID := range []string{"prod-1", "prod-2"} {
		cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("color"), Values: []string{"Deep Red"}},
		}, false)
		require.NoError(t, err)

		owner := attribute.Owner{Type: attribute.EntityProduct, ID: ownerID}
		require.NoError(t, service.Save(context.Background(), owner, cleaned))
	}

	assert.Equal(t, 1, repo.ValueCount())
}

/*
TestSave_OrderPreservedAndReordered verifies that association order always
mirrors the latest accepted input.
*/
func TestSave_OrderPreservedAndReordered(t *testing.T) {
	service, repo := newEngine(t)
	seedColor(repo)
	owner := attribute.Owner{Type: attribute.EntityProduct, ID: "prod-1"}

	save := func(values ...string) {
		cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("color"), Values: values},
		}, false)
		require.NoError(t, err)
		require.NoError(t, service.Save(context.Background(), owner, cleaned))
	}

	save("Red", "Green", "Blue")
	assignments, err := service.Assignments(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, valueNames(assignments[0]))

	save("Blue", "Red")
	assignments, err = service.Assignments(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blue", "Red"}, valueNames(assignments[0]))

	// Reordering reuses rows, never creates new ones.
	assert.Equal(t, 3, repo.ValueCount())
}

/*
TestSave_EmptyInputClearsAssignment verifies that an attribute present in
input with no usable value has its stored assignment removed.
*/
func TestSave_EmptyInputClearsAssignment(t *testing.T) {
	service, repo := newEngine(t)
	seedColor(repo)
	owner := attribute.Owner{Type: attribute.EntityProduct, ID: "prod-1"}

	cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("color"), Values: []string{"Red"}},
	}, false)
	require.NoError(t, err)
	require.NoError(t, service.Save(context.Background(), owner, cleaned))

	cleaned, err = service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("color")},
	}, false)
	require.NoError(t, err)
	require.NoError(t, service.Save(context.Background(), owner, cleaned))

	assignments, err := service.Assignments(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

/*
TestSave_NumericIsOwnerScoped verifies that numeric values live in private
per-owner rows which are updated in place.
*/
func TestSave_NumericIsOwnerScoped(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Weight", Slug: "weight", InputType: attribute.InputNumeric})

	save := func(ownerID, value string) {
		cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("weight"), Values: []string{value}},
		}, false)
		require.NoError(t, err)
		owner := attribute.Owner{Type: attribute.EntityProduct, ID: ownerID}
		require.NoError(t, service.Save(context.Background(), owner, cleaned))
	}

	save("prod-1", "10")
	save("prod-2", "10")
	// Same number on two owners stays two rows.
	assert.Equal(t, 2, repo.ValueCount())

	save("prod-1", "12.5")
	// Overwriting reuses the owner's row.
	assert.Equal(t, 2, repo.ValueCount())

	assignments, err := service.Assignments(context.Background(), attribute.Owner{Type: attribute.EntityProduct, ID: "prod-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"12.5"}, valueNames(assignments[0]))
}

/*
TestSave_BooleanSharesRowPerAnswer verifies the boolean natural key: all
owners answering the same way share one row named after the attribute.
*/
func TestSave_BooleanSharesRowPerAnswer(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 5, Name: "Waterproof", Slug: "waterproof", InputType: attribute.InputBoolean})

	save := func(ownerID string, answer bool) {
		cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("waterproof"), Boolean: pointer.To(answer)},
		}, false)
		require.NoError(t, err)
		owner := attribute.Owner{Type: attribute.EntityProduct, ID: ownerID}
		require.NoError(t, service.Save(context.Background(), owner, cleaned))
	}

	save("prod-1", true)
	save("prod-2", true)
	save("prod-3", false)
	assert.Equal(t, 2, repo.ValueCount())

	assignments, err := service.Assignments(context.Background(), attribute.Owner{Type: attribute.EntityProduct, ID: "prod-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Waterproof: Yes"}, valueNames(assignments[0]))
}

/*
TestSave_FileValues verifies the file strategy: same URL on the same owner
reuses the row, new URLs create fresh rows, and colliding file names get
suffixed slugs instead of converging.
*/
func TestSave_FileValues(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Manual", Slug: "manual", InputType: attribute.InputFile})

	save := func(ownerID, url string) {
		cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
			{Slug: pointer.To("manual"), FileURL: pointer.To(url), ContentType: pointer.To("application/pdf")},
		}, false)
		require.NoError(t, err)
		owner := attribute.Owner{Type: attribute.EntityProduct, ID: ownerID}
		require.NoError(t, service.Save(context.Background(), owner, cleaned))
	}

	save("prod-1", "https://cdn.mercata.dev/media/a/spec.pdf")
	save("prod-1", "https://cdn.mercata.dev/media/a/spec.pdf")
	// Re-submitting the identical URL reuses the owner's existing row.
	assert.Equal(t, 1, repo.ValueCount())

	// The same file name under a different URL must not converge: value
	// content differs, so the slug is uniquified instead.
	save("prod-2", "https://cdn.mercata.dev/media/b/spec.pdf")
	assert.Equal(t, 2, repo.ValueCount())

	assignments, err := service.Assignments(context.Background(), attribute.Owner{Type: attribute.EntityProduct, ID: "prod-2"})
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Len(t, assignments[0].Values, 1)
	assert.Equal(t, "spec.pdf", assignments[0].Values[0].Name)
	assert.Equal(t, "spec-pdf-2", assignments[0].Values[0].Slug)
}

/*
TestSave_DateNormalizedToMidnightUTC verifies calendar dates persist as
midnight UTC and date_times are converted to UTC.
*/
func TestSave_DateNormalizedToMidnightUTC(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Release Date", Slug: "release-date", InputType: attribute.InputDate})
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 2, Name: "Drop Time", Slug: "drop-time", InputType: attribute.InputDateTime})

	date := &attribute.Date{Time: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}
	offset := time.FixedZone("UTC+7", 7*3600)
	moment := time.Date(2026, 3, 14, 9, 30, 0, 0, offset)

	cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("release-date"), Date: date},
		{Slug: pointer.To("drop-time"), DateTime: pointer.To(moment)},
	}, false)
	require.NoError(t, err)

	owner := attribute.Owner{Type: attribute.EntityProduct, ID: "prod-1"}
	require.NoError(t, service.Save(context.Background(), owner, cleaned))

	assignments, err := service.Assignments(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, assignments, 2)

	stored := assignments[0].Values[0]
	require.NotNil(t, stored.DateTime)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *stored.DateTime)
	assert.Equal(t, "2026-03-14", stored.Name)

	stored = assignments[1].Values[0]
	require.NotNil(t, stored.DateTime)
	assert.Equal(t, time.UTC, stored.DateTime.Location())
	assert.True(t, stored.DateTime.Equal(moment))
}

/*
TestSave_PlainTextNameTruncated verifies that long text derives a capped
display name while keeping the full payload.
*/
func TestSave_PlainTextNameTruncated(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Notes", Slug: "notes", InputType: attribute.InputPlainText})

	long := strings.Repeat("a", 300)
	cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("notes"), PlainText: pointer.To(long)},
	}, false)
	require.NoError(t, err)

	owner := attribute.Owner{Type: attribute.EntityProduct, ID: "prod-1"}
	require.NoError(t, service.Save(context.Background(), owner, cleaned))

	assignments, err := service.Assignments(context.Background(), owner)
	require.NoError(t, err)
	stored := assignments[0].Values[0]
	assert.Len(t, stored.Name, attribute.TextNameLength)
	require.NotNil(t, stored.PlainText)
	assert.Len(t, *stored.PlainText, 300)
}

/*
TestClean_RichTextRequired verifies that a document flattening to no
visible text counts as absent for a value-required rich text attribute.
*/
func TestClean_RichTextRequired(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Details", Slug: "details", InputType: attribute.InputRichText, ValueRequired: true})

	blank := &richtext.Document{Blocks: []richtext.Block{
		{Type: "paragraph", Data: richtext.BlockData{Text: "<b> </b>"}},
	}}
	_, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("details"), RichText: blank},
	}, false)

	verrs := attribute.AsErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, attribute.ErrRequired, verrs.Violations()[0].Code)
}

/*
TestSave_RichTextNameTruncated verifies that a long rich text document
stores a capped display name next to the full document payload.
*/
func TestSave_RichTextNameTruncated(t *testing.T) {
	service, repo := newEngine(t)
	repo.SeedAttribute(testScope, &attribute.Attribute{ID: 1, Name: "Details", Slug: "details", InputType: attribute.InputRichText})

	doc := &richtext.Document{Blocks: []richtext.Block{
		{Type: "paragraph", Data: richtext.BlockData{Text: strings.Repeat("b", 300)}},
	}}
	cleaned, err := service.Clean(context.Background(), testScope, []*attribute.AssignInput{
		{Slug: pointer.To("details"), RichText: doc},
	}, false)
	require.NoError(t, err)

	owner := attribute.Owner{Type: attribute.EntityProduct, ID: "prod-1"}
	require.NoError(t, service.Save(context.Background(), owner, cleaned))

	assignments, err := service.Assignments(context.Background(), owner)
	require.NoError(t, err)
	stored := assignments[0].Values[0]
	assert.Len(t, stored.Name, attribute.TextNameLength)
	assert.NotEmpty(t, stored.RichText)
}

// valueNames flattens an assignment's values to their display names.
func valueNames(assignment *attribute.Assignment) []string {
	names := make([]string, 0, len(assignment.Values))
	for _, value := range assignment.Values {
		names = append(names, value.Name)
	}
	return names
}
