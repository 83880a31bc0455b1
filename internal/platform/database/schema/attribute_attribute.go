package schema

// AttrAttributeTable represents the 'attribute.attribute' table
type AttrAttributeTable struct {
	Table         string
	ID            string
	Name          string
	Slug          string
	InputType     string
	EntityType    string
	ValueRequired string
	CreatedAt     string
}

// AttrAttribute is the schema definition for attribute.attribute
var AttrAttribute = AttrAttributeTable{
	Table:         "attribute.attribute",
	ID:            "id",
	Name:          "name",
	Slug:          "slug",
	InputType:     "inputtype",
	EntityType:    "entitytype",
	ValueRequired: "valuerequired",
	CreatedAt:     "createdat",
}

func (t AttrAttributeTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.InputType, t.EntityType, t.ValueRequired}
}

// AttrScopeTable represents the 'attribute.attributescope' table,
// the junction binding an attribute to the product/variant/page type
// whose instances may carry it.
type AttrScopeTable struct {
	Table       string
	AttributeID string
	ScopeKind   string
	ScopeID     string
}

// AttrScope is the schema definition for attribute.attributescope
var AttrScope = AttrScopeTable{
	Table:       "attribute.attributescope",
	AttributeID: "attributeid",
	ScopeKind:   "scopekind",
	ScopeID:     "scopeid",
}
