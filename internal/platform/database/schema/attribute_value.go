package schema

// AttrValueTable represents the 'attribute.value' table.
//
// One payload column is populated per row, matching the owning attribute's
// input type. The UNIQUE (attributeid, slug) constraint is the engine's
// concurrency-safety mechanism for get-or-create.
type AttrValueTable struct {
	Table       string
	ID          string
	AttributeID string
	Name        string
	Slug        string
	FileURL     string
	ContentType string
	PlainText   string
	RichText    string
	Boolean     string
	DateTime    string
	RefType     string
	RefID       string
	CreatedAt   string
}

// AttrValue is the schema definition for attribute.value
var AttrValue = AttrValueTable{
	Table:       "attribute.value",
	ID:          "id",
	AttributeID: "attributeid",
	Name:        "name",
	Slug:        "slug",
	FileURL:     "fileurl",
	ContentType: "contenttype",
	PlainText:   "plaintext",
	RichText:    "richtext",
	Boolean:     "boolean",
	DateTime:    "datetime",
	RefType:     "reftype",
	RefID:       "refid",
	CreatedAt:   "createdat",
}

func (t AttrValueTable) Columns() []string {
	return []string{
		t.ID, t.AttributeID, t.Name, t.Slug,
		t.FileURL, t.ContentType, t.PlainText, t.RichText,
		t.Boolean, t.DateTime, t.RefType, t.RefID,
	}
}
