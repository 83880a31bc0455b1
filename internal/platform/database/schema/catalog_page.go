package schema

// CatalogPageTypeTable represents the 'catalog.pagetype' table
type CatalogPageTypeTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// CatalogPageType is the schema definition for catalog.pagetype
var CatalogPageType = CatalogPageTypeTable{
	Table:     "catalog.pagetype",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

// CatalogPageTable represents the 'catalog.page' table
type CatalogPageTable struct {
	Table     string
	ID        string
	TypeID    string
	Title     string
	Slug      string
	CreatedAt string
	UpdatedAt string
}

// CatalogPage is the schema definition for catalog.page
var CatalogPage = CatalogPageTable{
	Table:     "catalog.page",
	ID:        "id",
	TypeID:    "typeid",
	Title:     "title",
	Slug:      "slug",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CatalogPageTable) Columns() []string {
	return []string{t.ID, t.TypeID, t.Title, t.Slug, t.CreatedAt, t.UpdatedAt}
}
