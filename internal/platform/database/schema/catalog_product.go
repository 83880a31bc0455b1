package schema

// CatalogProductTypeTable represents the 'catalog.producttype' table
type CatalogProductTypeTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// CatalogProductType is the schema definition for catalog.producttype
var CatalogProductType = CatalogProductTypeTable{
	Table:     "catalog.producttype",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table       string
	ID          string
	TypeID      string
	Name        string
	Slug        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:       "catalog.product",
	ID:          "id",
	TypeID:      "typeid",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CatalogProductTable) Columns() []string {
	return []string{t.ID, t.TypeID, t.Name, t.Slug, t.Description, t.CreatedAt, t.UpdatedAt}
}

// CatalogVariantTable represents the 'catalog.variant' table
type CatalogVariantTable struct {
	Table     string
	ID        string
	ProductID string
	Name      string
	SKU       string
	CreatedAt string
}

// CatalogVariant is the schema definition for catalog.variant
var CatalogVariant = CatalogVariantTable{
	Table:     "catalog.variant",
	ID:        "id",
	ProductID: "productid",
	Name:      "name",
	SKU:       "sku",
	CreatedAt: "createdat",
}
