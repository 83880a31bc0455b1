package product

import "context"

// Repository defines storage operations for product types, products, and
// variants. Attribute persistence is not here; it goes through the
// attribute engine's own repository.
type Repository interface {
	GetType(ctx context.Context, id int) (*ProductType, error)
	ListTypes(ctx context.Context) ([]*ProductType, error)

	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]*Product, int, error)

	CreateVariant(ctx context.Context, variant *Variant) error
	GetVariant(ctx context.Context, id string) (*Variant, error)
	ListVariants(ctx context.Context, productID string) ([]*Variant, error)
}
