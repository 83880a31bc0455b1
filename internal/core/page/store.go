package page

import "context"

// Repository defines storage operations for page types and pages.
type Repository interface {
	GetType(ctx context.Context, id int) (*PageType, error)
	ListTypes(ctx context.Context) ([]*PageType, error)

	CreatePage(ctx context.Context, page *Page) error
	GetPage(ctx context.Context, id string) (*Page, error)
	ListPages(ctx context.Context, limit, offset int) ([]*Page, int, error)
}
