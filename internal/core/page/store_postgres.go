// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package page

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quangdam/mercata/internal/platform/database/schema"
	"github.com/quangdam/mercata/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetType(context context.Context, id int) (*PageType, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogPageType.ID, schema.CatalogPageType.Name,
		schema.CatalogPageType.Slug, schema.CatalogPageType.CreatedAt,
		schema.CatalogPageType.Table, schema.CatalogPageType.ID)

	pageType := &PageType{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&pageType.ID, &pageType.Name, &pageType.Slug, &pageType.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_page_type")
	}
	return pageType, nil
}

func (repository *PostgresRepository) ListTypes(context context.Context) ([]*PageType, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CatalogPageType.ID, schema.CatalogPageType.Name,
		schema.CatalogPageType.Slug, schema.CatalogPageType.CreatedAt,
		schema.CatalogPageType.Table, schema.CatalogPageType.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_page_types")
	}
	defer rows.Close()

	types := make([]*PageType, 0)
	for rows.Next() {
		pageType := &PageType{}
		if err := rows.Scan(&pageType.ID, &pageType.Name, &pageType.Slug, &pageType.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_page_type")
		}
		types = append(types, pageType)
	}
	return types, nil
}

func (repository *PostgresRepository) CreatePage(context context.Context, page *Page) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.CatalogPage.Table,
		schema.CatalogPage.ID, schema.CatalogPage.TypeID,
		schema.CatalogPage.Title, schema.CatalogPage.Slug,
		schema.CatalogPage.CreatedAt, schema.CatalogPage.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		page.ID, page.TypeID, page.Title, page.Slug,
	).Scan(&page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_page")
	}
	return nil
}

func (repository *PostgresRepository) GetPage(context context.Context, id string) (*Page, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogPage.ID, schema.CatalogPage.TypeID,
		schema.CatalogPage.Title, schema.CatalogPage.Slug,
		schema.CatalogPage.CreatedAt, schema.CatalogPage.UpdatedAt,
		schema.CatalogPage.Table, schema.CatalogPage.ID)

	page := &Page{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&page.ID, &page.TypeID, &page.Title, &page.Slug, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_page")
	}
	return page, nil
}

func (repository *PostgresRepository) ListPages(context context.Context, limit, offset int) ([]*Page, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.CatalogPage.ID, schema.CatalogPage.TypeID,
		schema.CatalogPage.Title, schema.CatalogPage.Slug,
		schema.CatalogPage.CreatedAt, schema.CatalogPage.UpdatedAt,
		schema.CatalogPage.Table, schema.CatalogPage.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_pages")
	}
	defer rows.Close()

	pages := make([]*Page, 0)
	total := 0
	for rows.Next() {
		page := &Page{}
		err := rows.Scan(&page.ID, &page.TypeID, &page.Title, &page.Slug,
			&page.CreatedAt, &page.UpdatedAt, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_page")
		}
		pages = append(pages, page)
	}
	return pages, total, nil
}
