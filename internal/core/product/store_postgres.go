// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package product

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

func (repository *PostgresRepository) GetType(context context.Context, id int) (*ProductType, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogProductType.ID, schema.CatalogProductType.Name,
		schema.CatalogProductType.Slug, schema.CatalogProductType.CreatedAt,
		schema.CatalogProductType.Table, schema.CatalogProductType.ID)

	productType := &ProductType{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&productType.ID, &productType.Name, &productType.Slug, &productType.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_product_type")
	}
	return productType, nil
}

func (repository *PostgresRepository) ListTypes(context context.Context) ([]*ProductType, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CatalogProductType.ID, schema.CatalogProductType.Name,
		schema.CatalogProductType.Slug, schema.CatalogProductType.CreatedAt,
		schema.CatalogProductType.Table, schema.CatalogProductType.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_product_types")
	}
	defer rows.Close()

	types := make([]*ProductType, 0)
	for rows.Next() {
		productType := &ProductType{}
		if err := rows.Scan(&productType.ID, &productType.Name, &productType.Slug, &productType.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_product_type")
		}
		types = append(types, productType)
	}
	return types, nil
}

func (repository *PostgresRepository) CreateProduct(context context.Context, product *Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		schema.CatalogProduct.Table,
		schema.CatalogProduct.ID, schema.CatalogProduct.TypeID,
		schema.CatalogProduct.Name, schema.CatalogProduct.Slug, schema.CatalogProduct.Description,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		product.ID, product.TypeID, product.Name, product.Slug, product.Description,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_product")
	}
	return nil
}

func (repository *PostgresRepository) GetProduct(context context.Context, id string) (*Product, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogProduct.ID, schema.CatalogProduct.TypeID,
		schema.CatalogProduct.Name, schema.CatalogProduct.Slug, schema.CatalogProduct.Description,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.Table, schema.CatalogProduct.ID)

	product := &Product{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&product.ID, &product.TypeID, &product.Name, &product.Slug, &product.Description,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_product")
	}
	return product, nil
}

func (repository *PostgresRepository) ListProducts(context context.Context, limit, offset int) ([]*Product, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.CatalogProduct.ID, schema.CatalogProduct.TypeID,
		schema.CatalogProduct.Name, schema.CatalogProduct.Slug, schema.CatalogProduct.Description,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.Table, schema.CatalogProduct.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	products := make([]*Product, 0)
	total := 0
	for rows.Next() {
		product := &Product{}
		err := rows.Scan(
			&product.ID, &product.TypeID, &product.Name, &product.Slug, &product.Description,
			&product.CreatedAt, &product.UpdatedAt, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, product)
	}
	return products, total, nil
}

func (repository *PostgresRepository) CreateVariant(context context.Context, variant *Variant) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.CatalogVariant.Table,
		schema.CatalogVariant.ID, schema.CatalogVariant.ProductID,
		schema.CatalogVariant.Name, schema.CatalogVariant.SKU,
		schema.CatalogVariant.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		variant.ID, variant.ProductID, variant.Name, variant.SKU,
	).Scan(&variant.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_variant")
	}
	return nil
}

func (repository *PostgresRepository) GetVariant(context context.Context, id string) (*Variant, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogVariant.ID, schema.CatalogVariant.ProductID,
		schema.CatalogVariant.Name, schema.CatalogVariant.SKU, schema.CatalogVariant.CreatedAt,
		schema.CatalogVariant.Table, schema.CatalogVariant.ID)

	variant := &Variant{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&variant.ID, &variant.ProductID, &variant.Name, &variant.SKU, &variant.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_variant")
	}
	return variant, nil
}

func (repository *PostgresRepository) ListVariants(context context.Context, productID string) ([]*Variant, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.CatalogVariant.ID, schema.CatalogVariant.ProductID,
		schema.CatalogVariant.Name, schema.CatalogVariant.SKU, schema.CatalogVariant.CreatedAt,
		schema.CatalogVariant.Table, schema.CatalogVariant.ProductID, schema.CatalogVariant.CreatedAt)

	rows, err := repository.db.Query(context, query, productID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_variants")
	}
	defer rows.Close()

	variants := make([]*Variant, 0)
	for rows.Next() {
		variant := &Variant{}
		if err := rows.Scan(&variant.ID, &variant.ProductID, &variant.Name, &variant.SKU, &variant.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_variant")
		}
		variants = append(variants, variant)
	}
	return variants, nil
}
