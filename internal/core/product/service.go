// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package product

import (
	"context"
	"log/slog"

	"github.com/quangdam/mercata/internal/core/attribute"
	"github.com/quangdam/mercata/internal/platform/validate"
	"github.com/quangdam/mercata/pkg/slug"
	"github.com/quangdam/mercata/pkg/uuidv7"
)

type Service struct {
	repo       Repository
	attributes *attribute.Service
	logger     *slog.Logger
}

func NewService(repo Repository, attributes *attribute.Service, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		attributes: attributes,
		logger:     logger,
	}
}

func (service *Service) ListTypes(context context.Context) ([]*ProductType, error) {
	return service.repo.ListTypes(context)
}

func (service *Service) ListProducts(context context.Context, limit, offset int) ([]*Product, int, error) {
	return service.repo.ListProducts(context, limit, offset)
}

// CreateProduct validates the payload, runs the attribute engine's Clean
// against the product type's scope, persists the product, and only then
// saves the cleaned attributes. A validation failure therefore never
// leaves a half-created product behind.
func (service *Service) CreateProduct(context context.Context, input *CreateProductInput) (*Product, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 250)
	validator.Custom(FieldTypeID, input.TypeID <= 0, "Must be a positive type ID")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	productType, err := service.repo.GetType(context, input.TypeID)
	if err != nil {
		return nil, err
	}

	scope := attribute.Scope{Kind: attribute.ScopeProduct, TypeID: productType.ID}
	cleaned, err := service.attributes.Clean(context, scope, input.Attributes, true)
	if err != nil {
		return nil, attributeError(err)
	}

	product := &Product{
		ID:          uuidv7.New(),
		TypeID:      productType.ID,
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
	}
	if err := service.repo.CreateProduct(context, product); err != nil {
		return nil, err
	}

	owner := attribute.Owner{Type: attribute.EntityProduct, ID: product.ID}
	if err := service.attributes.Save(context, owner, cleaned); err != nil {
		return nil, err
	}

	product.Attributes, err = service.attributes.Assignments(context, owner)
	if err != nil {
		return nil, err
	}

	service.logger.Info("product_created",
		slog.String("product_id", product.ID),
		slog.Int("type_id", product.TypeID))
	return product, nil
}

func (service *Service) GetProduct(context context.Context, id string) (*Product, error) {
	product, err := service.repo.GetProduct(context, id)
	if err != nil {
		return nil, err
	}

	owner := attribute.Owner{Type: attribute.EntityProduct, ID: product.ID}
	product.Attributes, err = service.attributes.Assignments(context, owner)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// AssignProductAttributes replaces attribute values on an existing product.
// Attributes absent from the payload keep their current values; an
// attribute present with an empty value has its assignment cleared.
func (service *Service) AssignProductAttributes(context context.Context, productID string, input *AssignAttributesInput) (*Product, error) {
	product, err := service.repo.GetProduct(context, productID)
	if err != nil {
		return nil, err
	}

	scope := attribute.Scope{Kind: attribute.ScopeProduct, TypeID: product.TypeID}
	cleaned, err := service.attributes.Clean(context, scope, input.Attributes, false)
	if err != nil {
		return nil, attributeError(err)
	}

	owner := attribute.Owner{Type: attribute.EntityProduct, ID: product.ID}
	if err := service.attributes.Save(context, owner, cleaned); err != nil {
		return nil, err
	}

	product.Attributes, err = service.attributes.Assignments(context, owner)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// CreateVariant mirrors CreateProduct for the variant scope of the
// product's type.
func (service *Service) CreateVariant(context context.Context, productID string, input *CreateVariantInput) (*Variant, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 250)
	validator.Required(FieldSKU, input.SKU).MaxLen(FieldSKU, input.SKU, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	product, err := service.repo.GetProduct(context, productID)
	if err != nil {
		return nil, err
	}

	scope := attribute.Scope{Kind: attribute.ScopeVariant, TypeID: product.TypeID}
	cleaned, err := service.attributes.Clean(context, scope, input.Attributes, true)
	if err != nil {
		return nil, attributeError(err)
	}

	variant := &Variant{
		ID:        uuidv7.New(),
		ProductID: product.ID,
		Name:      input.Name,
		SKU:       input.SKU,
	}
	if err := service.repo.CreateVariant(context, variant); err != nil {
		return nil, err
	}

	owner := attribute.Owner{Type: attribute.EntityVariant, ID: variant.ID}
	if err := service.attributes.Save(context, owner, cleaned); err != nil {
		return nil, err
	}

	variant.Attributes, err = service.attributes.Assignments(context, owner)
	if err != nil {
		return nil, err
	}

	service.logger.Info("variant_created",
		slog.String("variant_id", variant.ID),
		slog.String("product_id", product.ID))
	return variant, nil
}

func (service *Service) GetVariant(context context.Context, id string) (*Variant, error) {
	variant, err := service.repo.GetVariant(context, id)
	if err != nil {
		return nil, err
	}

	owner := attribute.Owner{Type: attribute.EntityVariant, ID: variant.ID}
	variant.Attributes, err = service.attributes.Assignments(context, owner)
	if err != nil {
		return nil, err
	}
	return variant, nil
}

func (service *Service) ListVariants(context context.Context, productID string) ([]*Variant, error) {
	return service.repo.ListVariants(context, productID)
}

// AssignVariantAttributes replaces attribute values on an existing variant.
func (service *Service) AssignVariantAttributes(context context.Context, variantID string, input *AssignAttributesInput) (*Variant, error) {
	variant, err := service.repo.GetVariant(context, variantID)
	if err != nil {
		return nil, err
	}

	product, err := service.repo.GetProduct(context, variant.ProductID)
	if err != nil {
		return nil, err
	}

	scope := attribute.Scope{Kind: attribute.ScopeVariant, TypeID: product.TypeID}
	cleaned, err := service.attributes.Clean(context, scope, input.Attributes, false)
	if err != nil {
		return nil, attributeError(err)
	}

	owner := attribute.Owner{Type: attribute.EntityVariant, ID: variant.ID}
	if err := service.attributes.Save(context, owner, cleaned); err != nil {
		return nil, err
	}

	variant.Attributes, err = service.attributes.Assignments(context, owner)
	if err != nil {
		return nil, err
	}
	return variant, nil
}

// attributeError maps the engine's accumulator onto the API error shape,
// passing other errors through untouched.
func attributeError(err error) error {
	if verrs := attribute.AsErrors(err); verrs != nil {
		return verrs.AppError()
	}
	return err
}
