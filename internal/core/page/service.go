// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package page

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

func (service *Service) ListTypes(context context.Context) ([]*PageType, error) {
	return service.repo.ListTypes(context)
}

func (service *Service) ListPages(context context.Context, limit, offset int) ([]*Page, int, error) {
	return service.repo.ListPages(context, limit, offset)
}

// CreatePage cleans the attribute payload before the page row exists and
// saves it after, matching the engine's two-call contract.
func (service *Service) CreatePage(context context.Context, input *CreatePageInput) (*Page, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 250)
	validator.Custom(FieldTypeID, input.TypeID <= 0, "Must be a positive type ID")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	pageType, err := service.repo.GetType(context, input.TypeID)
	if err != nil {
		return nil, err
	}

	scope := attribute.Scope{Kind: attribute.ScopePage, TypeID: pageType.ID}
	cleaned, err := service.attributes.Clean(context, scope, input.Attributes, true)
	if err != nil {
		return nil, attributeError(err)
	}

	page := &Page{
		ID:     uuidv7.New(),
		TypeID: pageType.ID,
		Title:  input.Title,
		Slug:   slug.From(input.Title),
	}
	if err := service.repo.CreatePage(context, page); err != nil {
		return nil, err
	}

	owner := attribute.Owner{Type: attribute.EntityPage, ID: page.ID}
	if err := service.attributes.Save(context, owner, cleaned); err != nil {
		return nil, err
	}

	page.Attributes, err = service.attributes.Assignments(context, owner)
	if err != nil {
		return nil, err
	}

	service.logger.Info("page_created",
		slog.String("page_id", page.ID),
		slog.Int("type_id", page.TypeID))
	return page, nil
}

func (service *Service) GetPage(context context.Context, id string) (*Page, error) {
	page, err := service.repo.GetPage(context, id)
	if err != nil {
		return nil, err
	}

	owner := attribute.Owner{Type: attribute.EntityPage, ID: page.ID}
	page.Attributes, err = service.attributes.Assignments(context, owner)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// AssignAttributes replaces attribute values on an existing page.
func (service *Service) AssignAttributes(context context.Context, pageID string, input *AssignAttributesInput) (*Page, error) {
	page, err := service.repo.GetPage(context, pageID)
	if err != nil {
		return nil, err
	}

	scope := attribute.Scope{Kind: attribute.ScopePage, TypeID: page.TypeID}
	cleaned, err := service.attributes.Clean(context, scope, input.Attributes, false)
	if err != nil {
		return nil, attributeError(err)
	}

	owner := attribute.Owner{Type: attribute.EntityPage, ID: page.ID}
	if err := service.attributes.Save(context, owner, cleaned); err != nil {
		return nil, err
	}

	page.Attributes, err = service.attributes.Assignments(context, owner)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func attributeError(err error) error {
	if verrs := attribute.AsErrors(err); verrs != nil {
		return verrs.AppError()
	}
	return err
}
