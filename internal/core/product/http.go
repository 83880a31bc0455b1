package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quangdam/mercata/internal/platform/constants"
	"github.com/quangdam/mercata/internal/platform/middleware"
	requestutil "github.com/quangdam/mercata/internal/platform/request"
	"github.com/quangdam/mercata/internal/platform/respond"
	"github.com/quangdam/mercata/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the product domain's endpoints. Reads are public;
// mutations require the editor role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/types", handler.listTypes)
	router.Get("/", handler.listProducts)
	router.Get("/{id}", handler.getProduct)
	router.Get("/{id}/variants", handler.listVariants)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(constants.RoleEditor))

		editor.Post("/", handler.createProduct)
		editor.Put("/{id}/attributes", handler.assignProductAttributes)
		editor.Post("/{id}/variants", handler.createVariant)
	})

	return router
}

// VariantRoutes returns the variant-addressed endpoints, mounted under
// their own prefix since variants have global IDs of their own.
func (handler *Handler) VariantRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", handler.getVariant)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(constants.RoleEditor))

		editor.Put("/{id}/attributes", handler.assignVariantAttributes)
	})

	return router
}

func (handler *Handler) listTypes(writer http.ResponseWriter, request *http.Request) {
	types, err := handler.service.ListTypes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, types)
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	products, total, err := handler.service.ListProducts(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, products, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	input := &CreateProductInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.CreateProduct(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, product)
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.GetProduct(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

func (handler *Handler) assignProductAttributes(writer http.ResponseWriter, request *http.Request) {
	input := &AssignAttributesInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.AssignProductAttributes(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

func (handler *Handler) createVariant(writer http.ResponseWriter, request *http.Request) {
	input := &CreateVariantInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	variant, err := handler.service.CreateVariant(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, variant)
}

func (handler *Handler) listVariants(writer http.ResponseWriter, request *http.Request) {
	variants, err := handler.service.ListVariants(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, variants)
}

func (handler *Handler) getVariant(writer http.ResponseWriter, request *http.Request) {
	variant, err := handler.service.GetVariant(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, variant)
}

func (handler *Handler) assignVariantAttributes(writer http.ResponseWriter, request *http.Request) {
	input := &AssignAttributesInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	variant, err := handler.service.AssignVariantAttributes(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, variant)
}
