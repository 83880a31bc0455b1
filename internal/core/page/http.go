package page

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

// Routes returns the page domain's endpoints. Reads are public; mutations
// require the editor role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/types", handler.listTypes)
	router.Get("/", handler.listPages)
	router.Get("/{id}", handler.getPage)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(constants.RoleEditor))

		editor.Post("/", handler.createPage)
		editor.Put("/{id}/attributes", handler.assignAttributes)
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

func (handler *Handler) listPages(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	pages, total, err := handler.service.ListPages(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, pages, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) createPage(writer http.ResponseWriter, request *http.Request) {
	input := &CreatePageInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.CreatePage(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, page)
}

func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.GetPage(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) assignAttributes(writer http.ResponseWriter, request *http.Request) {
	input := &AssignAttributesInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.AssignAttributes(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}
