package attribute

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quangdam/mercata/internal/platform/apperr"
	requestutil "github.com/quangdam/mercata/internal/platform/request"
	"github.com/quangdam/mercata/internal/platform/respond"
	"github.com/quangdam/mercata/pkg/convert"
	"github.com/quangdam/mercata/pkg/query"
	"github.com/quangdam/mercata/pkg/slice"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the attribute schema endpoints. All reads are public.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/scopes/{kind}/{typeID}", handler.listForScope)
	return router
}

// listForScope returns the attribute definitions assignable within one
// scope, identified by its kind and the owning product/page type ID.
// An optional ?slugs=a,b,c parameter narrows the result.
func (handler *Handler) listForScope(writer http.ResponseWriter, request *http.Request) {
	kind := ScopeKind(requestutil.Param(request, "kind"))
	switch kind {
	case ScopeProduct, ScopeVariant, ScopePage:
	default:
		respond.Error(writer, request, apperr.Unprocessable("Unknown scope kind"))
		return
	}

	typeID := convert.ToInt(requestutil.Param(request, "typeID"))
	if typeID <= 0 {
		respond.Error(writer, request, apperr.Unprocessable("Scope type ID must be a positive integer"))
		return
	}

	attributes, err := handler.service.ListForScope(request.Context(), Scope{Kind: kind, TypeID: typeID})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if slugs := query.StringSlice(request.URL.Query().Get("slugs")); len(slugs) > 0 {
		wanted := make(map[string]bool, len(slugs))
		for _, s := range slugs {
			wanted[s] = true
		}
		attributes = slice.Filter(attributes, func(attr *Attribute) bool {
			return wanted[attr.Slug]
		})
	}

	respond.OK(writer, attributes)
}
