package location

import (
	"net/http"

	"medistay/infras/otel"
	"medistay/internal/domains/location/service"
	"medistay/shared/constant"
	"medistay/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Location
	otel    otel.Otel
}

func New(service service.Location, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/locations", func(routerGroup chi.Router) {
		routerGroup.Get("/search", handler.SearchLocations)
	})
}

// SearchLocations resolves free text into ranked location candidates.
// @Summary Search locations
// @Description Resolve free text into up to ten ranked city/state/country candidates.
// @Tags Location
// @Accept json
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} response.Data[[]model.Candidate] "Ranked candidates"
// @Router /v1/locations/search [get]
func (handler *Handler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchLocations")
	defer scope.End()

	query := r.URL.Query().Get("q")

	candidates := handler.service.Filter(ctx, query)

	scope.AddEvent("Locations resolved successfully")

	response.WithJSON(w, http.StatusOK, candidates)
}
