package handler

import (
	"net/http"
	"strings"

	"github.com/benatkinsonstarling/tempus/internal/config"
	"github.com/benatkinsonstarling/tempus/internal/model"
	"github.com/benatkinsonstarling/tempus/internal/repository"
)

type PlacesHandler struct {
	Places repository.PlacesRepository
}

func NewPlacesHandler(repo ...repository.PlacesRepository) *PlacesHandler {
	var places repository.PlacesRepository
	if len(repo) > 0 && repo[0] != nil {
		places = repo[0]
	} else {
		places = repository.NewPlacesRepository()
	}
	return &PlacesHandler{Places: places}
}

// HandleSearch serves GET /api/places/search?q=. An unreachable places
// provider degrades to an empty option list rather than an error, so
// the search box never breaks.
func (h *PlacesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < 2 {
		writeJSONResponse(w, http.StatusOK, model.Response{
			Data:    []model.PlaceOption{},
			Message: "Success",
		})
		return
	}

	options, err := h.Places.Search(r.Context(), query)
	if err != nil {
		config.GetLogger().Warnw("Places search failed", "query", query, "error", err)
		options = []model.PlaceOption{}
	}

	writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    options,
		Message: "Success",
	})
}

// HandleDetails serves GET /api/places/details?id= with coordinates and
// the UTC offset for a selected place.
func (h *PlacesHandler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("id")
	if placeID == "" {
		writeError(w, http.StatusBadRequest, "Missing 'id' query parameter")
		return
	}

	details, err := h.Places.Details(r.Context(), placeID)
	if err != nil {
		config.GetLogger().Errorw("Place details lookup failed", "placeID", placeID, "error", err)
		writeError(w, http.StatusNotFound, "Place not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    details,
		Message: "Success",
	})
}
