package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/benatkinsonstarling/tempus/internal/config"
	"github.com/benatkinsonstarling/tempus/internal/locations"
	"github.com/benatkinsonstarling/tempus/internal/middleware"
	"github.com/benatkinsonstarling/tempus/internal/model"
)

type LocationsHandler struct {
	Store    locations.Store
	validate *validator.Validate
}

func NewLocationsHandler(store ...locations.Store) *LocationsHandler {
	var s locations.Store
	if len(store) > 0 && store[0] != nil {
		s = store[0]
	} else {
		s = locations.NewStore()
	}
	return &LocationsHandler{
		Store:    s,
		validate: validator.New(),
	}
}

// HandleList serves GET /api/locations for the authenticated user.
func (h *LocationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	locs, err := h.Store.List(r.Context(), userID)
	if err != nil {
		config.GetLogger().Errorw("Failed to list saved locations", "userID", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    locs,
		Message: "Success",
	})
}

// HandleSave serves POST /api/locations/save. Saving the same place twice
// is allowed; each save gets its own id.
func (h *LocationsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req model.SaveLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid location: "+err.Error())
		return
	}

	loc, err := h.Store.Save(r.Context(), userID, req)
	if err != nil {
		config.GetLogger().Errorw("Failed to save location", "userID", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSONResponse(w, http.StatusCreated, model.Response{
		Data:    loc,
		Message: "Created",
	})
}

// HandleDelete serves DELETE /api/locations/{id}.
func (h *LocationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	locationID := r.PathValue("id")
	if locationID == "" {
		writeError(w, http.StatusBadRequest, "Missing location id")
		return
	}

	err := h.Store.Delete(r.Context(), userID, locationID)
	if err == locations.ErrNotFound {
		writeError(w, http.StatusNotFound, "Location not found")
		return
	}
	if err != nil {
		config.GetLogger().Errorw("Failed to delete location", "userID", userID, "locationID", locationID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSONResponse(w, http.StatusOK, model.Response{
		Message: "Deleted",
	})
}

// HandleToggleFavorite serves POST /api/locations/{id}/favorite.
func (h *LocationsHandler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	locationID := r.PathValue("id")
	if locationID == "" {
		writeError(w, http.StatusBadRequest, "Missing location id")
		return
	}

	loc, err := h.Store.ToggleFavorite(r.Context(), userID, locationID)
	if err == locations.ErrNotFound {
		writeError(w, http.StatusNotFound, "Location not found")
		return
	}
	if err != nil {
		config.GetLogger().Errorw("Failed to toggle favorite", "userID", userID, "locationID", locationID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    loc,
		Message: "Success",
	})
}
