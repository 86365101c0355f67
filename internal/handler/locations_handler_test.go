package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/benatkinsonstarling/tempus/internal/locations"
	"github.com/benatkinsonstarling/tempus/internal/middleware"
	"github.com/benatkinsonstarling/tempus/internal/model"
)

type stubVerifier struct {
	userID string
}

func (v *stubVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token != "good-token" {
		return "", middleware.ErrInvalidToken
	}
	return v.userID, nil
}

// locationsTestServer routes the locations endpoints through the auth
// middleware against a miniredis-backed store, mirroring the production
// wiring.
func locationsTestServer(t *testing.T) *http.ServeMux {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	handler := NewLocationsHandler(locations.NewStoreWithClient(client))
	verifier := &stubVerifier{userID: "user-1"}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/locations", middleware.Auth(verifier, handler.HandleList))
	mux.HandleFunc("POST /api/locations/save", middleware.Auth(verifier, handler.HandleSave))
	mux.HandleFunc("DELETE /api/locations/{id}", middleware.Auth(verifier, handler.HandleDelete))
	mux.HandleFunc("POST /api/locations/{id}/favorite", middleware.Auth(verifier, handler.HandleToggleFavorite))
	return mux
}

func doAuthed(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func savedLocationFromResponse(t *testing.T, rr *httptest.ResponseRecorder) model.SavedLocation {
	t.Helper()
	var response struct {
		Data model.SavedLocation `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
	return response.Data
}

func TestLocationsHandler_SaveAndList(t *testing.T) {
	mux := locationsTestServer(t)

	rr := doAuthed(mux, http.MethodPost, "/api/locations/save",
		`{"name": "London", "latitude": 51.51, "longitude": -0.13, "isFavorite": true}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("save status = %d, want 201, body %s", rr.Code, rr.Body.String())
	}
	saved := savedLocationFromResponse(t, rr)
	if saved.ID == "" || saved.Name != "London" {
		t.Errorf("unexpected saved location: %+v", saved)
	}

	rr = doAuthed(mux, http.MethodGet, "/api/locations", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rr.Code)
	}
	var listResponse struct {
		Data []model.SavedLocation `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&listResponse); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
	if len(listResponse.Data) != 1 || listResponse.Data[0].ID != saved.ID {
		t.Errorf("unexpected list: %+v", listResponse.Data)
	}
}

func TestLocationsHandler_Save_Invalid(t *testing.T) {
	mux := locationsTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"Malformed JSON", `{"name": `},
		{"Missing name", `{"latitude": 51.51, "longitude": -0.13}`},
		{"Latitude out of range", `{"name": "Nowhere", "latitude": 95, "longitude": 0}`},
		{"Longitude out of range", `{"name": "Nowhere", "latitude": 0, "longitude": -200}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doAuthed(mux, http.MethodPost, "/api/locations/save", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestLocationsHandler_Delete(t *testing.T) {
	mux := locationsTestServer(t)

	rr := doAuthed(mux, http.MethodPost, "/api/locations/save",
		`{"name": "Berlin", "latitude": 52.52, "longitude": 13.41}`)
	saved := savedLocationFromResponse(t, rr)

	rr = doAuthed(mux, http.MethodDelete, "/api/locations/"+saved.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rr.Code)
	}

	rr = doAuthed(mux, http.MethodDelete, "/api/locations/"+saved.ID, "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rr.Code)
	}
}

func TestLocationsHandler_ToggleFavorite(t *testing.T) {
	mux := locationsTestServer(t)

	rr := doAuthed(mux, http.MethodPost, "/api/locations/save",
		`{"name": "Madrid", "latitude": 40.42, "longitude": -3.70}`)
	saved := savedLocationFromResponse(t, rr)
	if saved.IsFavorite {
		t.Fatal("new location should not start as a favorite")
	}

	rr = doAuthed(mux, http.MethodPost, "/api/locations/"+saved.ID+"/favorite", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("favorite status = %d, want 200", rr.Code)
	}
	if toggled := savedLocationFromResponse(t, rr); !toggled.IsFavorite {
		t.Error("toggle should set the favorite flag")
	}

	rr = doAuthed(mux, http.MethodPost, "/api/locations/no-such-id/favorite", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rr.Code)
	}
}

func TestLocationsHandler_RequiresAuth(t *testing.T) {
	mux := locationsTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("missing token status = %d, want 401", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("invalid token status = %d, want 401", rr.Code)
	}
}
