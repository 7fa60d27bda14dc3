package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/tabilog/internal/model"
)

// withURLParam はchiのURLパラメータを設定したリクエストを返す。
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestLocationHandler_ListLocations(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{
		listFn: func(context.Context) ([]model.Location, error) {
			return []model.Location{
				sampleLocation(1, model.CategoryNature, 4.5),
				sampleLocation(2, model.CategoryFood, 4.0),
			}, nil
		},
	})

	w := httptest.NewRecorder()
	h.ListLocations(w, httptest.NewRequest(http.MethodGet, "/api/locations", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Locations []map[string]any `json:"locations"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(body.Locations) != 2 {
		t.Fatalf("locations = %d, want 2", len(body.Locations))
	}
	first := body.Locations[0]
	if first["type"] != "nature" {
		t.Errorf("type = %v, want nature", first["type"])
	}
	for _, key := range []string{"id", "name", "city", "country", "description", "price_level", "rating", "latitude", "longitude"} {
		if _, ok := first[key]; !ok {
			t.Errorf("missing field %q", key)
		}
	}
}

func TestLocationHandler_ListLocations_EmptyIsArray(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{
		listFn: func(context.Context) ([]model.Location, error) { return nil, nil },
	})

	w := httptest.NewRecorder()
	h.ListLocations(w, httptest.NewRequest(http.MethodGet, "/api/locations", nil))

	if got := w.Body.String(); got != "{\"locations\":[]}\n" {
		t.Errorf("body = %q, want empty array", got)
	}
}

func TestLocationHandler_SearchLocations_PassesQuery(t *testing.T) {
	var gotQuery, gotType string
	h := NewLocationHandler(&mockLocationService{
		searchFn: func(ctx context.Context, query, category string) ([]model.Location, error) {
			gotQuery, gotType = query, category
			return []model.Location{sampleLocation(3, model.CategoryNightlife, 4.2)}, nil
		},
	})

	w := httptest.NewRecorder()
	h.SearchLocations(w, httptest.NewRequest(http.MethodGet, "/api/locations/search?q=tok&type=nightlife", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotQuery != "tok" || gotType != "nightlife" {
		t.Errorf("search(%q, %q), want (tok, nightlife)", gotQuery, gotType)
	}
}

func TestLocationHandler_SearchLocations_InvalidCategory(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{
		searchFn: func(ctx context.Context, query, category string) ([]model.Location, error) {
			return nil, model.NewInvalidCategoryError(category)
		},
	})

	w := httptest.NewRecorder()
	h.SearchLocations(w, httptest.NewRequest(http.MethodGet, "/api/locations/search?type=beach", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if body := decodeErrorBody(t, w); body.Code != model.ErrCodeInvalidCategory {
		t.Errorf("code = %q, want %q", body.Code, model.ErrCodeInvalidCategory)
	}
}

func TestLocationHandler_GetLocation(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{
		getFn: func(ctx context.Context, id int64) (*model.Location, error) {
			if id != 7 {
				return nil, model.NewLocationNotFoundError(id)
			}
			loc := sampleLocation(7, model.CategoryCulture, 4.8)
			return &loc, nil
		},
	})

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetLocation(w, withURLParam(httptest.NewRequest(http.MethodGet, "/api/locations/7", nil), "id", "7"))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		var body locationResponse
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if body.ID != 7 || body.Type != "culture" {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetLocation(w, withURLParam(httptest.NewRequest(http.MethodGet, "/api/locations/99", nil), "id", "99"))

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	for _, raw := range []string{"abc", "1.5", "0", "-3"} {
		t.Run("invalid id "+raw, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.GetLocation(w, withURLParam(httptest.NewRequest(http.MethodGet, "/api/locations/x", nil), "id", raw))

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if body := decodeErrorBody(t, w); body.Code != model.ErrCodeInvalidID {
				t.Errorf("code = %q, want %q", body.Code, model.ErrCodeInvalidID)
			}
		})
	}
}

func TestLocationHandler_ServiceError_Returns500(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{
		listFn: func(context.Context) ([]model.Location, error) { return nil, errors.New("db down") },
	})

	w := httptest.NewRecorder()
	h.ListLocations(w, httptest.NewRequest(http.MethodGet, "/api/locations", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
