package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/tabilog/internal/model"
)

func TestRecommendationHandler_General(t *testing.T) {
	var gotLimit int
	mc := newFakeMetrics()
	h := NewRecommendationHandler(&mockRecommendationService{
		genericFn: func(ctx context.Context, limit int) ([]model.Location, error) {
			gotLimit = limit
			return []model.Location{sampleLocation(1, model.CategoryNature, 4.9)}, nil
		},
	}, mc)

	w := httptest.NewRecorder()
	h.General(w, httptest.NewRequest(http.MethodGet, "/api/recommendations?limit=3", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotLimit != 3 {
		t.Errorf("limit = %d, want 3", gotLimit)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if _, ok := body["recommendations"]; !ok {
		t.Error("missing recommendations field")
	}
	if _, ok := body["personalized"]; ok {
		t.Error("general recommendations should not carry personalized flag")
	}
	if mc.recommendations["generic"] != 1 {
		t.Errorf("generic metric = %d, want 1", mc.recommendations["generic"])
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw       string
		wantLimit int
		wantOK    bool
	}{
		{"", 0, true},
		{"1", 1, true},
		{"50", 50, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"51", 0, false},
		{"abc", 0, false},
		{"2.5", 0, false},
	}

	for _, tt := range tests {
		t.Run("limit="+tt.raw, func(t *testing.T) {
			w := httptest.NewRecorder()
			limit, ok := parseLimit(w, httptest.NewRequest(http.MethodGet, "/?limit="+tt.raw, nil))

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", limit, tt.wantLimit)
			}
			if !ok {
				if w.Code != http.StatusBadRequest {
					t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
				}
				if body := decodeErrorBody(t, w); body.Code != model.ErrCodeInvalidLimit {
					t.Errorf("code = %q, want %q", body.Code, model.ErrCodeInvalidLimit)
				}
			}
		})
	}
}

func TestRecommendationHandler_Personalized_DefaultsToPersonalized(t *testing.T) {
	mc := newFakeMetrics()
	h := NewRecommendationHandler(&mockRecommendationService{
		personalizedFn: func(ctx context.Context, userID string, limit int) ([]model.Location, error) {
			if userID != testUserID {
				t.Errorf("userID = %q", userID)
			}
			return []model.Location{sampleLocation(4, model.CategoryNightlife, 4.1)}, nil
		},
		genericFn: func(context.Context, int) ([]model.Location, error) {
			t.Error("generic should not be called")
			return nil, nil
		},
	}, mc)

	w := httptest.NewRecorder()
	h.Personalized(w, authedRequest(http.MethodGet, "/api/recommendations/personalized", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var body personalizedRecommendationResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !body.Personalized {
		t.Error("personalized = false, want true")
	}
	if len(body.Recommendations) != 1 || body.Recommendations[0].ID != 4 {
		t.Errorf("recommendations = %+v", body.Recommendations)
	}
	if mc.recommendations["personalized"] != 1 {
		t.Errorf("personalized metric = %d, want 1", mc.recommendations["personalized"])
	}
}

func TestRecommendationHandler_Personalized_Disabled(t *testing.T) {
	for _, raw := range []string{"false", "no", "0"} {
		t.Run(raw, func(t *testing.T) {
			genericCalled := false
			h := NewRecommendationHandler(&mockRecommendationService{
				genericFn: func(context.Context, int) ([]model.Location, error) {
					genericCalled = true
					return nil, nil
				},
				personalizedFn: func(context.Context, string, int) ([]model.Location, error) {
					t.Error("personalized should not be called")
					return nil, nil
				},
			}, nil)

			w := httptest.NewRecorder()
			h.Personalized(w, authedRequest(http.MethodGet, "/api/recommendations/personalized?personalized="+raw, ""))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if !genericCalled {
				t.Error("generic should be called")
			}
			var body personalizedRecommendationResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if body.Personalized {
				t.Error("personalized = true, want false")
			}
			if body.Recommendations == nil {
				t.Error("recommendations should be an empty array, not null")
			}
		})
	}
}

func TestRecommendationHandler_Personalized_CaseInsensitiveTrue(t *testing.T) {
	called := false
	h := NewRecommendationHandler(&mockRecommendationService{
		personalizedFn: func(context.Context, string, int) ([]model.Location, error) {
			called = true
			return nil, nil
		},
	}, nil)

	w := httptest.NewRecorder()
	h.Personalized(w, authedRequest(http.MethodGet, "/api/recommendations/personalized?personalized=TRUE", ""))

	if !called {
		t.Error("personalized should be called for TRUE")
	}
}

func TestRecommendationHandler_Personalized_InvalidLimit(t *testing.T) {
	h := NewRecommendationHandler(&mockRecommendationService{}, nil)

	w := httptest.NewRecorder()
	h.Personalized(w, authedRequest(http.MethodGet, "/api/recommendations/personalized?limit=100", ""))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRecommendationHandler_Personalized_NoUser(t *testing.T) {
	h := NewRecommendationHandler(&mockRecommendationService{}, nil)

	w := httptest.NewRecorder()
	h.Personalized(w, httptest.NewRequest(http.MethodGet, "/api/recommendations/personalized", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
