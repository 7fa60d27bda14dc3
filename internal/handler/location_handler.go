package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/tabilog/internal/model"
)

// LocationServiceInterface はロケーションハンドラーが必要とするサービスインターフェース。
type LocationServiceInterface interface {
	List(ctx context.Context) ([]model.Location, error)
	Get(ctx context.Context, id int64) (*model.Location, error)
	Search(ctx context.Context, query, category string) ([]model.Location, error)
}

// LocationHandler はロケーションカタログのHTTPハンドラー。
type LocationHandler struct {
	service LocationServiceInterface
}

// NewLocationHandler はLocationHandlerを生成する。
func NewLocationHandler(service LocationServiceInterface) *LocationHandler {
	return &LocationHandler{service: service}
}

type locationListResponse struct {
	Locations []locationResponse `json:"locations"`
}

// ListLocations はカタログ全件を返す。
// GET /api/locations
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locationListResponse{Locations: toLocationResponses(locs)})
}

// SearchLocations は名前・都市・国の部分一致とカテゴリで絞り込む。
// GET /api/locations/search?q=&type=
func (h *LocationHandler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	locs, err := h.service.Search(r.Context(), q.Get("q"), q.Get("type"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locationListResponse{Locations: toLocationResponses(locs)})
}

// GetLocation は1件のロケーションを返す。
// GET /api/locations/{id}
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	loc, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toLocationResponse(*loc))
}
