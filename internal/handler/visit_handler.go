package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/hitoshi/tabilog/internal/metrics"
	"github.com/hitoshi/tabilog/internal/model"
	"github.com/hitoshi/tabilog/internal/visit"
)

// VisitServiceInterface は訪問記録ハンドラーが必要とするサービスインターフェース。
type VisitServiceInterface interface {
	List(ctx context.Context, userID string) ([]model.VisitWithLocation, error)
	Upsert(ctx context.Context, userID string, in visit.UpsertInput) (*visit.UpsertResult, error)
	Delete(ctx context.Context, userID string, visitID int64) error
}

// VisitHandler は訪問記録のHTTPハンドラー。
type VisitHandler struct {
	service VisitServiceInterface
	metrics metrics.MetricsCollector
}

// NewVisitHandler はVisitHandlerを生成する。
func NewVisitHandler(service VisitServiceInterface, mc metrics.MetricsCollector) *VisitHandler {
	if mc == nil {
		mc = metrics.NopCollector{}
	}
	return &VisitHandler{service: service, metrics: mc}
}

// upsertVisitRequest は訪問記録の作成・更新リクエストのボディ。
// location_idはJSONの整数でなければデコード段階で拒否される。
// ratingの範囲は新規か更新かで扱いが変わるためサービス層で判定する。
type upsertVisitRequest struct {
	LocationID *int64  `json:"location_id" validate:"required,gt=0"`
	Rating     *int    `json:"rating"`
	Notes      *string `json:"notes"`
}

type visitListResponse struct {
	Visits []visitWithLocationResponse `json:"visits"`
}

type visitMutationResponse struct {
	Message string        `json:"message"`
	Visit   visitResponse `json:"visit"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListVisits はユーザー自身の訪問記録をロケーション付きで返す。
// GET /api/visits
func (h *VisitHandler) ListVisits(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	visits, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	out := make([]visitWithLocationResponse, len(visits))
	for i, v := range visits {
		out[i] = toVisitWithLocationResponse(v)
	}
	writeJSON(w, http.StatusOK, visitListResponse{Visits: out})
}

// UpsertVisit は訪問記録を作成または更新する。新規は201、更新は200を返す。
// POST /api/visits
func (h *VisitHandler) UpsertVisit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req upsertVisitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.service.Upsert(r.Context(), userID, visit.UpsertInput{
		LocationID: *req.LocationID,
		Rating:     req.Rating,
		Notes:      req.Notes,
	})
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) {
			h.metrics.RecordVisitUpsert(metrics.VisitOutcomeRejected)
		}
		handleServiceError(w, err)
		return
	}

	if res.Created {
		h.metrics.RecordVisitUpsert(metrics.VisitOutcomeCreated)
		writeJSON(w, http.StatusCreated, visitMutationResponse{Message: "Visit added", Visit: toVisitResponse(*res.Visit)})
		return
	}
	h.metrics.RecordVisitUpsert(metrics.VisitOutcomeUpdated)
	writeJSON(w, http.StatusOK, visitMutationResponse{Message: "Visit updated", Visit: toVisitResponse(*res.Visit)})
}

// DeleteVisit はユーザー自身の訪問記録を削除する。
// DELETE /api/visits/{id}
func (h *VisitHandler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	visitID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, visitID); err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Visit deleted"})
}
