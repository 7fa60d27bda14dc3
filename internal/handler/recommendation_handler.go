package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/hitoshi/tabilog/internal/metrics"
	"github.com/hitoshi/tabilog/internal/model"
	"github.com/hitoshi/tabilog/internal/recommend"
)

// MaxRecommendationLimit はlimitパラメータの上限。
const MaxRecommendationLimit = 50

// RecommendationServiceInterface は推薦ハンドラーが必要とするサービスインターフェース。
// limitが0の場合は既定件数を使う。
type RecommendationServiceInterface interface {
	Generic(ctx context.Context, limit int) ([]model.Location, error)
	Personalized(ctx context.Context, userID string, limit int) ([]model.Location, error)
}

// RecommendationHandler は推薦のHTTPハンドラー。
type RecommendationHandler struct {
	service RecommendationServiceInterface
	metrics metrics.MetricsCollector
}

// NewRecommendationHandler はRecommendationHandlerを生成する。
func NewRecommendationHandler(service RecommendationServiceInterface, mc metrics.MetricsCollector) *RecommendationHandler {
	if mc == nil {
		mc = metrics.NopCollector{}
	}
	return &RecommendationHandler{service: service, metrics: mc}
}

type recommendationResponse struct {
	Recommendations []locationResponse `json:"recommendations"`
}

type personalizedRecommendationResponse struct {
	Recommendations []locationResponse `json:"recommendations"`
	Personalized    bool               `json:"personalized"`
}

// General は未ログインユーザー向けの評価上位を返す。
// GET /api/recommendations?limit=
func (h *RecommendationHandler) General(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	locs, err := h.service.Generic(r.Context(), limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.metrics.RecordRecommendations(string(recommend.ModeGeneric), len(locs))
	writeJSON(w, http.StatusOK, recommendationResponse{Recommendations: toLocationResponses(locs)})
}

// Personalized はログインユーザーの訪問履歴に基づく推薦を返す。
// personalized=true以外が指定された場合は汎用の推薦を返す。
// GET /api/recommendations/personalized?personalized=true|false&limit=
func (h *RecommendationHandler) Personalized(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	usePersonalization := true
	if raw := r.URL.Query().Get("personalized"); raw != "" {
		usePersonalization = strings.EqualFold(raw, "true")
	}

	var (
		locs []model.Location
		err  error
		mode = recommend.ModeGeneric
	)
	if usePersonalization {
		mode = recommend.ModePersonalized
		locs, err = h.service.Personalized(r.Context(), userID, limit)
	} else {
		locs, err = h.service.Generic(r.Context(), limit)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.metrics.RecordRecommendations(string(mode), len(locs))
	writeJSON(w, http.StatusOK, personalizedRecommendationResponse{
		Recommendations: toLocationResponses(locs),
		Personalized:    usePersonalization,
	})
}

// parseLimit はlimitクエリを解析する。未指定は0（既定件数）を返す。
// 0以下は既定件数として扱い、整数でない値と上限超過はINVALID_LIMITにする。
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit > MaxRecommendationLimit {
		handleServiceError(w, model.NewInvalidLimitError(raw, MaxRecommendationLimit))
		return 0, false
	}
	if limit < 0 {
		limit = 0
	}
	return limit, true
}
