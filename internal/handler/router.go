package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hitoshi/tabilog/internal/auth"
	"github.com/hitoshi/tabilog/internal/catalog"
	"github.com/hitoshi/tabilog/internal/metrics"
	"github.com/hitoshi/tabilog/internal/middleware"
	"github.com/hitoshi/tabilog/internal/recommend"
	"github.com/hitoshi/tabilog/internal/visit"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	Logger *slog.Logger

	// ミドルウェア依存
	TokenVerifier      middleware.TokenVerifier
	CORSAllowedOrigins []string
	RateLimiter        *middleware.RateLimiter

	// 運用
	Metrics        metrics.MetricsCollector
	MetricsHandler http.Handler
	HealthChecker  HealthChecker

	// ドメインサービス
	AuthService           AuthServiceInterface
	LocationService       LocationServiceInterface
	RecommendationService RecommendationServiceInterface
	VisitService          VisitServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// 全ルート共通のミドルウェアの実行順序:
//
//	RequestID → RealIP → Recovery → Metrics → Logging → SecurityHeaders → CORS → StripSlashes
//
// 認証が必要なルートには Auth → RateLimit(General) を追加し、
// 登録・ログインには RateLimit(Auth) を追加する。
func NewRouter(deps *RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mc := deps.Metrics
	if mc == nil {
		mc = metrics.NopCollector{}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewRecoveryMiddleware(logger))
	r.Use(middleware.NewMetricsMiddleware(mc))
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigins))
	r.Use(chimw.StripSlashes)

	authHandler := NewAuthHandler(deps.AuthService)
	locationHandler := NewLocationHandler(deps.LocationService)
	recHandler := NewRecommendationHandler(deps.RecommendationService, mc)
	visitHandler := NewVisitHandler(deps.VisitService, mc)
	healthHandler := NewHealthHandler(deps.HealthChecker)

	requireAuth := middleware.NewAuthMiddleware(deps.TokenVerifier)

	// --- 運用エンドポイント ---
	r.Get("/health", healthHandler.Health)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		// 認証
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(deps.RateLimiter.AuthMiddleware())
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
			})
			r.With(requireAuth, deps.RateLimiter.GeneralMiddleware()).Get("/profile", authHandler.Profile)
		})

		// ロケーションカタログ（認証不要）
		r.Route("/locations", func(r chi.Router) {
			r.Get("/", locationHandler.ListLocations)
			r.Get("/search", locationHandler.SearchLocations)
			r.Get("/{id}", locationHandler.GetLocation)
		})

		// 推薦
		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/", recHandler.General)
			r.With(requireAuth, deps.RateLimiter.GeneralMiddleware()).Get("/personalized", recHandler.Personalized)
		})

		// 訪問記録
		r.Route("/visits", func(r chi.Router) {
			r.Use(requireAuth)
			r.Use(deps.RateLimiter.GeneralMiddleware())
			r.Get("/", visitHandler.ListVisits)
			r.Post("/", visitHandler.UpsertVisit)
			r.Delete("/{id}", visitHandler.DeleteVisit)
		})
	})

	return r
}

// --- compile-time interface checks ---

var (
	_ AuthServiceInterface           = (*auth.Service)(nil)
	_ middleware.TokenVerifier       = (*auth.Service)(nil)
	_ LocationServiceInterface       = (*catalog.Service)(nil)
	_ RecommendationServiceInterface = (*recommend.Engine)(nil)
	_ VisitServiceInterface          = (*visit.Service)(nil)
)
