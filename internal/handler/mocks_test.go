package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hitoshi/tabilog/internal/auth"
	"github.com/hitoshi/tabilog/internal/model"
	"github.com/hitoshi/tabilog/internal/visit"
)

var errNotImplemented = errors.New("not implemented")

// --- AuthServiceInterface ---

type mockAuthService struct {
	registerFn func(ctx context.Context, in auth.RegisterInput) (*auth.Result, error)
	loginFn    func(ctx context.Context, username, password string) (*auth.Result, error)
	profileFn  func(ctx context.Context, userID string) (*model.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, in auth.RegisterInput) (*auth.Result, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, in)
	}
	return nil, errNotImplemented
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*auth.Result, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return nil, errNotImplemented
}

func (m *mockAuthService) Profile(ctx context.Context, userID string) (*model.User, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx, userID)
	}
	return nil, errNotImplemented
}

// --- LocationServiceInterface ---

type mockLocationService struct {
	listFn   func(ctx context.Context) ([]model.Location, error)
	getFn    func(ctx context.Context, id int64) (*model.Location, error)
	searchFn func(ctx context.Context, query, category string) ([]model.Location, error)
}

func (m *mockLocationService) List(ctx context.Context) ([]model.Location, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockLocationService) Get(ctx context.Context, id int64) (*model.Location, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockLocationService) Search(ctx context.Context, query, category string) ([]model.Location, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, category)
	}
	return nil, errNotImplemented
}

// --- RecommendationServiceInterface ---

type mockRecommendationService struct {
	genericFn      func(ctx context.Context, limit int) ([]model.Location, error)
	personalizedFn func(ctx context.Context, userID string, limit int) ([]model.Location, error)
}

func (m *mockRecommendationService) Generic(ctx context.Context, limit int) ([]model.Location, error) {
	if m.genericFn != nil {
		return m.genericFn(ctx, limit)
	}
	return nil, errNotImplemented
}

func (m *mockRecommendationService) Personalized(ctx context.Context, userID string, limit int) ([]model.Location, error) {
	if m.personalizedFn != nil {
		return m.personalizedFn(ctx, userID, limit)
	}
	return nil, errNotImplemented
}

// --- VisitServiceInterface ---

type mockVisitService struct {
	listFn   func(ctx context.Context, userID string) ([]model.VisitWithLocation, error)
	upsertFn func(ctx context.Context, userID string, in visit.UpsertInput) (*visit.UpsertResult, error)
	deleteFn func(ctx context.Context, userID string, visitID int64) error
}

func (m *mockVisitService) List(ctx context.Context, userID string) ([]model.VisitWithLocation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, errNotImplemented
}

func (m *mockVisitService) Upsert(ctx context.Context, userID string, in visit.UpsertInput) (*visit.UpsertResult, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, userID, in)
	}
	return nil, errNotImplemented
}

func (m *mockVisitService) Delete(ctx context.Context, userID string, visitID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, visitID)
	}
	return errNotImplemented
}

// --- HealthChecker ---

type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) PingContext(ctx context.Context) error {
	return m.err
}

// --- MetricsCollector ---

type fakeMetrics struct {
	mu              sync.Mutex
	recommendations map[string]int
	visitOutcomes   map[string]int
	httpRequests    int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		recommendations: make(map[string]int),
		visitOutcomes:   make(map[string]int),
	}
}

func (f *fakeMetrics) RecordHTTPRequest(string, string, int, time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.httpRequests++
}

func (f *fakeMetrics) RecordRecommendations(mode string, _ int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recommendations[mode]++
}

func (f *fakeMetrics) RecordVisitUpsert(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visitOutcomes[outcome]++
}

// --- テストデータ ---

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func sampleLocation(id int64, category model.Category, rating float64) model.Location {
	return model.Location{
		ID:          id,
		Name:        "Location " + string(rune('A'+id-1)),
		City:        "Tokyo",
		Country:     "Japan",
		Description: "sample",
		PriceLevel:  intPtr(2),
		Category:    category,
		Rating:      floatPtr(rating),
		Latitude:    35.68,
		Longitude:   139.76,
	}
}
