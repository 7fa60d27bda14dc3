package recommend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/tabilog/internal/model"
	"github.com/hitoshi/tabilog/internal/repository"
)

// Mode は推薦結果の算出方法を表す。
type Mode string

const (
	ModeGeneric      Mode = "generic"
	ModePersonalized Mode = "personalized"
)

// Engine はストレージからスナップショットを取得して推薦を算出する。
type Engine struct {
	locationRepo repository.LocationRepository
	visitRepo    repository.VisitRepository
	userRepo     repository.UserRepository
	defaultLimit int
	logger       *slog.Logger
}

// NewEngine はEngineの新しいインスタンスを生成する。
// defaultLimitが0以下の場合はDefaultLimitを使う。
func NewEngine(
	locationRepo repository.LocationRepository,
	visitRepo repository.VisitRepository,
	userRepo repository.UserRepository,
	defaultLimit int,
	logger *slog.Logger,
) *Engine {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		locationRepo: locationRepo,
		visitRepo:    visitRepo,
		userRepo:     userRepo,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Generic はカタログ全体の評価上位を返す。
func (e *Engine) Generic(ctx context.Context, limit int) ([]model.Location, error) {
	limit = NormalizeLimit(limit, e.defaultLimit)
	locs, err := e.locationRepo.ListTopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top rated locations: %w", err)
	}
	return locs, nil
}

// Personalized はユーザーの訪問履歴に基づく推薦を返す。
// ユーザーが存在しない場合や訪問記録が無い場合はGenericと同じ結果を返す。
func (e *Engine) Personalized(ctx context.Context, userID string, limit int) ([]model.Location, error) {
	limit = NormalizeLimit(limit, e.defaultLimit)

	user, err := e.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		e.logger.Debug("recommendation fallback to generic", slog.String("user_id", userID), slog.String("reason", "unknown user"))
		return e.Generic(ctx, limit)
	}

	visits, err := e.visitRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	if len(visits) == 0 {
		e.logger.Debug("recommendation fallback to generic", slog.String("user_id", userID), slog.String("reason", "no visits"))
		return e.Generic(ctx, limit)
	}

	catalog, err := e.locationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return Personalize(catalog, visits, limit), nil
}
