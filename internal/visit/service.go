// Package visit はユーザーの訪問記録（Visit Ledger）のドメインロジックを提供する。
package visit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/tabilog/internal/model"
	"github.com/hitoshi/tabilog/internal/repository"
	"github.com/hitoshi/tabilog/internal/security"
)

// UpsertInput は訪問記録の作成・更新リクエスト。
// nilのフィールドは「指定なし」を表す。
type UpsertInput struct {
	LocationID int64
	Rating     *int
	Notes      *string
}

// UpsertResult はUpsertの結果。Createdは新規作成された場合にtrue。
type UpsertResult struct {
	Visit   *model.Visit
	Created bool
}

// Service は訪問記録のサービス層。
type Service struct {
	visitRepo    repository.VisitRepository
	locationRepo repository.LocationRepository
	sanitizer    security.NotesSanitizerService
	logger       *slog.Logger
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	visitRepo repository.VisitRepository,
	locationRepo repository.LocationRepository,
	sanitizer security.NotesSanitizerService,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		visitRepo:    visitRepo,
		locationRepo: locationRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

// List はユーザー自身の訪問記録をロケーション付きで返す。
func (s *Service) List(ctx context.Context, userID string) ([]model.VisitWithLocation, error) {
	visits, err := s.visitRepo.ListByUserIDWithLocation(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}

// Upsert は (userID, LocationID) の訪問記録を作成または更新する。
//
// 新規作成には1〜5の評価が必須。既存の記録に対しては、範囲内の評価とnotesのみを更新し、
// 範囲外の評価は無視する。
func (s *Service) Upsert(ctx context.Context, userID string, in UpsertInput) (*UpsertResult, error) {
	loc, err := s.locationRepo.FindByID(ctx, in.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if loc == nil {
		return nil, model.NewLocationNotFoundError(in.LocationID)
	}

	notes := s.sanitizeNotes(in.Notes)

	if in.Rating != nil && model.IsValidRating(*in.Rating) {
		v, created, err := s.visitRepo.UpsertWithRating(ctx, userID, in.LocationID, *in.Rating, notes)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert visit: %w", err)
		}
		s.logger.Info("visit recorded",
			slog.String("user_id", userID),
			slog.Int64("location_id", in.LocationID),
			slog.Int("rating", *in.Rating),
			slog.Bool("created", created),
		)
		return &UpsertResult{Visit: v, Created: created}, nil
	}

	// 評価が無いか範囲外の場合は既存記録の更新のみ。
	v, err := s.visitRepo.UpdateExisting(ctx, userID, in.LocationID, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}
	if v == nil {
		if in.Rating != nil {
			return nil, model.NewInvalidRatingError(*in.Rating)
		}
		return nil, model.NewRatingRequiredError()
	}

	s.logger.Info("visit updated",
		slog.String("user_id", userID),
		slog.Int64("location_id", in.LocationID),
		slog.Bool("rating_ignored", in.Rating != nil),
	)
	return &UpsertResult{Visit: v, Created: false}, nil
}

// Delete はユーザー自身の訪問記録を削除する。
// 存在しない場合と他ユーザーの記録の場合はどちらもVISIT_NOT_FOUNDを返す。
func (s *Service) Delete(ctx context.Context, userID string, visitID int64) error {
	deleted, err := s.visitRepo.DeleteByIDAndUser(ctx, visitID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}
	if !deleted {
		return model.NewVisitNotFoundError(visitID)
	}

	s.logger.Info("visit deleted",
		slog.String("user_id", userID),
		slog.Int64("visit_id", visitID),
	)
	return nil
}

func (s *Service) sanitizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	if s.sanitizer == nil {
		return notes
	}
	cleaned := s.sanitizer.Sanitize(*notes)
	return &cleaned
}
