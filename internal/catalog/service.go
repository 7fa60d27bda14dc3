// Package catalog はロケーションカタログの参照ロジックを提供する。
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/hitoshi/tabilog/internal/model"
	"github.com/hitoshi/tabilog/internal/repository"
)

// Service はロケーションカタログのサービス層。
type Service struct {
	locationRepo repository.LocationRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(locationRepo repository.LocationRepository) *Service {
	return &Service{locationRepo: locationRepo}
}

// List は全ロケーションをカタログ順で返す。
func (s *Service) List(ctx context.Context) ([]model.Location, error) {
	locs, err := s.locationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locs, nil
}

// Get は指定IDのロケーションを返す。存在しない場合はLOCATION_NOT_FOUNDを返す。
func (s *Service) Get(ctx context.Context, id int64) (*model.Location, error) {
	loc, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if loc == nil {
		return nil, model.NewLocationNotFoundError(id)
	}
	return loc, nil
}

// Search は名前・都市・国への部分一致とカテゴリで絞り込んだロケーションを返す。
// 空のqueryはテキスト条件なし、空のcategoryはカテゴリ条件なしとして扱う。
// 未定義のカテゴリはINVALID_CATEGORYを返す。
func (s *Service) Search(ctx context.Context, query, category string) ([]model.Location, error) {
	query = strings.TrimSpace(query)
	cat := model.Category(strings.TrimSpace(category))
	if cat != "" && !cat.IsValid() {
		return nil, model.NewInvalidCategoryError(category)
	}

	locs, err := s.locationRepo.Search(ctx, query, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	return locs, nil
}
