// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/tabilog/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByUsername はユーザー名でユーザーを検索する。見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Create はユーザーを作成する。IDは呼び出し側で採番し、CreatedAtはuserに書き戻される。
	// ユーザー名またはメールアドレスが重複する場合はConflictのAPIErrorを返す。
	Create(ctx context.Context, user *model.User) error
}

// LocationRepository はロケーションカタログの読み出しインターフェース。
type LocationRepository interface {
	// ListAll は全ロケーションをカタログ順（ID昇順）で返す。
	ListAll(ctx context.Context) ([]model.Location, error)

	// FindByID は指定IDのロケーションを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Location, error)

	// Search は名前・都市・国のいずれかに部分一致（大文字小文字を区別しない）するロケーションを返す。
	// queryが空の場合はテキスト条件なし、categoryが空の場合はカテゴリ条件なし。
	Search(ctx context.Context, query string, category model.Category) ([]model.Location, error)

	// ListTopRated は評価の高い順（NULLは最後、同点はID昇順）に最大limit件を返す。
	ListTopRated(ctx context.Context, limit int) ([]model.Location, error)

	// CreateIfNotExists は同名のロケーションが無い場合のみ作成する。
	// 作成した場合はtrueを返し、loc.IDに採番されたIDを書き戻す。
	CreateIfNotExists(ctx context.Context, loc *model.Location) (bool, error)
}

// VisitRepository は訪問記録の永続化インターフェース。
type VisitRepository interface {
	// ListByUserIDWithLocation はユーザーの訪問記録を参照先ロケーション付きで返す。
	// 訪問日の新しい順。参照先が存在しない場合はプレースホルダーのロケーションを付与する。
	ListByUserIDWithLocation(ctx context.Context, userID string) ([]model.VisitWithLocation, error)

	// ListByUserID はユーザーの訪問記録を返す。
	ListByUserID(ctx context.Context, userID string) ([]model.Visit, error)

	// UpsertWithRating は (user_id, location_id) をキーに訪問記録を作成または更新する。
	// notesがnilの場合、既存のnotesを保持する。作成された場合はcreated=trueを返す。
	UpsertWithRating(ctx context.Context, userID string, locationID int64, rating int, notes *string) (visit *model.Visit, created bool, err error)

	// UpdateExisting は既存の訪問記録のnotesのみを更新する（notesがnilなら更新日時のみ）。
	// 訪問記録が存在しない場合はnilを返す。
	UpdateExisting(ctx context.Context, userID string, locationID int64, notes *string) (*model.Visit, error)

	// DeleteByIDAndUser は所有者が一致する訪問記録を削除する。
	// 削除対象が無い場合はfalseを返す。
	DeleteByIDAndUser(ctx context.Context, visitID int64, userID string) (bool, error)
}
