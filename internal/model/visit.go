// Package model はドメインモデルを定義する。
package model

import "time"

// MinVisitRating と MaxVisitRating はユーザー評価の許容範囲。
const (
	MinVisitRating = 1
	MaxVisitRating = 5
)

// Visit はユーザーがロケーションを訪れた記録を表す。
// (UserID, LocationID) の組ごとに最大1件。
type Visit struct {
	ID         int64
	UserID     string
	LocationID int64
	VisitDate  time.Time
	Rating     *int // 1〜5、未評価の場合はnil
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VisitWithLocation は訪問記録と参照先ロケーションを結合したモデル。
type VisitWithLocation struct {
	Visit
	Location Location
}

// IsValidRating は評価値が許容範囲内かどうかを返す。
func IsValidRating(rating int) bool {
	return rating >= MinVisitRating && rating <= MaxVisitRating
}
