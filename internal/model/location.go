// Package model はドメインモデルを定義する。
package model

// Category はロケーションのカテゴリ（APIでは "type" と呼ぶ）を表す。
type Category string

const (
	CategoryNature       Category = "nature"
	CategoryRecreational Category = "recreational"
	CategoryNightlife    Category = "nightlife"
	CategoryCulture      Category = "culture"
	CategoryFood         Category = "food"
)

// Categories は定義済みカテゴリの一覧を返す。
func Categories() []Category {
	return []Category{
		CategoryNature,
		CategoryRecreational,
		CategoryNightlife,
		CategoryCulture,
		CategoryFood,
	}
}

// IsValid はカテゴリが定義済みの値かどうかを返す。
func (c Category) IsValid() bool {
	switch c {
	case CategoryNature, CategoryRecreational, CategoryNightlife, CategoryCulture, CategoryFood:
		return true
	default:
		return false
	}
}

// Location はカタログに登録された旅行先を表す。
// シード投入後は変更されない。
type Location struct {
	ID          int64
	Name        string
	City        string
	Country     string
	Description string
	PriceLevel  *int // 1〜5、未設定の場合はnil
	Category    Category
	Rating      *float64 // 平均評価 0.0〜5.0、未設定の場合はnil
	Latitude    float64
	Longitude   float64
}

// UnknownLocationName は参照先ロケーションが存在しない訪問に使うプレースホルダー名。
const UnknownLocationName = "Unknown Location"

// PlaceholderLocation はIDのみを持つプレースホルダーのロケーションを返す。
func PlaceholderLocation(id int64) Location {
	return Location{ID: id, Name: UnknownLocationName}
}

// IsPlaceholder はPlaceholderLocationで生成された値かどうかを返す。
// カタログのロケーションは必ずカテゴリを持つ。
func (l Location) IsPlaceholder() bool {
	return l.Category == ""
}
