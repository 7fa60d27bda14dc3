package handler

import (
	"time"

	"github.com/hitoshi/tabilog/internal/model"
)

// locationResponse はロケーションのAPIレスポンス。
// カテゴリはAPI上 "type" として公開する。
type locationResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	PriceLevel  *int     `json:"price_level"`
	Type        string   `json:"type"`
	Rating      *float64 `json:"rating"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
}

func toLocationResponse(l model.Location) locationResponse {
	return locationResponse{
		ID:          l.ID,
		Name:        l.Name,
		City:        l.City,
		Country:     l.Country,
		Description: l.Description,
		PriceLevel:  l.PriceLevel,
		Type:        string(l.Category),
		Rating:      l.Rating,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
	}
}

func toLocationResponses(locs []model.Location) []locationResponse {
	out := make([]locationResponse, len(locs))
	for i, l := range locs {
		out[i] = toLocationResponse(l)
	}
	return out
}

// placeholderLocationResponse は参照先が存在しない訪問に付けるロケーション。
type placeholderLocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// visitResponse は訪問記録のAPIレスポンス。
type visitResponse struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	LocationID int64     `json:"location_id"`
	VisitDate  time.Time `json:"visit_date"`
	Rating     *int      `json:"rating"`
	Notes      *string   `json:"notes"`
}

// visitWithLocationResponse は訪問一覧の1件分。
// locationはロケーションが存在しない場合プレースホルダーになる。
type visitWithLocationResponse struct {
	visitResponse
	Location any `json:"location"`
}

func toVisitResponse(v model.Visit) visitResponse {
	return visitResponse{
		ID:         v.ID,
		UserID:     v.UserID,
		LocationID: v.LocationID,
		VisitDate:  v.VisitDate,
		Rating:     v.Rating,
		Notes:      v.Notes,
	}
}

func toVisitWithLocationResponse(v model.VisitWithLocation) visitWithLocationResponse {
	var loc any
	if v.Location.IsPlaceholder() {
		loc = placeholderLocationResponse{ID: v.Location.ID, Name: v.Location.Name}
	} else {
		loc = toLocationResponse(v.Location)
	}
	return visitWithLocationResponse{
		visitResponse: toVisitResponse(v.Visit),
		Location:      loc,
	}
}

// userResponse は登録・ログイン時に返すユーザー情報。
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// profileResponse はプロフィールのAPIレスポンス。
type profileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}
