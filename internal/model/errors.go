// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, not_found, conflict, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// エラーカテゴリ
const (
	ErrCategoryAuth       = "auth"
	ErrCategoryValidation = "validation"
	ErrCategoryNotFound   = "not_found"
	ErrCategoryConflict   = "conflict"
	ErrCategorySystem     = "system"
)

// 定義済みエラーコード
const (
	ErrCodeLocationNotFound   = "LOCATION_NOT_FOUND"
	ErrCodeVisitNotFound      = "VISIT_NOT_FOUND"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeRatingRequired     = "RATING_REQUIRED"
	ErrCodeInvalidRating      = "INVALID_RATING"
	ErrCodeInvalidCategory    = "INVALID_CATEGORY"
	ErrCodeInvalidLimit       = "INVALID_LIMIT"
	ErrCodeInvalidID          = "INVALID_ID"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUsernameTaken      = "USERNAME_TAKEN"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewLocationNotFoundError はロケーション未検出エラーを生成する。
func NewLocationNotFoundError(locationID int64) *APIError {
	return &APIError{
		Code:     ErrCodeLocationNotFound,
		Message:  fmt.Sprintf("Location not found: %d", locationID),
		Category: ErrCategoryNotFound,
		Action:   "ロケーションIDを確認してください。",
	}
}

// NewVisitNotFoundError は訪問記録未検出エラーを生成する。
// 他ユーザーの訪問記録の存在を漏らさないため、所有者不一致の場合も同じエラーを返す。
func NewVisitNotFoundError(visitID int64) *APIError {
	return &APIError{
		Code:     ErrCodeVisitNotFound,
		Message:  fmt.Sprintf("Visit not found: %d", visitID),
		Category: ErrCategoryNotFound,
		Action:   "訪問記録IDを確認してください。",
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "User not found",
		Category: ErrCategoryNotFound,
		Action:   "ログインし直してください。",
	}
}

// NewInvalidRequestError はリクエストボディの解析失敗エラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  reason,
		Category: ErrCategoryValidation,
		Action:   "正しいJSON形式でリクエストしてください。",
	}
}

// NewValidationError は入力値の検証エラーを生成する。
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:     ErrCodeValidation,
		Message:  message,
		Category: ErrCategoryValidation,
		Action:   "入力内容を確認してください。",
	}
}

// NewRatingRequiredError は新規訪問に評価が指定されていない場合のエラーを生成する。
func NewRatingRequiredError() *APIError {
	return &APIError{
		Code:     ErrCodeRatingRequired,
		Message:  "Rating is required when adding a new visit",
		Category: ErrCategoryValidation,
		Action:   "1から5の評価を指定してください。",
	}
}

// NewInvalidRatingError は評価値が範囲外の場合のエラーを生成する。
func NewInvalidRatingError(rating int) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRating,
		Message:  fmt.Sprintf("Rating must be between %d and %d, got %d", MinVisitRating, MaxVisitRating, rating),
		Category: ErrCategoryValidation,
		Action:   "1から5の評価を指定してください。",
	}
}

// NewInvalidCategoryError は未知のカテゴリが指定された場合のエラーを生成する。
func NewInvalidCategoryError(category string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCategory,
		Message:  fmt.Sprintf("Invalid location type: %s", category),
		Category: ErrCategoryValidation,
		Action:   "typeには nature、recreational、nightlife、culture、food のいずれかを指定してください。",
	}
}

// NewInvalidLimitError は取得件数が範囲外の場合のエラーを生成する。
func NewInvalidLimitError(raw string, max int) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidLimit,
		Message:  fmt.Sprintf("Invalid limit: %s", raw),
		Category: ErrCategoryValidation,
		Action:   fmt.Sprintf("limitには1から%dの整数を指定してください。", max),
	}
}

// NewInvalidIDError はパスパラメータのIDが整数でない場合のエラーを生成する。
func NewInvalidIDError(raw string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidID,
		Message:  fmt.Sprintf("Invalid id: %s", raw),
		Category: ErrCategoryValidation,
		Action:   "IDには正の整数を指定してください。",
	}
}

// NewUnauthorizedError は認証が必要な場合のエラーを生成する。
func NewUnauthorizedError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  reason,
		Category: ErrCategoryAuth,
		Action:   "ログインしてください。",
	}
}

// NewInvalidCredentialsError はユーザー名またはパスワードが不正な場合のエラーを生成する。
// どちらが誤っているかは区別しない。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid credentials",
		Category: ErrCategoryAuth,
		Action:   "ユーザー名とパスワードを確認してください。",
	}
}

// NewUsernameTakenError はユーザー名が既に使われている場合のエラーを生成する。
func NewUsernameTakenError() *APIError {
	return &APIError{
		Code:     ErrCodeUsernameTaken,
		Message:  "Username already exists",
		Category: ErrCategoryConflict,
		Action:   "別のユーザー名を指定してください。",
	}
}

// NewEmailTakenError はメールアドレスが既に使われている場合のエラーを生成する。
func NewEmailTakenError() *APIError {
	return &APIError{
		Code:     ErrCodeEmailTaken,
		Message:  "Email already exists",
		Category: ErrCategoryConflict,
		Action:   "別のメールアドレスを指定するか、ログインしてください。",
	}
}

// NewRateLimitedError はレート制限超過エラーを生成する。
func NewRateLimitedError() *APIError {
	return &APIError{
		Code:     ErrCodeRateLimited,
		Message:  "Too many requests",
		Category: ErrCategorySystem,
		Action:   "しばらく待ってから再度お試しください。",
	}
}

// NewInternalError は内部エラーを生成する。
// 詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Message:  "Internal server error",
		Category: ErrCategorySystem,
		Action:   "しばらく待ってから再度お試しください。",
	}
}
