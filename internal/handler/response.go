package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/tabilog/internal/middleware"
	"github.com/hitoshi/tabilog/internal/model"
	"github.com/hitoshi/tabilog/internal/validation"
)

// maxRequestBodyBytes はJSONリクエストボディの上限サイズ。
const maxRequestBodyBytes = 1 << 20

// writeJSON はステータスコードとJSONボディを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

// normalizer は検証前に入力を正規化するリクエストボディが実装する。
type normalizer interface {
	normalize()
}

// decodeAndValidate はJSONボディをdstにデコードし、validateタグで検証する。
// dstがnormalizerを実装していれば検証の前に正規化する。
// 失敗した場合はレスポンスを書き込みfalseを返す。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(dst); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, decodeError(err))
		return false
	}
	if n, ok := dst.(normalizer); ok {
		n.normalize()
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, verr.ToAPIError())
		return false
	}
	return true
}

// decodeError はJSONデコードエラーを利用者向けのAPIErrorに変換する。
func decodeError(err error) *model.APIError {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return model.NewInvalidRequestError("No JSON data provided")
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return model.NewInvalidRequestError(typeErr.Field + " must be " + jsonTypeName(typeErr.Type.Kind().String()))
		}
		return model.NewInvalidRequestError("Request body must be a JSON object")
	case errors.As(err, &maxErr):
		return model.NewInvalidRequestError("Request body too large")
	default:
		return model.NewInvalidRequestError("Malformed JSON body")
	}
}

func jsonTypeName(kind string) string {
	switch kind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "an integer"
	case "string":
		return "a string"
	case "bool":
		return "a boolean"
	case "float32", "float64":
		return "a number"
	default:
		return "a valid " + kind
	}
}

// parseIDParam はパスパラメータ{id}を正の整数として解析する。
// 失敗した場合はINVALID_IDを書き込みfalseを返す。
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, model.NewInvalidIDError(raw))
		return 0, false
	}
	return id, true
}

// requireUserID は認証ミドルウェアが注入したユーザーIDを取得する。
// 取得できない場合は401を書き込みfalseを返す。
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		middleware.WriteErrorResponse(w, http.StatusUnauthorized,
			model.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return userID, true
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPレスポンスに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		middleware.WriteErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	// APIError以外は詳細をログにのみ残す
	slog.Error("internal server error", slog.String("error", err.Error()))
	middleware.WriteInternalServerError(w)
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeLocationNotFound, model.ErrCodeVisitNotFound, model.ErrCodeUserNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidRequest,
		model.ErrCodeValidation,
		model.ErrCodeRatingRequired,
		model.ErrCodeInvalidRating,
		model.ErrCodeInvalidCategory,
		model.ErrCodeInvalidLimit,
		model.ErrCodeInvalidID:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorized, model.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case model.ErrCodeUsernameTaken, model.ErrCodeEmailTaken:
		return http.StatusConflict
	case model.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
