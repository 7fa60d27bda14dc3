package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/hitoshi/tabilog/internal/model"
)

// uniqueViolation はPostgreSQLの一意制約違反のSQLSTATE。
const uniqueViolation = pq.ErrorCode("23505")

const (
	constraintUsersUsername = "users_username_key"
	constraintUsersEmail    = "users_email_key"
)

// mapUserUniqueViolation はusersテーブルの一意制約違反をConflictのAPIErrorに変換する。
// 該当しないエラーはnilを返す。
func mapUserUniqueViolation(err error) *model.APIError {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return nil
	}
	switch pqErr.Constraint {
	case constraintUsersUsername:
		return model.NewUsernameTakenError()
	case constraintUsersEmail:
		return model.NewEmailTakenError()
	default:
		return nil
	}
}

// likeEscaper はLIKEパターンのメタ文字をエスケープする。
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern は部分一致用のLIKEパターンを組み立てる。
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
