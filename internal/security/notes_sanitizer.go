// Package security はアプリケーションのセキュリティ機能を提供する。
//
// NotesSanitizer は訪問記録のメモからHTMLマークアップを除去し、
// プレーンテキストとして保存できる形に整える。
// bluemondayのStrictPolicyで全タグを落とす。
package security

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// MaxNotesLength はメモとして保存できる最大文字数（rune数）。
const MaxNotesLength = 2000

// NotesSanitizerService はメモのサニタイズ機能のインターフェースを定義する。
type NotesSanitizerService interface {
	// Sanitize はメモからHTMLタグを除去し、前後の空白を取り除いた文字列を返す。
	// MaxNotesLengthを超える部分は切り詰める。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// notesSanitizer はNotesSanitizerServiceの実装。
// bluemondayのポリシーはスレッドセーフに共有できる。
type notesSanitizer struct {
	policy *bluemonday.Policy
}

// NewNotesSanitizer はNotesSanitizerServiceの新しいインスタンスを生成する。
func NewNotesSanitizer() *notesSanitizer {
	return &notesSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize はメモをプレーンテキストに変換する。
// StrictPolicyはテキストをHTMLエスケープして返すため、保存前にエスケープを戻す。
func (s *notesSanitizer) Sanitize(raw string) string {
	text := html.UnescapeString(s.policy.Sanitize(raw))
	text = strings.TrimSpace(text)
	return truncateRunes(text, MaxNotesLength)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
