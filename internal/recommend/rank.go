// Package recommend はロケーションの推薦ロジックを提供する。
//
// 推薦の順位付けはカタログと訪問記録のスナップショットに対する純粋関数として実装し、
// ストレージへのアクセスはEngineが担う。
package recommend

import (
	"cmp"
	"slices"

	"github.com/hitoshi/tabilog/internal/model"
)

// DefaultLimit は件数が指定されない場合の推薦件数。
const DefaultLimit = 10

// Preference はあるカテゴリに対するユーザーの嗜好を表す。
type Preference struct {
	Category model.Category
	Mean     float64 // ユーザー自身の評価の平均
	Count    int     // 評価付き訪問の件数
}

// NormalizeLimit は0以下の件数をdefaultLimitに置き換える。
func NormalizeLimit(limit, defaultLimit int) int {
	if limit > 0 {
		return limit
	}
	if defaultLimit > 0 {
		return defaultLimit
	}
	return DefaultLimit
}

// compareByRating は評価の降順に並べる比較関数。評価がnilのロケーションは最後。
func compareByRating(a, b model.Location) int {
	switch {
	case a.Rating == nil && b.Rating == nil:
		return 0
	case a.Rating == nil:
		return 1
	case b.Rating == nil:
		return -1
	default:
		return cmp.Compare(*b.Rating, *a.Rating)
	}
}

// sortedByRating はlocsのコピーを評価の降順で安定ソートして返す。
// 同点のロケーションは入力順（カタログ順）を保つ。
func sortedByRating(locs []model.Location) []model.Location {
	sorted := slices.Clone(locs)
	slices.SortStableFunc(sorted, compareByRating)
	return sorted
}

// TopRated はカタログの評価上位limit件を返す。負のlimitは0として扱う。
func TopRated(catalog []model.Location, limit int) []model.Location {
	limit = max(limit, 0)
	sorted := sortedByRating(catalog)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Preferences は評価付き訪問をロケーションの現在のカテゴリで集計し、嗜好の強い順に返す。
// 平均の降順、同点は件数の多い順、さらにカテゴリ名の昇順。
// カタログに存在しないロケーションへの訪問は集計から除く。
func Preferences(catalog []model.Location, visits []model.Visit) []Preference {
	categoryOf := make(map[int64]model.Category, len(catalog))
	for _, loc := range catalog {
		categoryOf[loc.ID] = loc.Category
	}

	type acc struct{ sum, count int }
	totals := map[model.Category]acc{}
	for _, v := range visits {
		if v.Rating == nil {
			continue
		}
		cat, ok := categoryOf[v.LocationID]
		if !ok {
			continue
		}
		a := totals[cat]
		a.sum += *v.Rating
		a.count++
		totals[cat] = a
	}

	prefs := make([]Preference, 0, len(totals))
	for cat, a := range totals {
		prefs = append(prefs, Preference{
			Category: cat,
			Mean:     float64(a.sum) / float64(a.count),
			Count:    a.count,
		})
	}
	slices.SortFunc(prefs, func(a, b Preference) int {
		if c := cmp.Compare(b.Mean, a.Mean); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return prefs
}

// Personalize は訪問履歴に基づいて最大limit件の推薦を返す。
//
//   - 訪問なし: TopRatedと同じ結果
//   - 評価付き訪問なし: 未訪問ロケーションを評価の降順
//   - それ以外: 嗜好の強いカテゴリ順に未訪問ロケーションを評価の降順で並べ、
//     不足分を残りの未訪問ロケーション（カテゴリ不問、評価の降順）で補う
//
// 訪問済みのロケーションは決して含まない。負のlimitは0として扱う。
func Personalize(catalog []model.Location, visits []model.Visit, limit int) []model.Location {
	limit = max(limit, 0)
	if len(visits) == 0 {
		return TopRated(catalog, limit)
	}

	visited := make(map[int64]struct{}, len(visits))
	for _, v := range visits {
		visited[v.LocationID] = struct{}{}
	}

	var candidates []model.Location
	for _, loc := range catalog {
		if _, ok := visited[loc.ID]; !ok {
			candidates = append(candidates, loc)
		}
	}
	candidates = sortedByRating(candidates)

	prefs := Preferences(catalog, visits)
	if len(prefs) == 0 {
		if len(candidates) > limit {
			candidates = candidates[:limit]
		}
		return candidates
	}

	result := make([]model.Location, 0, limit)
	selected := make(map[int64]struct{}, limit)
	for _, p := range prefs {
		for _, loc := range candidates {
			if len(result) >= limit {
				return result
			}
			if loc.Category == p.Category {
				result = append(result, loc)
				selected[loc.ID] = struct{}{}
			}
		}
	}

	// 残りの未訪問ロケーションを1つのプールとして評価順に補う。
	for _, loc := range candidates {
		if len(result) >= limit {
			break
		}
		if _, ok := selected[loc.ID]; !ok {
			result = append(result, loc)
		}
	}
	return result
}
