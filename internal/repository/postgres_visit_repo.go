package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/tabilog/internal/model"
)

const visitColumns = `id, user_id, location_id, visit_date, rating, notes, created_at, updated_at`

// PostgresVisitRepo はPostgreSQLを使用した訪問記録リポジトリ。
type PostgresVisitRepo struct {
	db *sql.DB
}

// NewPostgresVisitRepo はPostgresVisitRepoを生成する。
func NewPostgresVisitRepo(db *sql.DB) *PostgresVisitRepo {
	return &PostgresVisitRepo{db: db}
}

// ListByUserIDWithLocation はユーザーの訪問記録をロケーション付きで訪問日の新しい順に返す。
func (r *PostgresVisitRepo) ListByUserIDWithLocation(ctx context.Context, userID string) ([]model.VisitWithLocation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT v.id, v.user_id, v.location_id, v.visit_date, v.rating, v.notes, v.created_at, v.updated_at,
		        l.id, l.name, l.city, l.country, l.description, l.price_level, l.category, l.rating, l.latitude, l.longitude
		 FROM visits v
		 LEFT JOIN locations l ON l.id = v.location_id
		 WHERE v.user_id = $1
		 ORDER BY v.visit_date DESC, v.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits with location: %w", err)
	}
	defer rows.Close()

	result := []model.VisitWithLocation{}
	for rows.Next() {
		var (
			vwl                       model.VisitWithLocation
			rating, priceLevel, locID sql.NullInt64
			notes, category           sql.NullString
			name, city, country, desc sql.NullString
			locRating, lat, lng       sql.NullFloat64
		)
		if err := rows.Scan(
			&vwl.ID, &vwl.UserID, &vwl.LocationID, &vwl.VisitDate, &rating, &notes, &vwl.CreatedAt, &vwl.UpdatedAt,
			&locID, &name, &city, &country, &desc, &priceLevel, &category, &locRating, &lat, &lng,
		); err != nil {
			return nil, fmt.Errorf("failed to scan visit with location: %w", err)
		}
		applyNullableVisitFields(&vwl.Visit, rating, notes)

		if !locID.Valid {
			vwl.Location = model.PlaceholderLocation(vwl.LocationID)
		} else {
			vwl.Location = model.Location{
				ID:          locID.Int64,
				Name:        name.String,
				City:        city.String,
				Country:     country.String,
				Description: desc.String,
				Category:    model.Category(category.String),
				Latitude:    lat.Float64,
				Longitude:   lng.Float64,
			}
			if priceLevel.Valid {
				p := int(priceLevel.Int64)
				vwl.Location.PriceLevel = &p
			}
			if locRating.Valid {
				v := locRating.Float64
				vwl.Location.Rating = &v
			}
		}
		result = append(result, vwl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate visits with location: %w", err)
	}
	return result, nil
}

// ListByUserID はユーザーの訪問記録を訪問日の新しい順に返す。
func (r *PostgresVisitRepo) ListByUserID(ctx context.Context, userID string) ([]model.Visit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+visitColumns+` FROM visits WHERE user_id = $1 ORDER BY visit_date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	visits := []model.Visit{}
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate visits: %w", err)
	}
	return visits, nil
}

// UpsertWithRating は一意制約 (user_id, location_id) を利用して1文で作成または更新する。
// xmax = 0 の行は今回のINSERTで作成された行。
func (r *PostgresVisitRepo) UpsertWithRating(ctx context.Context, userID string, locationID int64, rating int, notes *string) (*model.Visit, bool, error) {
	var created bool
	v := &model.Visit{}
	var (
		nr sql.NullInt64
		nn sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO visits (user_id, location_id, rating, notes)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT ON CONSTRAINT visits_user_location_key DO UPDATE SET
		     rating = COALESCE(EXCLUDED.rating, visits.rating),
		     notes = COALESCE(EXCLUDED.notes, visits.notes),
		     updated_at = now()
		 RETURNING `+visitColumns+`, (xmax = 0) AS inserted`,
		userID, locationID, rating, notes,
	).Scan(&v.ID, &v.UserID, &v.LocationID, &v.VisitDate, &nr, &nn, &v.CreatedAt, &v.UpdatedAt, &created)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert visit: %w", err)
	}
	applyNullableVisitFields(v, nr, nn)
	return v, created, nil
}

// UpdateExisting は既存の訪問記録のnotesを更新する。存在しない場合はnilを返す。
func (r *PostgresVisitRepo) UpdateExisting(ctx context.Context, userID string, locationID int64, notes *string) (*model.Visit, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE visits SET
		     notes = COALESCE($3, notes),
		     updated_at = now()
		 WHERE user_id = $1 AND location_id = $2
		 RETURNING `+visitColumns,
		userID, locationID, notes,
	)
	v, err := scanVisit(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}
	return v, nil
}

// DeleteByIDAndUser は所有者が一致する訪問記録を削除する。
func (r *PostgresVisitRepo) DeleteByIDAndUser(ctx context.Context, visitID int64, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM visits WHERE id = $1 AND user_id = $2`,
		visitID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete visit: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func scanVisit(s rowScanner) (*model.Visit, error) {
	v := &model.Visit{}
	var (
		rating sql.NullInt64
		notes  sql.NullString
	)
	if err := s.Scan(&v.ID, &v.UserID, &v.LocationID, &v.VisitDate, &rating, &notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	applyNullableVisitFields(v, rating, notes)
	return v, nil
}

func applyNullableVisitFields(v *model.Visit, rating sql.NullInt64, notes sql.NullString) {
	if rating.Valid {
		r := int(rating.Int64)
		v.Rating = &r
	}
	if notes.Valid {
		n := notes.String
		v.Notes = &n
	}
}

// compile-time interface check
var _ VisitRepository = (*PostgresVisitRepo)(nil)
