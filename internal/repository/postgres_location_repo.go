package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hitoshi/tabilog/internal/model"
)

const locationColumns = `id, name, city, country, description, price_level, category, rating, latitude, longitude`

// PostgresLocationRepo はPostgreSQLを使用したロケーションリポジトリ。
type PostgresLocationRepo struct {
	db *sql.DB
}

// NewPostgresLocationRepo はPostgresLocationRepoを生成する。
func NewPostgresLocationRepo(db *sql.DB) *PostgresLocationRepo {
	return &PostgresLocationRepo{db: db}
}

// ListAll は全ロケーションをID昇順で返す。
func (r *PostgresLocationRepo) ListAll(ctx context.Context) ([]model.Location, error) {
	return r.query(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY id`)
}

// FindByID は指定IDのロケーションを取得する。見つからない場合はnilを返す。
func (r *PostgresLocationRepo) FindByID(ctx context.Context, id int64) (*model.Location, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
	loc, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return loc, nil
}

// Search は名前・都市・国のいずれかにqueryを含み、categoryに一致するロケーションを返す。
func (r *PostgresLocationRepo) Search(ctx context.Context, query string, category model.Category) ([]model.Location, error) {
	var (
		conds []string
		args  []any
	)
	if query != "" {
		args = append(args, containsPattern(query))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(name ILIKE $%d ESCAPE '\' OR city ILIKE $%d ESCAPE '\' OR country ILIKE $%d ESCAPE '\')`, n, n, n))
	}
	if category != "" {
		args = append(args, string(category))
		conds = append(conds, fmt.Sprintf(`category = $%d`, len(args)))
	}

	q := `SELECT ` + locationColumns + ` FROM locations`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY id`

	return r.query(ctx, q, args...)
}

// ListTopRated は評価の高い順に最大limit件を返す。
func (r *PostgresLocationRepo) ListTopRated(ctx context.Context, limit int) ([]model.Location, error) {
	return r.query(ctx,
		`SELECT `+locationColumns+` FROM locations ORDER BY rating DESC NULLS LAST, id LIMIT $1`,
		limit,
	)
}

// CreateIfNotExists は同名のロケーションが無い場合のみ作成する。
func (r *PostgresLocationRepo) CreateIfNotExists(ctx context.Context, loc *model.Location) (bool, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO locations (name, city, country, description, price_level, category, rating, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (name) DO NOTHING
		 RETURNING id`,
		loc.Name, loc.City, loc.Country, loc.Description, loc.PriceLevel,
		string(loc.Category), loc.Rating, loc.Latitude, loc.Longitude,
	).Scan(&loc.ID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert location: %w", err)
	}
	return true, nil
}

func (r *PostgresLocationRepo) query(ctx context.Context, q string, args ...any) ([]model.Location, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := []model.Location{}
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, *loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}
	return locations, nil
}

// rowScanner は*sql.Rowと*sql.Rowsの共通インターフェース。
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(s rowScanner) (*model.Location, error) {
	var (
		loc        model.Location
		category   string
		priceLevel sql.NullInt64
		rating     sql.NullFloat64
	)
	if err := s.Scan(&loc.ID, &loc.Name, &loc.City, &loc.Country, &loc.Description,
		&priceLevel, &category, &rating, &loc.Latitude, &loc.Longitude); err != nil {
		return nil, err
	}
	loc.Category = model.Category(category)
	if priceLevel.Valid {
		p := int(priceLevel.Int64)
		loc.PriceLevel = &p
	}
	if rating.Valid {
		v := rating.Float64
		loc.Rating = &v
	}
	return &loc, nil
}

// compile-time interface check
var _ LocationRepository = (*PostgresLocationRepo)(nil)
