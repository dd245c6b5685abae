package repository

import (
	"context"
	"fmt"

	"poi-finder-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS search_history (
		id BIGSERIAL PRIMARY KEY,
		user_id VARCHAR(128) NOT NULL,
		query TEXT NOT NULL,
		display_name TEXT NOT NULL DEFAULT '',
		geom GEOGRAPHY(POINT, 4326) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS search_history_user_created_idx ON search_history (user_id, created_at DESC);
`

// Repository stores the search history of signed-in users in PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the history table and its indexes if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to ensure schema: %w", err)
	}
	return nil
}

// SaveSearch appends one search to the user's history
func (r *Repository) SaveSearch(ctx context.Context, rec models.SearchRecord) (*models.SearchRecord, error) {
	sql := `
		INSERT INTO search_history (user_id, query, display_name, geom)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($5, $4), 4326))
		RETURNING id, created_at
	`

	saved := rec
	err := r.db.QueryRow(ctx, sql, rec.UserID, rec.Query, rec.DisplayName, rec.Center.Lat, rec.Center.Lon).
		Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert search: %w", err)
	}

	return &saved, nil
}

// RecentSearches returns the newest searches of a user, newest first
func (r *Repository) RecentSearches(ctx context.Context, userID string, limit int) ([]models.SearchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	sql := `
		SELECT
			id,
			user_id,
			query,
			display_name,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude,
			created_at
		FROM search_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute history query: %w", err)
	}
	defer rows.Close()

	records := []models.SearchRecord{}
	for rows.Next() {
		var rec models.SearchRecord
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Query,
			&rec.DisplayName,
			&rec.Center.Lat,
			&rec.Center.Lon,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan search: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return records, nil
}

// ImportSearches loads history records in a single batch round trip
func (r *Repository) ImportSearches(ctx context.Context, records []models.SearchRecord) (int64, error) {
	sql := `
		INSERT INTO search_history (user_id, query, display_name, geom, created_at)
		VALUES ($1, $2, $3, ST_GeogFromText($4), $5)
	`

	batch := &pgx.Batch{}
	for _, rec := range records {
		geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", rec.Center.Lon, rec.Center.Lat) // PostGIS format: lon lat
		batch.Queue(sql, rec.UserID, rec.Query, rec.DisplayName, geom, rec.CreatedAt)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range records {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("repository: failed to import search: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}
