package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/curriculum/internal/domain/seedlog"
)

// SeedLogRepository implements seedlog.Repository for SQLite
type SeedLogRepository struct {
	db *DB
}

// NewSeedLogRepository creates a new SeedLogRepository
func NewSeedLogRepository(db *DB) *SeedLogRepository {
	return &SeedLogRepository{db: db}
}

// Log inserts a new seed log entry
func (r *SeedLogRepository) Log(ctx context.Context, entry *seedlog.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO seed_log (run_id, kind, slug, summary, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	var slug sql.NullString
	if entry.Slug != "" {
		slug = sql.NullString{String: entry.Slug, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		entry.RunID,
		entry.Kind,
		slug,
		entry.Summary,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log seed entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		entry.ID = id
	}

	entry.CreatedAt = createdAt

	return nil
}

// List returns seed log entries matching the given filters, newest first
func (r *SeedLogRepository) List(ctx context.Context, opts seedlog.ListOptions) ([]seedlog.Entry, error) {
	query := `
		SELECT id, run_id, kind, slug, summary, created_at
		FROM seed_log
	`

	args := []interface{}{}
	conditions := []string{}

	if opts.RunID != "" {
		conditions = append(conditions, "run_id = ?")
		args = append(args, opts.RunID)
	}
	if opts.Kind != nil {
		conditions = append(conditions, "kind = ?")
		args = append(args, *opts.Kind)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list seed log: %w", err)
	}
	defer rows.Close()

	var entries []seedlog.Entry
	for rows.Next() {
		var entry seedlog.Entry
		var slug sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&entry.RunID,
			&entry.Kind,
			&slug,
			&entry.Summary,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan seed log entry: %w", err)
		}
		if slug.Valid {
			entry.Slug = slug.String
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seed log rows: %w", err)
	}

	return entries, nil
}
