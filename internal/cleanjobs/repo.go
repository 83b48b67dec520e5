package cleanjobs

import (
	"context"
	"database/sql"
	"fmt"

	"contactcleaner/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, job models.CleanJob) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO clean_jobs (id, user_id, filename, source_type, total_records, unique_contacts, duplicates, rejected, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, job.ID, job.UserID, job.Filename, job.SourceType,
		job.TotalRecords, job.UniqueContacts, job.Duplicates, job.Rejected, job.CreatedAt)

	if err != nil {
		return fmt.Errorf("create clean job: %w", err)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.CleanJob, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, filename, source_type, total_records, unique_contacts, duplicates, rejected, created_at
		FROM clean_jobs
		WHERE id = ?
	`, id)

	var j models.CleanJob
	if err := row.Scan(
		&j.ID, &j.UserID, &j.Filename, &j.SourceType,
		&j.TotalRecords, &j.UniqueContacts, &j.Duplicates, &j.Rejected, &j.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get clean job: %w", err)
	}
	return &j, nil
}

func (r *Repo) CountByUser(ctx context.Context, userID string) (int, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM clean_jobs WHERE user_id = ?
	`, userID)

	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("count clean jobs: %w", err)
	}
	return total, nil
}

func (r *Repo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.CleanJob, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, filename, source_type, total_records, unique_contacts, duplicates, rejected, created_at
		FROM clean_jobs
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clean jobs: %w", err)
	}
	defer rows.Close()

	out := make([]models.CleanJob, 0, limit)
	for rows.Next() {
		var j models.CleanJob
		if err := rows.Scan(
			&j.ID, &j.UserID, &j.Filename, &j.SourceType,
			&j.TotalRecords, &j.UniqueContacts, &j.Duplicates, &j.Rejected, &j.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan clean job: %w", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
