package libsql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rtreharne/fishdata/internal/domain"
)

// RunRepository stores one record per generation run. The full generation
// config is kept as JSON so a run can be replayed verbatim.
type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) Create(ctx context.Context, run *domain.Run) error {
	cfg, err := json.Marshal(run.Config)
	if err != nil {
		return fmt.Errorf("failed to encode run config: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, row_count, config) VALUES (?, ?, ?, ?)`,
		run.ID, run.CreatedAt.Format(time.RFC3339), run.Rows, string(cfg))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

func (r *RunRepository) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, row_count, config FROM runs WHERE id = ?`, id)

	var (
		run       domain.Run
		createdAt string
		cfg       string
	)
	if err := row.Scan(&run.ID, &createdAt, &run.Rows, &cfg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if err := hydrateRun(&run, createdAt, cfg); err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *RunRepository) List(ctx context.Context, limit int) ([]*domain.Run, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, row_count, config FROM runs
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		var (
			run       domain.Run
			createdAt string
			cfg       string
		)
		if err := rows.Scan(&run.ID, &createdAt, &run.Rows, &cfg); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := hydrateRun(&run, createdAt, cfg); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

func (r *RunRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}

func hydrateRun(run *domain.Run, createdAt, cfg string) error {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("failed to parse run timestamp: %w", err)
	}
	run.CreatedAt = t

	if err := json.Unmarshal([]byte(cfg), &run.Config); err != nil {
		return fmt.Errorf("failed to decode run config: %w", err)
	}
	return nil
}
