package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"researchhub/internal/models"
	"researchhub/internal/util"
)

type AnalysisRepo struct {
	db *DB
}

func NewAnalysisRepo(db *DB) *AnalysisRepo {
	return &AnalysisRepo{db: db}
}

const analysisColumns = `
a.id, a.analysis_type, a.title, a.content, COALESCE(a.metadata,'{}'::jsonb)::text,
a.user_id, a.paper_id, a.created_at`

// Create persists one analysis record. It is a single INSERT, so a failure
// leaves nothing behind for the job to roll back beyond its own statement.
func (r *AnalysisRepo) Create(ctx context.Context, a models.Analysis) (models.Analysis, error) {
	if a.Metadata == nil {
		a.Metadata = map[string]any{}
	}
	metaJSON, err := json.Marshal(a.Metadata)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("encode analysis metadata: %w", err)
	}
	err = r.db.Pool.QueryRow(ctx, `
INSERT INTO analyses (analysis_type, title, content, metadata, user_id, paper_id)
VALUES ($1, $2, $3, $4::jsonb, $5, $6)
RETURNING id, created_at`,
		a.Type, a.Title, a.Content, string(metaJSON), a.UserID, a.PaperID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("create analysis: %w", err)
	}
	return a, nil
}

func (r *AnalysisRepo) ListRecent(ctx context.Context, userID int64, limit int) ([]models.Analysis, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Pool.Query(ctx, `
SELECT `+analysisColumns+`
FROM analyses a
WHERE a.user_id=$1
ORDER BY a.created_at DESC
LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	out := make([]models.Analysis, 0, limit)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnalysisRepo) GetByID(ctx context.Context, userID, id int64) (models.Analysis, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+analysisColumns+` FROM analyses a WHERE a.user_id=$1 AND a.id=$2`, userID, id)
	a, err := scanAnalysis(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Analysis{}, util.ErrNotFound
	}
	if err != nil {
		return models.Analysis{}, fmt.Errorf("get analysis: %w", err)
	}
	return a, nil
}

func (r *AnalysisRepo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM analyses WHERE user_id=$1 AND id=$2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return util.ErrNotFound
	}
	return nil
}

func scanAnalysis(row pgx.Row) (models.Analysis, error) {
	var a models.Analysis
	var metaJSON string
	if err := row.Scan(&a.ID, &a.Type, &a.Title, &a.Content, &metaJSON, &a.UserID, &a.PaperID, &a.CreatedAt); err != nil {
		return models.Analysis{}, err
	}
	if err := json.Unmarshal([]byte(metaJSON), &a.Metadata); err != nil {
		return models.Analysis{}, fmt.Errorf("decode analysis metadata: %w", err)
	}
	return a, nil
}
