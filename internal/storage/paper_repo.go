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

type PaperRepo struct {
	db *DB
}

func NewPaperRepo(db *DB) *PaperRepo {
	return &PaperRepo{db: db}
}

const paperColumns = `
p.id, p.title, COALESCE(p.authors,'[]'::jsonb)::text, COALESCE(p.abstract,''),
COALESCE(p.source,''), COALESCE(p.source_url,''), COALESCE(p.pdf_url,''), COALESCE(p.doi,''),
p.publication_date, p.citation_count, COALESCE(p.tags,'[]'::jsonb)::text,
COALESCE(p.file_path,''), COALESCE(p.extracted_text,''), COALESCE(p.file_size,0),
p.owner_id, p.is_public,
EXISTS(SELECT 1 FROM analyses a WHERE a.paper_id = p.id),
p.created_at, p.updated_at`

func scanPaper(row pgx.Row) (models.Paper, error) {
	var p models.Paper
	var authorsJSON, tagsJSON string
	err := row.Scan(&p.ID, &p.Title, &authorsJSON, &p.Abstract,
		&p.Source, &p.SourceURL, &p.PDFURL, &p.DOI,
		&p.PublicationDate, &p.CitationCount, &tagsJSON,
		&p.FilePath, &p.ExtractedText, &p.FileSize,
		&p.OwnerID, &p.IsPublic, &p.Analyzed, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Paper{}, err
	}
	if err := json.Unmarshal([]byte(authorsJSON), &p.Authors); err != nil {
		return models.Paper{}, fmt.Errorf("decode authors: %w", err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &p.Tags); err != nil {
		return models.Paper{}, fmt.Errorf("decode tags: %w", err)
	}
	return p, nil
}

func (r *PaperRepo) Create(ctx context.Context, p models.Paper) (models.Paper, error) {
	authorsJSON, _ := json.Marshal(orEmpty(p.Authors))
	tagsJSON, _ := json.Marshal(orEmpty(p.Tags))
	err := r.db.Pool.QueryRow(ctx, `
INSERT INTO papers (title, authors, abstract, source, source_url, pdf_url, doi,
  publication_date, citation_count, tags, file_path, extracted_text, file_size,
  owner_id, is_public)
VALUES ($1, $2::jsonb, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''), NULLIF($6,''), NULLIF($7,''),
  $8, $9, $10::jsonb, NULLIF($11,''), NULLIF($12,''), $13, $14, $15)
RETURNING id, created_at, updated_at`,
		p.Title, string(authorsJSON), p.Abstract, p.Source, p.SourceURL, p.PDFURL, p.DOI,
		p.PublicationDate, p.CitationCount, string(tagsJSON), p.FilePath, p.ExtractedText, p.FileSize,
		p.OwnerID, p.IsPublic,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Paper{}, fmt.Errorf("create paper: %w", err)
	}
	return p, nil
}

func (r *PaperRepo) ListByOwner(ctx context.Context, ownerID int64, workspaceID *int64) ([]models.Paper, error) {
	q := `SELECT ` + paperColumns + ` FROM papers p WHERE p.owner_id=$1`
	args := []any{ownerID}
	if workspaceID != nil {
		q += ` AND EXISTS(SELECT 1 FROM workspace_papers wp WHERE wp.paper_id = p.id AND wp.workspace_id=$2)`
		args = append(args, *workspaceID)
	}
	q += ` ORDER BY p.created_at DESC`

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	defer rows.Close()

	out := make([]models.Paper, 0)
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paper: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PaperRepo) GetByID(ctx context.Context, ownerID, id int64) (models.Paper, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+paperColumns+` FROM papers p WHERE p.owner_id=$1 AND p.id=$2`, ownerID, id)
	p, err := scanPaper(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Paper{}, util.ErrNotFound
	}
	if err != nil {
		return models.Paper{}, fmt.Errorf("get paper: %w", err)
	}
	return p, nil
}

// ListByIDsForOwner resolves requested paper ids against the caller's own
// papers. Ids the caller does not own are silently dropped.
func (r *PaperRepo) ListByIDsForOwner(ctx context.Context, ownerID int64, ids []int64) ([]models.Paper, error) {
	if len(ids) == 0 {
		return []models.Paper{}, nil
	}
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+paperColumns+` FROM papers p WHERE p.owner_id=$1 AND p.id = ANY($2) ORDER BY p.id`, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("list papers by ids: %w", err)
	}
	defer rows.Close()

	out := make([]models.Paper, 0, len(ids))
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paper by id: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PaperRepo) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM papers WHERE owner_id=$1 AND id=$2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete paper: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return util.ErrNotFound
	}
	return nil
}

// AttachWorkspaces links a paper to the subset of workspaceIDs owned by ownerID.
func (r *PaperRepo) AttachWorkspaces(ctx context.Context, ownerID, paperID int64, workspaceIDs []int64) error {
	if len(workspaceIDs) == 0 {
		return nil
	}
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO workspace_papers (workspace_id, paper_id)
SELECT w.id, $2 FROM workspaces w
WHERE w.owner_id=$1 AND w.id = ANY($3)
ON CONFLICT DO NOTHING`, ownerID, paperID, workspaceIDs)
	if err != nil {
		return fmt.Errorf("attach workspaces: %w", err)
	}
	return nil
}

func (r *PaperRepo) RemoveFromWorkspace(ctx context.Context, ownerID, paperID, workspaceID int64) error {
	tag, err := r.db.Pool.Exec(ctx, `
DELETE FROM workspace_papers wp
USING workspaces w
WHERE wp.workspace_id = w.id AND w.owner_id=$1 AND wp.paper_id=$2 AND wp.workspace_id=$3`,
		ownerID, paperID, workspaceID)
	if err != nil {
		return fmt.Errorf("remove paper from workspace: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return util.ErrNotFound
	}
	return nil
}

func (r *PaperRepo) CountByOwner(ctx context.Context, ownerID int64) (total, analyzed int, err error) {
	err = r.db.Pool.QueryRow(ctx, `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE EXISTS(SELECT 1 FROM analyses a WHERE a.paper_id = p.id))
FROM papers p WHERE p.owner_id=$1`, ownerID).Scan(&total, &analyzed)
	if err != nil {
		return 0, 0, fmt.Errorf("count papers: %w", err)
	}
	return total, analyzed, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
