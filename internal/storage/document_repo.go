package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"researchhub/internal/models"
	"researchhub/internal/util"
)

type DocumentRepo struct {
	db *DB
}

func NewDocumentRepo(db *DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

const documentColumns = `
d.id, d.name, COALESCE(d.content,''), d.document_type, d.parent_id, d.is_starred,
d.owner_id, d.workspace_id, d.created_at, d.updated_at`

func (r *DocumentRepo) Create(ctx context.Context, d models.Document) (models.Document, error) {
	if d.DocumentType == "" {
		d.DocumentType = "document"
	}
	err := r.db.Pool.QueryRow(ctx, `
INSERT INTO documents (name, content, document_type, parent_id, owner_id, workspace_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, is_starred, created_at, updated_at`,
		d.Name, d.Content, d.DocumentType, d.ParentID, d.OwnerID, d.WorkspaceID,
	).Scan(&d.ID, &d.IsStarred, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return models.Document{}, fmt.Errorf("create document: %w", err)
	}
	return d, nil
}

func (r *DocumentRepo) ListByOwner(ctx context.Context, ownerID int64, workspaceID *int64, documentType string) ([]models.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents d WHERE d.owner_id=$1`
	args := []any{ownerID}
	if workspaceID != nil {
		args = append(args, *workspaceID)
		q += fmt.Sprintf(` AND d.workspace_id=$%d`, len(args))
	}
	if documentType != "" {
		args = append(args, documentType)
		q += fmt.Sprintf(` AND d.document_type=$%d`, len(args))
	}
	q += ` ORDER BY d.created_at DESC`

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	out := make([]models.Document, 0)
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.Name, &d.Content, &d.DocumentType, &d.ParentID, &d.IsStarred,
			&d.OwnerID, &d.WorkspaceID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DocumentRepo) GetByID(ctx context.Context, ownerID, id int64) (models.Document, error) {
	var d models.Document
	err := r.db.Pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents d WHERE d.owner_id=$1 AND d.id=$2`, ownerID, id,
	).Scan(&d.ID, &d.Name, &d.Content, &d.DocumentType, &d.ParentID, &d.IsStarred,
		&d.OwnerID, &d.WorkspaceID, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Document{}, util.ErrNotFound
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

func (r *DocumentRepo) Update(ctx context.Context, ownerID, id int64, name, content *string, isStarred *bool) (models.Document, error) {
	tag, err := r.db.Pool.Exec(ctx, `
UPDATE documents SET
  name = COALESCE($3, name),
  content = COALESCE($4, content),
  is_starred = COALESCE($5, is_starred),
  updated_at = NOW()
WHERE owner_id=$1 AND id=$2`, ownerID, id, name, content, isStarred)
	if err != nil {
		return models.Document{}, fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Document{}, util.ErrNotFound
	}
	return r.GetByID(ctx, ownerID, id)
}

func (r *DocumentRepo) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM documents WHERE owner_id=$1 AND id=$2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return util.ErrNotFound
	}
	return nil
}

func (r *DocumentRepo) ToggleStar(ctx context.Context, ownerID, id int64) (bool, error) {
	var starred bool
	err := r.db.Pool.QueryRow(ctx, `
UPDATE documents SET is_starred = NOT is_starred, updated_at = NOW()
WHERE owner_id=$1 AND id=$2
RETURNING is_starred`, ownerID, id).Scan(&starred)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, util.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("toggle star: %w", err)
	}
	return starred, nil
}
