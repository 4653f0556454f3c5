package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"researchhub/internal/models"
	"researchhub/internal/util"
)

type WorkspaceRepo struct {
	db *DB
}

func NewWorkspaceRepo(db *DB) *WorkspaceRepo {
	return &WorkspaceRepo{db: db}
}

const workspaceColumns = `
w.id, w.name, COALESCE(w.description,''), w.color, w.owner_id,
(SELECT COUNT(*) FROM workspace_papers wp WHERE wp.workspace_id = w.id),
w.created_at, w.updated_at`

func (r *WorkspaceRepo) Create(ctx context.Context, ws models.Workspace) (models.Workspace, error) {
	if ws.Color == "" {
		ws.Color = "purple"
	}
	err := r.db.Pool.QueryRow(ctx, `
INSERT INTO workspaces (name, description, color, owner_id)
VALUES ($1, NULLIF($2,''), $3, $4)
RETURNING id, created_at, updated_at`,
		ws.Name, ws.Description, ws.Color, ws.OwnerID,
	).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return models.Workspace{}, fmt.Errorf("create workspace: %w", err)
	}
	return ws, nil
}

func (r *WorkspaceRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Workspace, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT `+workspaceColumns+`
FROM workspaces w
WHERE w.owner_id=$1
ORDER BY w.created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	out := make([]models.Workspace, 0)
	for rows.Next() {
		var ws models.Workspace
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.Description, &ws.Color, &ws.OwnerID, &ws.PapersCount, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		out = append(out, ws)
	}
	return out, rows.Err()
}

func (r *WorkspaceRepo) GetByID(ctx context.Context, ownerID, id int64) (models.Workspace, error) {
	var ws models.Workspace
	err := r.db.Pool.QueryRow(ctx, `
SELECT `+workspaceColumns+`
FROM workspaces w
WHERE w.owner_id=$1 AND w.id=$2`, ownerID, id,
	).Scan(&ws.ID, &ws.Name, &ws.Description, &ws.Color, &ws.OwnerID, &ws.PapersCount, &ws.CreatedAt, &ws.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Workspace{}, util.ErrNotFound
	}
	if err != nil {
		return models.Workspace{}, fmt.Errorf("get workspace: %w", err)
	}
	return ws, nil
}

func (r *WorkspaceRepo) Update(ctx context.Context, ownerID, id int64, name, description, color *string) (models.Workspace, error) {
	tag, err := r.db.Pool.Exec(ctx, `
UPDATE workspaces SET
  name = COALESCE($3, name),
  description = COALESCE($4, description),
  color = COALESCE($5, color),
  updated_at = NOW()
WHERE owner_id=$1 AND id=$2`, ownerID, id, name, description, color)
	if err != nil {
		return models.Workspace{}, fmt.Errorf("update workspace: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Workspace{}, util.ErrNotFound
	}
	return r.GetByID(ctx, ownerID, id)
}

func (r *WorkspaceRepo) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM workspaces WHERE owner_id=$1 AND id=$2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return util.ErrNotFound
	}
	return nil
}
