package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"researchhub/internal/models"
	"researchhub/internal/util"
)

type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	err := r.db.Pool.QueryRow(ctx, `
INSERT INTO users (email, username, full_name, hashed_password)
VALUES ($1, $2, NULLIF($3,''), $4)
RETURNING id, is_active, created_at, updated_at`,
		u.Email, u.Username, u.FullName, u.HashedPassword,
	).Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email=$1 OR username=$2)`, email, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.get(ctx, `WHERE email=$1`, email)
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.get(ctx, `WHERE id=$1`, id)
}

func (r *UserRepo) get(ctx context.Context, where string, arg any) (models.User, error) {
	var u models.User
	err := r.db.Pool.QueryRow(ctx, `
SELECT id, email, username, COALESCE(full_name,''), hashed_password, is_active, created_at, updated_at
FROM users `+where, arg,
	).Scan(&u.ID, &u.Email, &u.Username, &u.FullName, &u.HashedPassword, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, util.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
