package readstore

import (
	"context"
	"strings"

	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/infra/db"
	"oceanview-backend/internal/pkg/pgconv"
	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	query := `SELECT id, name, email, role, created_at FROM users WHERE id = $1`

	var (
		view      queries.AuthorizedUserView
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Email, &view.Role, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	query := `SELECT id, name, email, role, password_hash, created_at FROM users WHERE email = $1`

	var (
		view         queries.AuthorizedUserView
		passwordHash string
		createdAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&view.ID, &view.Name, &view.Email, &view.Role, &passwordHash, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, passwordHash, nil
}
