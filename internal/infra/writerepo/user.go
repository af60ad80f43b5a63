package writerepo

import (
	"context"
	"time"

	"oceanview-backend/internal/domain/user"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/infra/db"
	"oceanview-backend/internal/pkg/pgconv"
	"oceanview-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
	`

	_, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Name(),
		u.Email().Value(),
		u.HashedPassword(),
		u.Role().String(),
	)
	if err != nil {
		return infra.WrapPgErr("failed to create user", err)
	}
	return nil
}

// FindByID serves the invoicing/notification flow as GuestReader; the
// snapshot carries only what a mail template needs.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.GuestSnapshot, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`

	var snap commands.GuestSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &snap, nil
}

func (r *UserRepository) SetPassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, hashedPassword,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET reset_token = $2, reset_token_expires_at = $3, updated_at = now() WHERE id = $1`,
		id, token, expiresAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set reset token", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (uuid.UUID, time.Time, error) {
	query := `SELECT id, reset_token_expires_at FROM users WHERE reset_token = $1`

	var (
		id        uuid.UUID
		expiresAt time.Time
	)
	err := r.db.QueryRow(ctx, query, token).Scan(&id, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, time.Time{}, infra.WrapRepoErr("reset token not found", err, infra.KindNotFound)
		}
		return uuid.Nil, time.Time{}, infra.WrapRepoErr("failed to find reset token", err)
	}
	return id, expiresAt, nil
}

func (r *UserRepository) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET reset_token = NULL, reset_token_expires_at = NULL, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to clear reset token", err)
	}
	return nil
}
