package writerepo

import (
	"context"

	"oceanview-backend/internal/domain/room"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/infra/db"
	"oceanview-backend/internal/pkg/pgconv"
	"oceanview-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(db db.DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

// FindByID returns the write-side snapshot the booking flow needs: the
// display name and the current nightly rate captured into new
// reservations.
func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	query := `SELECT id, name, nightly_rate_cents FROM rooms WHERE id = $1`

	var snap commands.RoomSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.NightlyRateCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return &snap, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	query := `
		INSERT INTO rooms (id, name, room_type_id, status, description, amenities, nightly_rate_cents, capacity, image1, image2, image3, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	`

	images := rm.Images()
	_, err := r.db.Exec(ctx, query,
		rm.ID(),
		rm.Name(),
		pgconv.UUIDPtrToPgtype(rm.RoomTypeID()),
		rm.Status().String(),
		rm.Description(),
		rm.Amenities(),
		rm.NightlyRateCents(),
		int32(rm.Capacity()),
		images[0], images[1], images[2],
	)
	if err != nil {
		return infra.WrapPgErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	query := `
		UPDATE rooms SET
			name = $2,
			room_type_id = $3,
			status = $4,
			description = $5,
			amenities = $6,
			nightly_rate_cents = $7,
			capacity = $8,
			image1 = $9, image2 = $10, image3 = $11,
			updated_at = now()
		WHERE id = $1
	`

	images := rm.Images()
	tag, err := r.db.Exec(ctx, query,
		rm.ID(),
		rm.Name(),
		pgconv.UUIDPtrToPgtype(rm.RoomTypeID()),
		rm.Status().String(),
		rm.Description(),
		rm.Amenities(),
		rm.NightlyRateCents(),
		int32(rm.Capacity()),
		images[0], images[1], images[2],
	)
	if err != nil {
		return infra.WrapPgErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapPgErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

type RoomTypeRepository struct {
	db db.DBTX
}

func NewRoomTypeRepository(db db.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *room.RoomType) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO room_types (id, name, category, created_at, updated_at) VALUES ($1, $2, $3, now(), now())`,
		rt.ID(), rt.Name(), rt.Category(),
	)
	if err != nil {
		return infra.WrapPgErr("failed to create room type", err)
	}
	return nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *room.RoomType) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE room_types SET name = $2, category = $3, updated_at = now() WHERE id = $1`,
		rt.ID(), rt.Name(), rt.Category(),
	)
	if err != nil {
		return infra.WrapPgErr("failed to update room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		return infra.WrapPgErr("failed to delete room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}
