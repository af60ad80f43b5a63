package readstore

import (
	"context"

	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/infra/db"
	"oceanview-backend/internal/pkg/pgconv"
	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `
	r.id, r.name, r.room_type_id, rt.name,
	r.status, r.description, r.amenities, r.nightly_rate_cents, r.capacity,
	r.image1, r.image2, r.image3, r.created_at, r.updated_at
`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		LEFT JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms r
		LEFT JOIN room_types rt ON rt.id = r.room_type_id
		ORDER BY r.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomView(row rowScanner) (*queries.RoomView, error) {
	var (
		view                 queries.RoomView
		roomTypeID           pgtype.UUID
		roomTypeName         pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.Name, &roomTypeID, &roomTypeName,
		&view.Status, &view.Description, &view.Amenities,
		&view.NightlyRateCents, &view.Capacity,
		&view.Images[0], &view.Images[1], &view.Images[2],
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.RoomTypeID = pgconv.UUIDPtrFromPgtype(roomTypeID)
	view.RoomTypeName = pgconv.StringPtrFromPgtype(roomTypeName)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

type RoomTypeReadStore struct {
	db db.DBTX
}

func NewRoomTypeReadStore(db db.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{db: db}
}

func (r *RoomTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	query := `SELECT id, name, category, created_at, updated_at FROM room_types WHERE id = $1`

	var (
		view                 queries.RoomTypeView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Category, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (r *RoomTypeReadStore) FindAll(ctx context.Context) ([]*queries.RoomTypeView, error) {
	query := `SELECT id, name, category, created_at, updated_at FROM room_types ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var views []*queries.RoomTypeView
	for rows.Next() {
		var (
			view                 queries.RoomTypeView
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Category, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}
	return views, nil
}
