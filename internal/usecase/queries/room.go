package queries

import (
	"context"
	"time"

	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errs.New("room not found")
	ErrRoomTypeNotFound = errs.New("room type not found")
)

type RoomView struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	RoomTypeID       *uuid.UUID `json:"room_type_id,omitempty"`
	RoomTypeName     *string    `json:"room_type_name,omitempty"`
	Status           string     `json:"status"`
	Description      string     `json:"description"`
	Amenities        []string   `json:"amenities"`
	NightlyRateCents int64      `json:"nightly_rate_cents"`
	Capacity         int32      `json:"capacity"`
	Images           [3]string  `json:"images"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type RoomTypeView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomView, error)
}

type RoomTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	FindAll(ctx context.Context) ([]*RoomTypeView, error)
}

type roomQueriesImpl struct {
	rooms     RoomReadStore
	roomTypes RoomTypeReadStore
}

func NewRoomQueries(rooms RoomReadStore, roomTypes RoomTypeReadStore) RoomQueries {
	return &roomQueriesImpl{
		rooms:     rooms,
		roomTypes: roomTypes,
	}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.rooms.FindAll(ctx)
}

func (q *roomQueriesImpl) GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	view, err := q.roomTypes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return q.roomTypes.FindAll(ctx)
}
