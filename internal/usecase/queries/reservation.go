package queries

import (
	"context"
	"time"

	"oceanview-backend/internal/domain/reservation"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidDateRange    = errs.New("invalid date range")
)

// Read models (DTO for read side)
type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	GuestID       uuid.UUID `json:"guest_id"`
	GuestName     string    `json:"guest_name"`
	GuestEmail    string    `json:"guest_email"`
	RoomID        uuid.UUID `json:"room_id"`
	RoomName      string    `json:"room_name"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	TotalNights   int32     `json:"total_nights"`
	TotalCents    int64     `json:"total_cents"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	GuestID    uuid.UUID `json:"guest_id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReservationQueries interface {
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationListItem, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*ReservationListItem, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationListItem, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationListItem, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*ReservationListItem, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*ReservationListItem, error)
	FindActiveStaysByRoom(ctx context.Context, roomID uuid.UUID) ([]reservation.StayRange, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

// CheckAvailability is a read-only probe with no exclusivity guarantee:
// a concurrent create can still win the slot between this check and a
// later booking. A room with no reservations (including an unknown room
// id) reads as available.
func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	stay, err := reservation.NewStayRange(checkIn, checkOut)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidDateRange)
	}

	occupied, err := q.readStore.FindActiveStaysByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}

	return reservation.IsAvailable(stay, occupied), nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationListItem, error) {
	return q.readStore.FindAll(ctx)
}

func (q *reservationQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*ReservationListItem, error) {
	return q.readStore.FindByGuestID(ctx, guestID)
}

func (q *reservationQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationListItem, error) {
	return q.readStore.FindByRoomID(ctx, roomID)
}
