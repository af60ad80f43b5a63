package queries

import (
	"context"
	"time"

	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvoiceNotFound = errs.New("invoice not found")

type InvoiceView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	GuestID       uuid.UUID `json:"guest_id"`
	GuestName     string    `json:"guest_name"`
	RoomName      string    `json:"room_name"`
	TotalCents    int64     `json:"total_cents"`
	PaymentStatus string    `json:"payment_status"`
	IssuedAt      time.Time `json:"issued_at"`
}

type InvoiceQueries interface {
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context) ([]*InvoiceView, error)
}

type InvoiceReadStore interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*InvoiceView, error)
	FindAll(ctx context.Context) ([]*InvoiceView, error)
}

type invoiceQueriesImpl struct {
	readStore InvoiceReadStore
}

func NewInvoiceQueries(readStore InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{readStore: readStore}
}

func (q *invoiceQueriesImpl) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*InvoiceView, error) {
	view, err := q.readStore.FindByReservationID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *invoiceQueriesImpl) List(ctx context.Context) ([]*InvoiceView, error) {
	return q.readStore.FindAll(ctx)
}
