package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayRange     = errors.New("check-in must be before check-out")
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrNegativeRate         = errors.New("nightly rate cannot be negative")
)

type Reservation struct {
	id            uuid.UUID
	guestID       uuid.UUID
	roomID        uuid.UUID
	stay          StayRange
	totalNights   int
	totalCost     Money
	status        Status
	paymentStatus PaymentStatus
	notes         Note
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation captures the room's nightly rate at booking time:
// totalCost is derived once here and never recomputed from later rate edits.
func NewReservation(
	guestID, roomID uuid.UUID,
	stay StayRange,
	nightlyRate Money,
	notes Note,
) (*Reservation, error) {
	if nightlyRate.Cents() < 0 {
		return nil, ErrNegativeRate
	}

	nights := stay.Nights()

	return &Reservation{
		id:            uuid.New(),
		guestID:       guestID,
		roomID:        roomID,
		stay:          stay,
		totalNights:   nights,
		totalCost:     nightlyRate.MultiplyBy(nights),
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		notes:         notes,
	}, nil
}

func ReconstructReservation(
	id, guestID, roomID uuid.UUID,
	stay StayRange,
	totalNights int,
	totalCost Money,
	status Status,
	paymentStatus PaymentStatus,
	notes Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		guestID:       guestID,
		roomID:        roomID,
		stay:          stay,
		totalNights:   totalNights,
		totalCost:     totalCost,
		status:        status,
		paymentStatus: paymentStatus,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

// BlocksRoom reports whether this reservation occupies its room's slot for
// availability purposes. An unresolved pending request still blocks the slot
// to avoid double-commitment; only rejection frees it.
func (r *Reservation) BlocksRoom() bool {
	return r.status != StatusRejected
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) GuestID() uuid.UUID           { return r.guestID }
func (r *Reservation) RoomID() uuid.UUID            { return r.roomID }
func (r *Reservation) Stay() StayRange              { return r.stay }
func (r *Reservation) TotalNights() int             { return r.totalNights }
func (r *Reservation) TotalCost() Money             { return r.totalCost }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) Notes() Note                  { return r.notes }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
