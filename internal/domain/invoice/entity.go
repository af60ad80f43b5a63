package invoice

import (
	"time"

	"oceanview-backend/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	// Placeholder names used when a referenced guest or room record no
	// longer exists; invoicing never blocks on a dangling reference.
	UnknownGuestName = "Unknown Guest"
	UnknownRoomName  = "Unknown Room"
)

// Invoice is a denormalized billing snapshot keyed by reservation id.
// Fields are copied at generation time and are not kept in sync with later
// edits to the guest, room, or reservation.
type Invoice struct {
	id            uuid.UUID
	reservationID uuid.UUID
	guestID       uuid.UUID
	guestName     string
	roomName      string
	totalPrice    reservation.Money
	paymentStatus reservation.PaymentStatus
	issuedAt      time.Time
}

func NewInvoice(
	reservationID, guestID uuid.UUID,
	guestName, roomName string,
	totalPrice reservation.Money,
	paymentStatus reservation.PaymentStatus,
	issuedAt time.Time,
) *Invoice {
	if guestName == "" {
		guestName = UnknownGuestName
	}
	if roomName == "" {
		roomName = UnknownRoomName
	}

	return &Invoice{
		id:            uuid.New(),
		reservationID: reservationID,
		guestID:       guestID,
		guestName:     guestName,
		roomName:      roomName,
		totalPrice:    totalPrice,
		paymentStatus: paymentStatus,
		issuedAt:      issuedAt,
	}
}

func ReconstructInvoice(
	id, reservationID, guestID uuid.UUID,
	guestName, roomName string,
	totalPrice reservation.Money,
	paymentStatus reservation.PaymentStatus,
	issuedAt time.Time,
) *Invoice {
	return &Invoice{
		id:            id,
		reservationID: reservationID,
		guestID:       guestID,
		guestName:     guestName,
		roomName:      roomName,
		totalPrice:    totalPrice,
		paymentStatus: paymentStatus,
		issuedAt:      issuedAt,
	}
}

func (i *Invoice) ID() uuid.UUID                             { return i.id }
func (i *Invoice) ReservationID() uuid.UUID                  { return i.reservationID }
func (i *Invoice) GuestID() uuid.UUID                        { return i.guestID }
func (i *Invoice) GuestName() string                         { return i.guestName }
func (i *Invoice) RoomName() string                          { return i.roomName }
func (i *Invoice) TotalPrice() reservation.Money             { return i.totalPrice }
func (i *Invoice) PaymentStatus() reservation.PaymentStatus { return i.paymentStatus }
func (i *Invoice) IssuedAt() time.Time                       { return i.issuedAt }
