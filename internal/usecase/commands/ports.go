package commands

import (
	"context"
	"time"

	"oceanview-backend/internal/domain/invoice"
	"oceanview-backend/internal/domain/reservation"
	"oceanview-backend/internal/domain/room"
	"oceanview-backend/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type RoomSnapshot struct {
	ID               uuid.UUID
	Name             string
	NightlyRateCents int64
}

type GuestSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindActiveStaysByRoom(ctx context.Context, roomID uuid.UUID) ([]reservation.StayRange, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status reservation.PaymentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type InvoiceRepository interface {
	// Upsert creates the invoice for its reservation or overwrites the
	// existing one in place; one invoice per reservation.
	Upsert(ctx context.Context, inv *invoice.Invoice) error
}

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type GuestReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	SetPassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	FindByResetToken(ctx context.Context, token string) (uuid.UUID, time.Time, error)
	ClearResetToken(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, rm *room.Room) error
	Update(ctx context.Context, rm *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *room.RoomType) error
	Update(ctx context.Context, rt *room.RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationDecisionEmail struct {
	GuestName  string
	GuestEmail string
	RoomName   string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalCents int64
	Approved   bool
}

type ContactInquiry struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Notifier delivers templated mail to guests and staff. Callers decide
// whether a delivery failure is fatal; the reservation lifecycle swallows it.
type Notifier interface {
	SendReservationDecision(ctx context.Context, email ReservationDecisionEmail) error
	SendPasswordReset(ctx context.Context, recipient, resetToken string) error
	SendContactInquiry(ctx context.Context, inquiry ContactInquiry) error
}
