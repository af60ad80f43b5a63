//go:build unit || e2e

package builder

import (
	"time"

	domres "oceanview-backend/internal/domain/reservation"
	reqdto "oceanview-backend/internal/handler/dto/request"
	"oceanview-backend/internal/usecase/commands"
	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID               uuid.UUID
	GuestID          uuid.UUID
	GuestName        string
	GuestEmail       string
	RoomID           uuid.UUID
	RoomName         string
	CheckIn          time.Time
	CheckOut         time.Time
	NightlyRateCents int64
	Notes            string
	Status           string
	PaymentStatus    string
	CreatedAt        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC()
	return &ReservationBuilder{
		ID:               uuid.New(),
		GuestID:          uuid.New(),
		GuestName:        "Alice Carter",
		GuestEmail:       "alice@example.com",
		RoomID:           uuid.New(),
		RoomName:         "Seaview 101",
		CheckIn:          time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		NightlyRateCents: 10000,
		Notes:            "",
		Status:           "pending",
		PaymentStatus:    "unpaid",
		CreatedAt:        now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildStay() (domres.StayRange, error) {
	return domres.NewStayRange(b.CheckIn, b.CheckOut)
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(b.GuestID, b.RoomID, stay, domres.NewMoney(b.NightlyRateCents), domres.NewNote(b.Notes))
}

func (b *ReservationBuilder) BuildCreateRequest() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
	if b.Notes != "" {
		notes := b.Notes
		req.Notes = &notes
	}
	return req
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	nights := int32(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	view := &queries.ReservationView{
		ID:            b.ID,
		GuestID:       b.GuestID,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		RoomID:        b.RoomID,
		RoomName:      b.RoomName,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		TotalNights:   nights,
		TotalCents:    b.NightlyRateCents * int64(nights),
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
	if b.Notes != "" {
		notes := b.Notes
		view.Notes = &notes
	}
	return view
}

func (b *ReservationBuilder) BuildRoomSnapshot() *commands.RoomSnapshot {
	return &commands.RoomSnapshot{
		ID:               b.RoomID,
		Name:             b.RoomName,
		NightlyRateCents: b.NightlyRateCents,
	}
}

func (b *ReservationBuilder) BuildGuestSnapshot() *commands.GuestSnapshot {
	return &commands.GuestSnapshot{
		ID:    b.GuestID,
		Name:  b.GuestName,
		Email: b.GuestEmail,
	}
}
