package response

import (
	"time"

	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	GuestID       uuid.UUID `json:"guestId"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	RoomID        uuid.UUID `json:"roomId"`
	RoomName      string    `json:"roomName"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	TotalNights   int32     `json:"totalNights"`
	TotalCents    int64     `json:"totalCents"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID         uuid.UUID `json:"id"`
	GuestID    uuid.UUID `json:"guestId"`
	RoomID     uuid.UUID `json:"roomId"`
	RoomName   string    `json:"roomName"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	TotalCents int64     `json:"totalCents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Available bool      `json:"available"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rm.ID,
		GuestID:       rm.GuestID,
		GuestName:     rm.GuestName,
		GuestEmail:    rm.GuestEmail,
		RoomID:        rm.RoomID,
		RoomName:      rm.RoomName,
		CheckIn:       rm.CheckIn.Format(time.DateOnly),
		CheckOut:      rm.CheckOut.Format(time.DateOnly),
		TotalNights:   rm.TotalNights,
		TotalCents:    rm.TotalCents,
		Status:        rm.Status,
		PaymentStatus: rm.PaymentStatus,
		Notes:         rm.Notes,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:         rm.ID,
		GuestID:    rm.GuestID,
		RoomID:     rm.RoomID,
		RoomName:   rm.RoomName,
		CheckIn:    rm.CheckIn.Format(time.DateOnly),
		CheckOut:   rm.CheckOut.Format(time.DateOnly),
		TotalCents: rm.TotalCents,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
	}
}
