package response

import (
	"time"

	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	GuestID       uuid.UUID `json:"guestId"`
	GuestName     string    `json:"guestName"`
	RoomName      string    `json:"roomName"`
	TotalCents    int64     `json:"totalCents"`
	PaymentStatus string    `json:"paymentStatus"`
	IssuedAt      time.Time `json:"issuedAt"`
}

func FromInvoiceView(rm *queries.InvoiceView) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		GuestID:       rm.GuestID,
		GuestName:     rm.GuestName,
		RoomName:      rm.RoomName,
		TotalCents:    rm.TotalCents,
		PaymentStatus: rm.PaymentStatus,
		IssuedAt:      rm.IssuedAt,
	}
}
