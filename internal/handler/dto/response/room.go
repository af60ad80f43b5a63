package response

import (
	"time"

	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	RoomTypeID       *uuid.UUID `json:"roomTypeId,omitempty"`
	RoomTypeName     *string    `json:"roomTypeName,omitempty"`
	Status           string     `json:"status"`
	Description      string     `json:"description"`
	Amenities        []string   `json:"amenities"`
	NightlyRateCents int64      `json:"nightlyRateCents"`
	Capacity         int32      `json:"capacity"`
	Images           [3]string  `json:"images"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type RoomTypeResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:               rm.ID,
		Name:             rm.Name,
		RoomTypeID:       rm.RoomTypeID,
		RoomTypeName:     rm.RoomTypeName,
		Status:           rm.Status,
		Description:      rm.Description,
		Amenities:        rm.Amenities,
		NightlyRateCents: rm.NightlyRateCents,
		Capacity:         rm.Capacity,
		Images:           rm.Images,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromRoomTypeView(rm *queries.RoomTypeView) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:       rm.ID,
		Name:     rm.Name,
		Category: rm.Category,
	}
}
