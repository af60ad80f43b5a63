package request

import (
	"oceanview-backend/internal/domain/room"

	"github.com/google/uuid"
)

type RoomRequest struct {
	Name             string     `json:"name" binding:"required"`
	RoomTypeID       *uuid.UUID `json:"room_type_id,omitempty"`
	Status           string     `json:"status" binding:"required"`
	Description      string     `json:"description"`
	Amenities        []string   `json:"amenities"`
	NightlyRateCents int64      `json:"nightly_rate_cents" binding:"required"`
	Capacity         int        `json:"capacity" binding:"required"`
	Images           [3]string  `json:"images"`
}

func (r RoomRequest) ToDomain() (*room.Room, error) {
	return room.NewRoom(
		r.Name,
		r.RoomTypeID,
		room.Status(r.Status),
		r.Description,
		r.Amenities,
		r.NightlyRateCents,
		r.Capacity,
		r.Images,
	)
}

// ToDomainWithID rebuilds the room for an update so the validated fields
// replace the stored row under the existing id.
func (r RoomRequest) ToDomainWithID(id uuid.UUID) (*room.Room, error) {
	entity, err := r.ToDomain()
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoom(
		id,
		entity.Name(),
		entity.RoomTypeID(),
		entity.Status(),
		entity.Description(),
		entity.Amenities(),
		entity.NightlyRateCents(),
		entity.Capacity(),
		entity.Images(),
		entity.CreatedAt(),
		entity.UpdatedAt(),
	), nil
}

type RoomTypeRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}
