package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("invalid room name")
	ErrInvalidStatus   = errors.New("invalid room status")
	ErrNegativeRate    = errors.New("nightly rate cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

type Room struct {
	id               uuid.UUID
	name             string
	roomTypeID       *uuid.UUID
	status           Status
	description      string
	amenities        []string
	nightlyRateCents int64
	capacity         int
	images           [3]string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(
	name string,
	roomTypeID *uuid.UUID,
	status Status,
	description string,
	amenities []string,
	nightlyRateCents int64,
	capacity int,
	images [3]string,
) (*Room, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidName
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if nightlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:               uuid.New(),
		name:             trimmed,
		roomTypeID:       roomTypeID,
		status:           status,
		description:      description,
		amenities:        amenities,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		images:           images,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	name string,
	roomTypeID *uuid.UUID,
	status Status,
	description string,
	amenities []string,
	nightlyRateCents int64,
	capacity int,
	images [3]string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:               id,
		name:             name,
		roomTypeID:       roomTypeID,
		status:           status,
		description:      description,
		amenities:        amenities,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		images:           images,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (r *Room) ID() uuid.UUID           { return r.id }
func (r *Room) Name() string            { return r.name }
func (r *Room) RoomTypeID() *uuid.UUID  { return r.roomTypeID }
func (r *Room) Status() Status          { return r.status }
func (r *Room) Description() string     { return r.description }
func (r *Room) Amenities() []string     { return r.amenities }
func (r *Room) NightlyRateCents() int64 { return r.nightlyRateCents }
func (r *Room) Capacity() int           { return r.capacity }
func (r *Room) Images() [3]string       { return r.images }
func (r *Room) CreatedAt() time.Time    { return r.createdAt }
func (r *Room) UpdatedAt() time.Time    { return r.updatedAt }
