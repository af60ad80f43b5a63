package room

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type RoomType struct {
	id        uuid.UUID
	name      string
	category  string
	createdAt time.Time
	updatedAt time.Time
}

func NewRoomType(name, category string) (*RoomType, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidName
	}

	return &RoomType{
		id:       uuid.New(),
		name:     trimmed,
		category: strings.TrimSpace(category),
	}, nil
}

func ReconstructRoomType(id uuid.UUID, name, category string, createdAt, updatedAt time.Time) *RoomType {
	return &RoomType{
		id:        id,
		name:      name,
		category:  category,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *RoomType) ID() uuid.UUID        { return t.id }
func (t *RoomType) Name() string         { return t.name }
func (t *RoomType) Category() string     { return t.category }
func (t *RoomType) CreatedAt() time.Time { return t.createdAt }
func (t *RoomType) UpdatedAt() time.Time { return t.updatedAt }
