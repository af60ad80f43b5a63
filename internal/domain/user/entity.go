package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail            = errors.New("invalid email address")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidName             = errors.New("invalid display name")
	ErrInvalidCredentialFormat = errors.New("invalid credential format")
)

type User struct {
	id             uuid.UUID
	name           string
	email          Email
	hashedPassword string
	role           Role
	createdAt      time.Time
	updatedAt      time.Time
}

func NewUser(name string, email Email, hashedPassword string, role Role) (*User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:             uuid.New(),
		name:           trimmed,
		email:          email,
		hashedPassword: hashedPassword,
		role:           role,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	hashedPassword string,
	role Role,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:             id,
		name:           name,
		email:          email,
		hashedPassword: hashedPassword,
		role:           role,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (u *User) IsStaff() bool {
	return u.role == RoleStaff || u.role == RoleAdmin
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Name() string           { return u.name }
func (u *User) Email() Email           { return u.email }
func (u *User) HashedPassword() string { return u.hashedPassword }
func (u *User) Role() Role             { return u.role }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }
