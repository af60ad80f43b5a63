//go:build unit || e2e

package builder

import (
	"time"

	domuser "oceanview-backend/internal/domain/user"
	reqdto "oceanview-backend/internal/handler/dto/request"
	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Name:      "Test Guest",
		Email:     "guest@example.com",
		Password:  "password123",
		Role:      "guest",
		CreatedAt: time.Now().UTC(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain(hashedPassword string) (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := domuser.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(b.Name, email, hashedPassword, role)
}

func (b *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Role:      b.Role,
		CreatedAt: b.CreatedAt,
	}
}

func (b *UserBuilder) BuildRegisterRequest() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     b.Name,
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildLoginRequest() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}
