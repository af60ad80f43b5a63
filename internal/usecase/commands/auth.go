package commands

import (
	"context"
	"log/slog"
	"time"

	"oceanview-backend/internal/domain/user"
	reqdto "oceanview-backend/internal/handler/dto/request"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/pkg/clock"
	"oceanview-backend/internal/pkg/errs"
	"oceanview-backend/internal/pkg/jwt"
	"oceanview-backend/internal/pkg/password"
	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrInvalidResetToken    = errs.New("invalid or expired reset token")
	ErrMailDeliveryFailed   = errs.New("mail delivery failed")
)

const resetTokenTTL = time.Hour

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	notifier   Notifier
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(
	userRepo UserRepository,
	readStore queries.UserReadStore,
	notifier Notifier,
	jwtService *jwt.Service,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		notifier:   notifier,
		jwtService: jwtService,
		clock:      clock,
	}
}

// Register always creates a guest account; staff and admin accounts are
// provisioned out of band. The password is bcrypt-hashed before it
// reaches the store.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hashed, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity, err := user.NewUser(req.Name, email, hashed, user.RoleGuest)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.AuthorizedUserView{
		ID:    entity.ID(),
		Name:  entity.Name(),
		Email: entity.Email().Value(),
		Role:  entity.Role().String(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	view, hashed, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashed, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.generateTokenPair(view.ID, role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: view, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The account must still exist before the session is renewed
	if _, err := a.readStore.FindByID(ctx, claims.UserID); err != nil {
		return nil, ErrUserNotFound
	}

	return a.generateTokenPair(claims.UserID, role)
}

// ForgotPassword succeeds even when the address is unknown so the
// endpoint cannot be used to probe for registered accounts.
func (a *authCommandsImpl) ForgotPassword(ctx context.Context, email string) error {
	view, _, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		slog.Info("password reset requested for unknown address")
		return nil
	}

	token := uuid.NewString()
	expiresAt := a.clock.Now().Add(resetTokenTTL)

	if err := a.userRepo.SetResetToken(ctx, view.ID, token, expiresAt); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := a.notifier.SendPasswordReset(ctx, view.Email, token); err != nil {
		return errs.Mark(err, ErrMailDeliveryFailed)
	}
	return nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, expiresAt, err := a.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvalidResetToken
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if a.clock.Now().After(expiresAt) {
		return ErrInvalidResetToken
	}

	hashed, err := password.HashPassword(newPassword)
	if err != nil {
		return errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.userRepo.SetPassword(ctx, userID, hashed); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := a.userRepo.ClearResetToken(ctx, userID); err != nil {
		slog.Warn("failed to clear reset token", "user_id", userID, "error", err.Error())
	}
	return nil
}

func (a *authCommandsImpl) generateTokenPair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
