//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domuser "oceanview-backend/internal/domain/user"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/pkg/clock"
	"oceanview-backend/internal/pkg/jwt"
	"oceanview-backend/internal/pkg/password"
	"oceanview-backend/internal/usecase/commands"
	"oceanview-backend/tests/common/builder"
	commandsmock "oceanview-backend/tests/mock/commands"
	queriesmock "oceanview-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	userRepo  *commandsmock.MockUserRepository
	readStore *queriesmock.MockUserReadStore
	notifier  *commandsmock.MockNotifier
	clock     *clock.MockClock
	commands  commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	s.notifier = commandsmock.NewMockNotifier(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))

	jwtService := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	s.commands = commands.NewAuthCommands(s.userRepo, s.readStore, s.notifier, jwtService, s.clock)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()

	s.Run("success: stores a bcrypt hash, never the raw password", func() {
		b := builder.NewUserBuilder()

		s.userRepo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domuser.User) error {
				s.NotEqual(b.Password, u.HashedPassword())
				s.NoError(password.ComparePassword(u.HashedPassword(), b.Password))
				s.Equal(domuser.RoleGuest, u.Role())
				return nil
			})

		view, err := s.commands.Register(ctx, b.BuildRegisterRequest())
		s.Require().NoError(err)
		s.Equal(b.Email, view.Email)
		s.Equal("guest", view.Role)
	})

	s.Run("error: duplicate email", func() {
		b := builder.NewUserBuilder()

		s.userRepo.EXPECT().Create(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey))

		_, err := s.commands.Register(ctx, b.BuildRegisterRequest())
		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("error: malformed email fails before any write", func() {
		b := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.Email = "not-an-email" })

		_, err := s.commands.Register(ctx, b.BuildRegisterRequest())
		s.ErrorIs(err, commands.ErrAuthenticationFailed)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success: returns the user view and a token pair", func() {
		b := builder.NewUserBuilder()
		hashed, err := password.HashPassword(b.Password)
		s.Require().NoError(err)

		s.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(b.BuildReadModel(), hashed, nil)

		result, err := s.commands.Login(ctx, b.BuildLoginRequest())
		s.Require().NoError(err)
		s.Equal(b.Email, result.User.Email)
		s.NotEmpty(result.TokenPair.AccessToken)
		s.NotEmpty(result.TokenPair.RefreshToken)
	})

	s.Run("error: unknown address and wrong password are indistinguishable", func() {
		b := builder.NewUserBuilder()
		hashed, err := password.HashPassword(b.Password)
		s.Require().NoError(err)

		s.readStore.EXPECT().FindByEmail(ctx, b.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
		_, errUnknown := s.commands.Login(ctx, b.BuildLoginRequest())

		s.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(b.BuildReadModel(), hashed, nil)
		wrong := b.BuildLoginRequest()
		wrong.Password = "wrong-password"
		_, errWrong := s.commands.Login(ctx, wrong)

		s.ErrorIs(errUnknown, commands.ErrInvalidCredentials)
		s.ErrorIs(errWrong, commands.ErrInvalidCredentials)
	})
}

func (s *AuthCommandsTestSuite) TestForgotPassword() {
	ctx := context.Background()

	s.Run("success: issues a token and mails it", func() {
		b := builder.NewUserBuilder()
		view := b.BuildReadModel()

		s.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(view, "hash", nil)
		s.userRepo.EXPECT().SetResetToken(ctx, view.ID, gomock.Any(), s.clock.Now().Add(time.Hour)).Return(nil)
		s.notifier.EXPECT().SendPasswordReset(ctx, b.Email, gomock.Any()).Return(nil)

		s.NoError(s.commands.ForgotPassword(ctx, b.Email))
	})

	s.Run("success: unknown address is silently accepted", func() {
		s.readStore.EXPECT().FindByEmail(ctx, "nobody@example.com").
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		s.NoError(s.commands.ForgotPassword(ctx, "nobody@example.com"))
	})

	s.Run("error: mail delivery failure is surfaced", func() {
		b := builder.NewUserBuilder()
		view := b.BuildReadModel()

		s.readStore.EXPECT().FindByEmail(ctx, b.Email).Return(view, "hash", nil)
		s.userRepo.EXPECT().SetResetToken(ctx, view.ID, gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().SendPasswordReset(ctx, b.Email, gomock.Any()).
			Return(infra.WrapRepoErr("send failed", nil))

		s.ErrorIs(s.commands.ForgotPassword(ctx, b.Email), commands.ErrMailDeliveryFailed)
	})
}

func (s *AuthCommandsTestSuite) TestResetPassword() {
	ctx := context.Background()

	s.Run("success: sets the new hash and clears the token", func() {
		userID := uuid.New()

		s.userRepo.EXPECT().FindByResetToken(ctx, "token-1").
			Return(userID, s.clock.Now().Add(30*time.Minute), nil)
		s.userRepo.EXPECT().SetPassword(ctx, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hashed string) error {
				s.NoError(password.ComparePassword(hashed, "new-password-1"))
				return nil
			})
		s.userRepo.EXPECT().ClearResetToken(ctx, userID).Return(nil)

		s.NoError(s.commands.ResetPassword(ctx, "token-1", "new-password-1"))
	})

	s.Run("error: expired token", func() {
		s.userRepo.EXPECT().FindByResetToken(ctx, "token-2").
			Return(uuid.New(), s.clock.Now().Add(-time.Minute), nil)

		s.ErrorIs(s.commands.ResetPassword(ctx, "token-2", "new-password"), commands.ErrInvalidResetToken)
	})

	s.Run("error: unknown token", func() {
		s.userRepo.EXPECT().FindByResetToken(ctx, "token-3").
			Return(uuid.Nil, time.Time{}, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		s.ErrorIs(s.commands.ResetPassword(ctx, "token-3", "new-password"), commands.ErrInvalidResetToken)
	})
}
