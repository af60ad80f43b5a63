//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"oceanview-backend/internal/domain/invoice"
	"oceanview-backend/internal/domain/reservation"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/pkg/clock"
	"oceanview-backend/internal/usecase/commands"
	"oceanview-backend/tests/common/builder"
	commandsmock "oceanview-backend/tests/mock/commands"
	queriesmock "oceanview-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	reservationRepo *commandsmock.MockReservationRepository
	invoiceRepo     *commandsmock.MockInvoiceRepository
	roomReader      *commandsmock.MockRoomReader
	guestReader     *commandsmock.MockGuestReader
	notifier        *commandsmock.MockNotifier
	queries         *queriesmock.MockReservationQueries
	clock           *clock.MockClock
	commands        commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reservationRepo = commandsmock.NewMockReservationRepository(s.ctrl)
	s.invoiceRepo = commandsmock.NewMockInvoiceRepository(s.ctrl)
	s.roomReader = commandsmock.NewMockRoomReader(s.ctrl)
	s.guestReader = commandsmock.NewMockGuestReader(s.ctrl)
	s.notifier = commandsmock.NewMockNotifier(s.ctrl)
	s.queries = queriesmock.NewMockReservationQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))

	s.commands = commands.NewReservationCommands(
		s.reservationRepo, s.invoiceRepo, s.roomReader, s.guestReader,
		s.notifier, s.queries, s.clock,
	)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) pendingReservation(b *builder.ReservationBuilder) *reservation.Reservation {
	res, err := b.BuildDomain()
	s.Require().NoError(err)
	return res
}

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	ctx := context.Background()

	s.Run("success: rate captured from the room at booking time", func() {
		b := builder.NewReservationBuilder()
		req := b.BuildCreateRequest()
		view := b.BuildView()

		s.roomReader.EXPECT().FindByID(ctx, b.RoomID).Return(b.BuildRoomSnapshot(), nil)
		s.reservationRepo.EXPECT().FindActiveStaysByRoom(ctx, b.RoomID).Return(nil, nil)
		s.reservationRepo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				s.Equal(b.GuestID, res.GuestID())
				s.Equal(int64(20000), res.TotalCost().Cents())
				s.Equal(reservation.StatusPending, res.Status())
				s.Equal(reservation.PaymentUnpaid, res.PaymentStatus())
				return nil
			})
		s.queries.EXPECT().GetByID(ctx, gomock.Any()).Return(view, nil)

		got, err := s.commands.CreateReservation(ctx, req, b.GuestID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: invalid date range", func() {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CheckOut = b.CheckIn
		})

		_, err := s.commands.CreateReservation(ctx, b.BuildCreateRequest(), b.GuestID)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("error: unknown room", func() {
		b := builder.NewReservationBuilder()

		s.roomReader.EXPECT().FindByID(ctx, b.RoomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := s.commands.CreateReservation(ctx, b.BuildCreateRequest(), b.GuestID)
		s.ErrorIs(err, commands.ErrRoomNotFound)
	})

	s.Run("error: overlapping active stay blocks the booking", func() {
		b := builder.NewReservationBuilder()
		conflicting, err := reservation.NewStayRange(b.CheckIn.AddDate(0, 0, 1), b.CheckOut.AddDate(0, 0, 1))
		s.Require().NoError(err)

		s.roomReader.EXPECT().FindByID(ctx, b.RoomID).Return(b.BuildRoomSnapshot(), nil)
		s.reservationRepo.EXPECT().FindActiveStaysByRoom(ctx, b.RoomID).
			Return([]reservation.StayRange{conflicting}, nil)

		_, err = s.commands.CreateReservation(ctx, b.BuildCreateRequest(), b.GuestID)
		s.ErrorIs(err, commands.ErrRoomUnavailable)
	})

	s.Run("success: back-to-back stay is accepted", func() {
		b := builder.NewReservationBuilder()
		adjacent, err := reservation.NewStayRange(b.CheckIn.AddDate(0, 0, -2), b.CheckIn)
		s.Require().NoError(err)

		s.roomReader.EXPECT().FindByID(ctx, b.RoomID).Return(b.BuildRoomSnapshot(), nil)
		s.reservationRepo.EXPECT().FindActiveStaysByRoom(ctx, b.RoomID).
			Return([]reservation.StayRange{adjacent}, nil)
		s.reservationRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		s.queries.EXPECT().GetByID(ctx, gomock.Any()).Return(b.BuildView(), nil)

		_, err = s.commands.CreateReservation(ctx, b.BuildCreateRequest(), b.GuestID)
		s.NoError(err)
	})
}

func (s *ReservationCommandsTestSuite) TestUpdateStatus_Approve() {
	ctx := context.Background()

	s.Run("success: approval writes the invoice and mails the guest", func() {
		b := builder.NewReservationBuilder()
		entity := s.pendingReservation(b)

		s.reservationRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		s.reservationRepo.EXPECT().UpdateStatus(ctx, entity.ID(), reservation.StatusApproved).Return(nil)
		s.guestReader.EXPECT().FindByID(ctx, b.GuestID).Return(b.BuildGuestSnapshot(), nil).Times(2)
		s.roomReader.EXPECT().FindByID(ctx, b.RoomID).Return(b.BuildRoomSnapshot(), nil).Times(2)
		s.invoiceRepo.EXPECT().Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
				s.Equal(entity.ID(), inv.ReservationID())
				s.Equal(b.GuestName, inv.GuestName())
				s.Equal(b.RoomName, inv.RoomName())
				s.Equal(entity.TotalCost().Cents(), inv.TotalPrice().Cents())
				s.Equal(s.clock.Now(), inv.IssuedAt())
				return nil
			})
		s.notifier.EXPECT().SendReservationDecision(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, email commands.ReservationDecisionEmail) error {
				s.True(email.Approved)
				s.Equal(b.GuestEmail, email.GuestEmail)
				return nil
			})
		s.queries.EXPECT().GetByID(ctx, entity.ID()).Return(b.BuildView(), nil)

		_, err := s.commands.UpdateStatus(ctx, entity.ID(), "approved")
		s.NoError(err)
	})

	s.Run("success: dangling guest and room degrade to placeholder names", func() {
		b := builder.NewReservationBuilder()
		entity := s.pendingReservation(b)
		lookupErr := infra.WrapRepoErr("not found", nil, infra.KindNotFound)

		s.reservationRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		s.reservationRepo.EXPECT().UpdateStatus(ctx, entity.ID(), reservation.StatusApproved).Return(nil)
		s.guestReader.EXPECT().FindByID(ctx, b.GuestID).Return(nil, lookupErr).Times(2)
		s.roomReader.EXPECT().FindByID(ctx, b.RoomID).Return(nil, lookupErr)
		s.invoiceRepo.EXPECT().Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
				s.Equal(invoice.UnknownGuestName, inv.GuestName())
				s.Equal(invoice.UnknownRoomName, inv.RoomName())
				return nil
			})
		// Guest unreachable: no notification is attempted.
		s.queries.EXPECT().GetByID(ctx, entity.ID()).Return(b.BuildView(), nil)

		_, err := s.commands.UpdateStatus(ctx, entity.ID(), "approved")
		s.NoError(err)
	})

	s.Run("success: notifier failure does not fail the approval", func() {
		b := builder.NewReservationBuilder()
		entity := s.pendingReservation(b)

		s.reservationRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		s.reservationRepo.EXPECT().UpdateStatus(ctx, entity.ID(), reservation.StatusApproved).Return(nil)
		s.guestReader.EXPECT().FindByID(ctx, b.GuestID).Return(b.BuildGuestSnapshot(), nil).Times(2)
		s.roomReader.EXPECT().FindByID(ctx, b.RoomID).Return(b.BuildRoomSnapshot(), nil).Times(2)
		s.invoiceRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		s.notifier.EXPECT().SendReservationDecision(ctx, gomock.Any()).
			Return(errors.New("smtp unreachable"))
		s.queries.EXPECT().GetByID(ctx, entity.ID()).Return(b.BuildView(), nil)

		_, err := s.commands.UpdateStatus(ctx, entity.ID(), "approved")
		s.NoError(err)
	})

	s.Run("error: invoice failure surfaces after the status write", func() {
		b := builder.NewReservationBuilder()
		entity := s.pendingReservation(b)

		s.reservationRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		s.reservationRepo.EXPECT().UpdateStatus(ctx, entity.ID(), reservation.StatusApproved).Return(nil)
		s.guestReader.EXPECT().FindByID(ctx, b.GuestID).Return(b.BuildGuestSnapshot(), nil)
		s.roomReader.EXPECT().FindByID(ctx, b.RoomID).Return(b.BuildRoomSnapshot(), nil)
		s.invoiceRepo.EXPECT().Upsert(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("insert failed", errors.New("connection reset")))

		_, err := s.commands.UpdateStatus(ctx, entity.ID(), "approved")
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *ReservationCommandsTestSuite) TestUpdateStatus_Reject() {
	ctx := context.Background()

	s.Run("success: rejection mails the guest and writes no invoice", func() {
		b := builder.NewReservationBuilder()
		entity := s.pendingReservation(b)

		s.reservationRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		s.reservationRepo.EXPECT().UpdateStatus(ctx, entity.ID(), reservation.StatusRejected).Return(nil)
		s.guestReader.EXPECT().FindByID(ctx, b.GuestID).Return(b.BuildGuestSnapshot(), nil)
		s.roomReader.EXPECT().FindByID(ctx, b.RoomID).Return(b.BuildRoomSnapshot(), nil)
		s.notifier.EXPECT().SendReservationDecision(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, email commands.ReservationDecisionEmail) error {
				s.False(email.Approved)
				return nil
			})
		s.queries.EXPECT().GetByID(ctx, entity.ID()).Return(b.BuildView(), nil)

		_, err := s.commands.UpdateStatus(ctx, entity.ID(), "rejected")
		s.NoError(err)
	})

	s.Run("success: revert to pending has no side effects", func() {
		b := builder.NewReservationBuilder()
		entity := s.pendingReservation(b)

		s.reservationRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		s.reservationRepo.EXPECT().UpdateStatus(ctx, entity.ID(), reservation.StatusPending).Return(nil)
		s.queries.EXPECT().GetByID(ctx, entity.ID()).Return(b.BuildView(), nil)

		_, err := s.commands.UpdateStatus(ctx, entity.ID(), "pending")
		s.NoError(err)
	})

	s.Run("error: invalid status value", func() {
		_, err := s.commands.UpdateStatus(ctx, uuid.New(), "cancelled")
		s.ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("error: unknown reservation triggers no side effects", func() {
		id := uuid.New()
		s.reservationRepo.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.commands.UpdateStatus(ctx, id, "approved")
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}

func (s *ReservationCommandsTestSuite) TestUpdatePaymentStatus() {
	ctx := context.Background()

	s.Run("success: payment axis moves without lifecycle side effects", func() {
		b := builder.NewReservationBuilder()
		entity := s.pendingReservation(b)

		s.reservationRepo.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		s.reservationRepo.EXPECT().UpdatePaymentStatus(ctx, entity.ID(), reservation.PaymentPaid).Return(nil)
		s.queries.EXPECT().GetByID(ctx, entity.ID()).Return(b.BuildView(), nil)

		_, err := s.commands.UpdatePaymentStatus(ctx, entity.ID(), "paid")
		s.NoError(err)
	})

	s.Run("error: invalid payment status value", func() {
		_, err := s.commands.UpdatePaymentStatus(ctx, uuid.New(), "approved")
		s.ErrorIs(err, commands.ErrDomainValidation)
	})
}

func (s *ReservationCommandsTestSuite) TestDeleteReservation() {
	ctx := context.Background()

	s.Run("success: delete leaves invoices untouched", func() {
		id := uuid.New()
		s.reservationRepo.EXPECT().Delete(ctx, id).Return(nil)

		s.NoError(s.commands.DeleteReservation(ctx, id))
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.reservationRepo.EXPECT().Delete(ctx, id).
			Return(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		s.ErrorIs(s.commands.DeleteReservation(ctx, id), commands.ErrReservationNotFound)
	})
}
