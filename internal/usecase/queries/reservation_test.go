//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"oceanview-backend/internal/domain/reservation"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/usecase/queries"
	queriesmock "oceanview-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	readStore *queriesmock.MockReservationReadStore
	queries   queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.readStore = queriesmock.NewMockReservationReadStore(s.ctrl)
	s.queries = queries.NewReservationQueries(s.readStore)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(s *ReservationQueriesTestSuite, in, out time.Time) reservation.StayRange {
	stay, err := reservation.NewStayRange(in, out)
	s.Require().NoError(err)
	return stay
}

func (s *ReservationQueriesTestSuite) TestCheckAvailability() {
	ctx := context.Background()
	roomID := uuid.New()

	s.Run("room with no active stays is available", func() {
		s.readStore.EXPECT().
			FindActiveStaysByRoom(ctx, roomID).
			Return(nil, nil)

		available, err := s.queries.CheckAvailability(ctx, roomID, day(2024, 3, 1), day(2024, 3, 5))

		s.NoError(err)
		s.True(available)
	})

	s.Run("overlapping stay blocks the room", func() {
		occupied := []reservation.StayRange{
			mustStay(s, day(2024, 3, 3), day(2024, 3, 7)),
		}
		s.readStore.EXPECT().
			FindActiveStaysByRoom(ctx, roomID).
			Return(occupied, nil)

		available, err := s.queries.CheckAvailability(ctx, roomID, day(2024, 3, 1), day(2024, 3, 5))

		s.NoError(err)
		s.False(available)
	})

	s.Run("back-to-back stay does not block", func() {
		occupied := []reservation.StayRange{
			mustStay(s, day(2024, 3, 5), day(2024, 3, 8)),
		}
		s.readStore.EXPECT().
			FindActiveStaysByRoom(ctx, roomID).
			Return(occupied, nil)

		available, err := s.queries.CheckAvailability(ctx, roomID, day(2024, 3, 1), day(2024, 3, 5))

		s.NoError(err)
		s.True(available)
	})

	s.Run("inverted range fails before touching the store", func() {
		available, err := s.queries.CheckAvailability(ctx, roomID, day(2024, 3, 5), day(2024, 3, 1))

		s.ErrorIs(err, queries.ErrInvalidDateRange)
		s.False(available)
	})

	s.Run("store failure propagates", func() {
		s.readStore.EXPECT().
			FindActiveStaysByRoom(ctx, roomID).
			Return(nil, errors.New("connection reset"))

		_, err := s.queries.CheckAvailability(ctx, roomID, day(2024, 3, 1), day(2024, 3, 5))

		s.Error(err)
	})
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	ctx := context.Background()

	s.Run("not found is mapped to the query sentinel", func() {
		id := uuid.New()
		s.readStore.EXPECT().
			FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("find reservation", errors.New("no rows"), infra.KindNotFound))

		view, err := s.queries.GetByID(ctx, id)

		s.ErrorIs(err, queries.ErrReservationNotFound)
		s.Nil(view)
	})

	s.Run("found view passes through", func() {
		id := uuid.New()
		expected := &queries.ReservationView{ID: id, Status: "pending"}
		s.readStore.EXPECT().
			FindByID(ctx, id).
			Return(expected, nil)

		view, err := s.queries.GetByID(ctx, id)

		s.NoError(err)
		s.Equal(expected, view)
	})
}
