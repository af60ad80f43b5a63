//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"oceanview-backend/internal/domain/user"
	"oceanview-backend/internal/handler/api"
	resdto "oceanview-backend/internal/handler/dto/response"
	"oceanview-backend/internal/usecase/commands"
	"oceanview-backend/internal/usecase/queries"
	"oceanview-backend/tests/common/builder"
	"oceanview-backend/tests/common/httptest"
	commandsmock "oceanview-backend/tests/mock/commands"
	queriesmock "oceanview-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler

	authedUserID uuid.UUID
	authedRole   user.Role
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.authedUserID = uuid.New()
	s.authedRole = user.RoleGuest

	// Mock middleware behavior: inject the authenticated user context
	authed := func(c *gin.Context) {
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", s.authedRole)
	}

	s.router.GET("/reservations/availability", s.handler.CheckAvailability)
	s.router.POST("/reservations", authed, s.handler.CreateReservation)
	s.router.GET("/reservations", authed, s.handler.ListReservations)
	s.router.GET("/reservations/:id", authed, s.handler.GetReservation)
	s.router.PATCH("/reservations/:id/status", authed, s.handler.UpdateStatus)
	s.router.DELETE("/reservations/:id", authed, s.handler.DeleteReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCheckAvailability() {
	roomID := uuid.New()
	url := fmt.Sprintf("/reservations/availability?room_id=%s&check_in=2024-01-10&check_out=2024-01-12", roomID)

	s.Run("success: returns availability verdict", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), roomID, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)).
			Return(true, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Equal(roomID, response.RoomID)
	})

	s.Run("error: 400 on malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations/availability?room_id=nope&check_in=2024-01-10&check_out=2024-01-12", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "room ID")
	})

	s.Run("error: 400 on malformed dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/reservations/availability?room_id=%s&check_in=10-01-2024&check_out=2024-01-12", roomID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check_in")
	})

	s.Run("error: 400 on inverted range", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), roomID, gomock.Any(), gomock.Any()).
			Return(false, queries.ErrInvalidDateRange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/reservations/availability?room_id=%s&check_in=2024-01-12&check_out=2024-01-10", roomID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "before")
	})
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	s.Run("success: 201 with the created reservation", func() {
		b := builder.NewReservationBuilder()
		req := b.BuildCreateRequest()

		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.authedUserID).
			Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal("2024-01-10", response.CheckIn)
		s.Equal(int64(20000), response.TotalCents)
	})

	s.Run("error: 404 when the room does not exist", func() {
		req := builder.NewReservationBuilder().BuildCreateRequest()
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.authedUserID).
			Return(nil, commands.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 409 when the dates conflict", func() {
		req := builder.NewReservationBuilder().BuildCreateRequest()
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.authedUserID).
			Return(nil, commands.ErrRoomUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})

	s.Run("error: 422 on domain validation failure", func() {
		req := builder.NewReservationBuilder().BuildCreateRequest()
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.authedUserID).
			Return(nil, commands.ErrDomainValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 400 on missing required fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"room_id": uuid.New()}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	url := "/reservations"

	s.Run("guests only see their own reservations", func() {
		s.authedRole = user.RoleGuest
		s.mockQueries.EXPECT().
			ListByGuest(gomock.Any(), s.authedUserID).
			Return([]*queries.ReservationListItem{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("staff see everything", func() {
		s.authedRole = user.RoleStaff
		s.mockQueries.EXPECT().
			List(gomock.Any()).
			Return([]*queries.ReservationListItem{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("staff can filter by room", func() {
		s.authedRole = user.RoleAdmin
		roomID := uuid.New()
		s.mockQueries.EXPECT().
			ListByRoom(gomock.Any(), roomID).
			Return([]*queries.ReservationListItem{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?room_id="+roomID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	s.Run("success: 200 with the updated view", func() {
		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = "approved" })

		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), b.ID, "approved").
			Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/reservations/"+b.ID.String()+"/status", map[string]string{"status": "approved"}, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Status)
	})

	s.Run("error: 404 when the reservation is unknown", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), id, "approved").
			Return(nil, commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/reservations/"+id.String()+"/status", map[string]string{"status": "approved"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 on an unknown status value", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), id, "cancelled").
			Return(nil, commands.ErrDomainValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/reservations/"+id.String()+"/status", map[string]string{"status": "cancelled"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	s.Run("success: 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
