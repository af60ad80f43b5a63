//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"oceanview-backend/internal/domain/user"
	"oceanview-backend/internal/handler/dto/request"
	"oceanview-backend/internal/handler/dto/response"
	"oceanview-backend/internal/usecase/queries"
	"oceanview-backend/tests/common/authtest"
	"oceanview-backend/tests/common/dbtest"
	"oceanview-backend/tests/common/httptest"
	"oceanview-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL  = "/api/reservations"
	availabilityURL  = "/api/reservations/availability?room_id=%s&check_in=%s&check_out=%s"
	statusURL        = "/api/reservations/%s/status"
	paymentStatusURL = "/api/reservations/%s/payment-status"
	invoiceByResURL  = "/api/invoices/reservation/%s"
	guestEmail       = "guest@example.com"
	staffEmail       = "staff@example.com"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) createRoom(t *testing.T, name string, rateCents int64) uuid.UUID {
	typeID := dbtest.CreateTestRoomType(t, s.DB, "Deluxe", "deluxe")
	return dbtest.CreateTestRoom(t, s.DB, name, typeID, rateCents)
}

func date(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

// =============================================================================
// TestCreateReservation - Reservation creation API tests
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: Guest can create reservation with rate captured at booking time", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 101", 12500)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, guestEmail, string(user.RoleGuest))

		reqBody := request.CreateReservationRequest{
			RoomID:   roomID,
			CheckIn:  date("2030-05-10"),
			CheckOut: date("2030-05-13"),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.ReservationResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		expected := &response.ReservationResponse{
			RoomID:        roomID,
			RoomName:      "Seaview 101",
			CheckIn:       "2030-05-10",
			CheckOut:      "2030-05-13",
			TotalNights:   3,
			TotalCents:    37500,
			Status:        "pending",
			PaymentStatus: "unpaid",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{},
				"ID", "GuestID", "GuestName", "GuestEmail", "Notes", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}

		// A later rate change must not affect the captured total
		_, err = s.DB.Exec(t.Context(), "UPDATE rooms SET nightly_rate_cents = 99999 WHERE id = $1", roomID)
		require.NoError(t, err)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+actual.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))
		require.Equal(t, int64(37500), detail.TotalCents, "Total should stay at the rate captured on booking")
	})

	s.Run("Error case: Overlapping stay on same room is rejected with conflict", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 102", 10000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, guestEmail, string(user.RoleGuest))

		first := request.CreateReservationRequest{
			RoomID:   roomID,
			CheckIn:  date("2030-06-01"),
			CheckOut: date("2030-06-05"),
		}
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, first, token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		overlapping := request.CreateReservationRequest{
			RoomID:   roomID,
			CheckIn:  date("2030-06-04"),
			CheckOut: date("2030-06-07"),
		}
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, overlapping, token)
		require.Equal(t, http.StatusConflict, w2.Code, "Overlapping stay should be rejected")
	})

	s.Run("Normal case: Back-to-back stays on same room are accepted", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 103", 10000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, guestEmail, string(user.RoleGuest))

		first := request.CreateReservationRequest{
			RoomID:   roomID,
			CheckIn:  date("2030-06-01"),
			CheckOut: date("2030-06-05"),
		}
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, first, token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		backToBack := request.CreateReservationRequest{
			RoomID:   roomID,
			CheckIn:  date("2030-06-05"),
			CheckOut: date("2030-06-08"),
		}
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, backToBack, token)
		require.Equal(t, http.StatusCreated, w2.Code, "Checkout day should be bookable as the next check-in")
	})

	s.Run("Error case: Inverted date range is rejected", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 104", 10000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, guestEmail, string(user.RoleGuest))

		reqBody := request.CreateReservationRequest{
			RoomID:   roomID,
			CheckIn:  date("2030-06-05"),
			CheckOut: date("2030-06-01"),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: Unknown room returns not found", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, guestEmail, string(user.RoleGuest))

		reqBody := request.CreateReservationRequest{
			RoomID:   uuid.New(),
			CheckIn:  date("2030-06-01"),
			CheckOut: date("2030-06-03"),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 105", 10000)

		reqBody := request.CreateReservationRequest{
			RoomID:   roomID,
			CheckIn:  date("2030-06-01"),
			CheckOut: date("2030-06-03"),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "Should reject unauthorized access")
	})
}

// =============================================================================
// TestCheckAvailability - Availability lookup API tests
// =============================================================================

func (s *ReservationSuite) TestCheckAvailability() {
	s.Run("Normal case: Pending reservation blocks the room, rejection frees it", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 201", 10000)
		guestID := dbtest.CreateTestUser(t, s.DB, guestEmail, string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID,
			date("2030-07-01"), date("2030-07-05"), 40000, "pending")

		url := fmt.Sprintf(availabilityURL, roomID, "2030-07-03", "2030-07-06")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var verdict response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &verdict))
		require.False(t, verdict.Available, "Pending reservation should block the room")

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, staffEmail, string(user.RoleStaff))
		rw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, reservationID), request.UpdateStatusRequest{Status: "rejected"}, staffToken)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w2.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &verdict))
		require.True(t, verdict.Available, "Rejected reservation should not block the room")
	})

	s.Run("Normal case: Unknown room reads as available", func() {
		t := s.T()

		url := fmt.Sprintf(availabilityURL, uuid.New(), "2030-07-01", "2030-07-03")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var verdict response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &verdict))
		require.True(t, verdict.Available)
	})
}

// =============================================================================
// TestApprovalLifecycle - Status transition and invoice generation tests
// =============================================================================

func (s *ReservationSuite) TestApprovalLifecycle() {
	s.Run("Normal case: Approval generates an invoice snapshot", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 301", 15000)
		guestID := dbtest.CreateTestUser(t, s.DB, guestEmail, string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID,
			date("2030-08-01"), date("2030-08-04"), 45000, "pending")

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, staffEmail, string(user.RoleStaff))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, reservationID), request.UpdateStatusRequest{Status: "approved"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		iw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(invoiceByResURL, reservationID), nil, staffToken)
		require.Equal(t, http.StatusOK, iw.Code, iw.Body.String())

		var invoice response.InvoiceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, iw.Body, &invoice))

		expected := &response.InvoiceResponse{
			ReservationID: reservationID,
			GuestID:       guestID,
			GuestName:     "Test User",
			RoomName:      "Seaview 301",
			TotalCents:    45000,
			PaymentStatus: "unpaid",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.InvoiceResponse{}, "ID", "IssuedAt"),
		}
		if diff := cmp.Diff(expected, &invoice, opts...); diff != "" {
			t.Errorf("Invoice response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: Re-approval regenerates the invoice in place", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 302", 15000)
		guestID := dbtest.CreateTestUser(t, s.DB, guestEmail, string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID,
			date("2030-08-01"), date("2030-08-04"), 45000, "pending")

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, staffEmail, string(user.RoleStaff))

		url := fmt.Sprintf(statusURL, reservationID)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateStatusRequest{Status: "approved"}, staffToken)
		require.Equal(t, http.StatusOK, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateStatusRequest{Status: "approved"}, staffToken)
		require.Equal(t, http.StatusOK, w2.Code)

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM invoices WHERE reservation_id = $1", reservationID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, "Re-approval should overwrite, not duplicate, the invoice")
	})

	s.Run("Normal case: Rejection does not generate an invoice", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 303", 15000)
		guestID := dbtest.CreateTestUser(t, s.DB, guestEmail, string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID,
			date("2030-08-01"), date("2030-08-04"), 45000, "pending")

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, staffEmail, string(user.RoleStaff))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, reservationID), request.UpdateStatusRequest{Status: "rejected"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		iw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(invoiceByResURL, reservationID), nil, staffToken)
		require.Equal(t, http.StatusNotFound, iw.Code, "Rejected reservation should have no invoice")
	})

	s.Run("Normal case: Dashboard revenue reflects invoiced totals", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 305", 20000)
		guestID := dbtest.CreateTestUser(t, s.DB, guestEmail, string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID,
			date("2030-08-10"), date("2030-08-12"), 40000, "pending")

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, staffEmail, string(user.RoleStaff))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, reservationID), request.UpdateStatusRequest{Status: "approved"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/dashboard/stats", nil, staffToken)
		require.Equal(t, http.StatusOK, sw.Code, sw.Body.String())

		var stats queries.DashboardStats
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &stats))
		require.Equal(t, int64(40000), stats.TotalRevenueCents, "Revenue should sum invoice snapshots")
		require.Equal(t, int64(1), stats.TotalReservations)
		require.Equal(t, int64(0), stats.PendingReservations)
	})

	s.Run("Error case: Guest cannot change reservation status", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 304", 15000)
		guestID := dbtest.CreateTestUser(t, s.DB, guestEmail, string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID,
			date("2030-08-01"), date("2030-08-04"), 45000, "pending")

		guestToken := authtest.LoginUser(t, s.Router, guestEmail, "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, reservationID), request.UpdateStatusRequest{Status: "approved"}, guestToken)
		require.Equal(t, http.StatusForbidden, w.Code, "Guests must not reach staff endpoints")
	})
}

// =============================================================================
// TestPaymentStatus - Payment axis tests
// =============================================================================

func (s *ReservationSuite) TestPaymentStatus() {
	s.Run("Normal case: Payment status changes independently of lifecycle status", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 401", 10000)
		guestID := dbtest.CreateTestUser(t, s.DB, guestEmail, string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID,
			date("2030-09-01"), date("2030-09-03"), 20000, "pending")

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, staffEmail, string(user.RoleStaff))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(paymentStatusURL, reservationID),
			request.UpdatePaymentStatusRequest{PaymentStatus: "paid"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, "paid", actual.PaymentStatus)
		require.Equal(t, "pending", actual.Status, "Lifecycle status should be untouched")
	})

	s.Run("Error case: Invalid payment status value is rejected", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 402", 10000)
		guestID := dbtest.CreateTestUser(t, s.DB, guestEmail, string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID,
			date("2030-09-01"), date("2030-09-03"), 20000, "pending")

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, staffEmail, string(user.RoleStaff))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(paymentStatusURL, reservationID),
			request.UpdatePaymentStatusRequest{PaymentStatus: "overdue"}, staffToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestDeleteReservation - Deletion API tests
// =============================================================================

func (s *ReservationSuite) TestDeleteReservation() {
	s.Run("Normal case: Deleting an approved reservation keeps its invoice", func() {
		t := s.T()

		roomID := s.createRoom(t, "Seaview 501", 10000)
		guestID := dbtest.CreateTestUser(t, s.DB, guestEmail, string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, guestID, roomID,
			date("2030-10-01"), date("2030-10-03"), 20000, "pending")

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, staffEmail, string(user.RoleStaff))

		aw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, reservationID), request.UpdateStatusRequest{Status: "approved"}, staffToken)
		require.Equal(t, http.StatusOK, aw.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+reservationID.String(), nil, staffToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+reservationID.String(), nil, staffToken)
		require.Equal(t, http.StatusNotFound, gw.Code)

		iw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(invoiceByResURL, reservationID), nil, staffToken)
		require.Equal(t, http.StatusOK, iw.Code, "Invoice is a billing record and must survive deletion")
	})

	s.Run("Error case: Deleting a non-existent reservation returns not found", func() {
		t := s.T()

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, staffEmail, string(user.RoleStaff))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			reservationsURL+"/"+uuid.New().String(), nil, staffToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
