package api

import (
	"errors"
	"net/http"

	resdto "oceanview-backend/internal/handler/dto/response"
	"oceanview-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	invoiceQueries queries.InvoiceQueries
}

func NewInvoiceHandler(invoiceQueries queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{invoiceQueries: invoiceQueries}
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InvoiceResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	views, err := h.invoiceQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.InvoiceResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromInvoiceView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get invoice by reservation
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param reservationId path string true "Reservation ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/reservation/{reservationId} [get]
func (h *InvoiceHandler) GetByReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.invoiceQueries.GetByReservationID(c.Request.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}
