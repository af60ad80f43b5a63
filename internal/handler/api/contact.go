package api

import (
	"errors"
	"net/http"

	reqdto "oceanview-backend/internal/handler/dto/request"
	"oceanview-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactCommands commands.ContactCommands
}

func NewContactHandler(contactCommands commands.ContactCommands) *ContactHandler {
	return &ContactHandler{contactCommands: contactCommands}
}

// @Summary Send contact inquiry
// @Tags contact
// @Accept json
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /contact [post]
func (h *ContactHandler) SendInquiry(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.contactCommands.SendInquiry(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, commands.ErrMailDeliveryFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to deliver inquiry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusAccepted)
}
