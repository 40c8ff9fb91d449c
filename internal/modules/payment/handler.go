package payment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportfy/internal/pkg/response"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/bookings/:id", h.InitPayment)
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/notifications", h.Notification)
}

// InitPayment godoc
// @Summary      Create a Snap payment session for a booking
// @Tags         Payments
// @Security     BearerAuth
// @Produce      json
// @Param        id path integer true "Booking ID"
// @Success      200 {object} InitPaymentResponse
// @Router       /payments/bookings/{id} [post]
func (h *Handler) InitPayment(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}
	actorID := c.GetInt64("user_id")

	resp, err := h.service.InitPayment(c.Request.Context(), bookingID, actorID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking belongs to another user")
		default:
			h.loggerf("level=error msg=payment init failed booking_id=%d err=%v", bookingID, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create payment session")
		}
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Notification is the gateway webhook. It acknowledges with 200 no matter
// what: the gateway retries on anything else, and retries multiply duplicate
// deliveries without fixing whatever failed. Internal errors are logged only.
func (h *Handler) Notification(c *gin.Context) {
	var n Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		h.loggerf("level=warn msg=malformed payment notification err=%v", err)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "ignored"})
		return
	}

	if err := h.service.HandleNotification(c.Request.Context(), n); err != nil {
		h.loggerf("level=error msg=payment notification processing failed order_id=%s err=%v", n.OrderID, err)
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "error processed, ignored"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "notification processed"})
}
