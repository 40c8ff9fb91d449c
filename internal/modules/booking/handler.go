package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportfy/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read-side projections that need no login.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule", h.Schedule)
	rg.GET("/matches/open", h.OpenMatches)
	rg.GET("/bookings/check", h.Lookup)
}

// RegisterProtectedRoutes requires an authenticated user.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/:id", h.GetByID)
	rg.GET("/users/:id/history", h.UserHistory)
}

// RegisterAdminRoutes requires the admin role.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.PUT("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	// The authenticated user books for themselves unless an explicit user id
	// is supplied (admin backfill).
	if req.UserID == 0 {
		req.UserID = c.GetInt64("user_id")
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}
	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) List(c *gin.Context) {
	out, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Lookup(c *gin.Context) {
	var id int64
	if raw := c.Query("bookingId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid bookingId")
			return
		}
		id = parsed
	}
	b, err := h.service.Lookup(c.Request.Context(), id, c.Query("phone"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Schedule(c *gin.Context) {
	courtID, err := strconv.ParseInt(c.Query("courtId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid courtId")
		return
	}
	entries, err := h.service.Schedule(c.Request.Context(), courtID, c.Query("date"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries)
}

func (h *Handler) OpenMatches(c *gin.Context) {
	matches, err := h.service.OpenMatches(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, matches)
}

func (h *Handler) UserHistory(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}
	entries, err := h.service.UserHistory(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation, ErrCourtInactive:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrConflict:
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Court is not available for the selected time")
	case ErrInvalidStatusTransition:
		response.Error(c, http.StatusConflict, "INVALID_STATUS", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process booking request")
	}
}
