package reservation

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenine/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.CreateReservation)
}

// CreateReservation handles POST /api/reservations.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unparseable body goes through the same generic path as any
		// other processing failure.
		log.Printf("reservation: bad request body: %v", err)
		response.Fail(c, http.StatusInternalServerError, MsgInternal)
		return
	}

	_, err := h.service.Create(c.Request.Context(), &req)
	switch {
	case errors.Is(err, ErrValidation):
		response.Fail(c, http.StatusBadRequest, MsgMissingFields)
	case errors.Is(err, ErrMailConfig):
		log.Printf("reservation: %v", err)
		response.Fail(c, http.StatusInternalServerError, MsgMailConfig)
	case err != nil:
		log.Printf("reservation: %v", err)
		response.Fail(c, http.StatusInternalServerError, MsgInternal)
	default:
		response.OK(c)
	}
}
