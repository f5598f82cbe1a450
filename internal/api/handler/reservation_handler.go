package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miramar/hotel-api/internal/api/metrics"
	"github.com/miramar/hotel-api/internal/core/ports"
)

type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// Create books a room. Consistency failures come back as a single 400
// listing every violated field.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), toReservationInput(req))
	if err != nil {
		return err
	}

	metrics.ReservationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toReservationResponse(created))
}

// List returns every reservation. Route is admin-gated in the router.
func (h *ReservationHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReservationListResponse(items))
}

// ListByUserEmail returns the reservations whose embedded guest snapshot
// carries the given email.
func (h *ReservationHandler) ListByUserEmail(c echo.Context) error {
	items, err := h.service.ListByUserEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReservationListResponse(items))
}

// Update replaces a reservation's details after re-running the consistency
// rules.
func (h *ReservationHandler) Update(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toReservationInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReservationResponse(updated))
}

// Cancel sets the cancelation date. The record is kept.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	cancelled, err := h.service.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ReservationsCancelledTotal.Inc()
	return c.JSON(http.StatusOK, toReservationResponse(cancelled))
}
