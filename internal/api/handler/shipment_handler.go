package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swiftcargo/tracking-api/internal/api/metrics"
	"github.com/swiftcargo/tracking-api/internal/core/ports"
)

// ShipmentHandler handles the authenticated shipment management surface.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// List handles GET /api/shipments.
//
// @Summary      List all shipments, newest first
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Shipment
// @Failure      401  {object}  errorResponse
// @Router       /shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	shipments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shipments)
}

// Create handles POST /api/shipments.
//
// @Summary      Create a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Shipment fields"
// @Success      201   {object}  domain.Shipment
// @Failure      401   {object}  errorResponse
// @Router       /shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_payload")
	}

	shipment, err := h.service.Create(c.Request().Context(), toCreateShipmentInput(req))
	if err != nil {
		return err
	}

	metrics.ShipmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, shipment)
}

// Patch handles PATCH /api/shipments/:id.
//
// @Summary      Patch shipment fields
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Shipment id"
// @Param        body  body      patchShipmentRequest  true  "Fields to merge"
// @Success      200   {object}  domain.Shipment
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /shipments/{id} [patch]
func (h *ShipmentHandler) Patch(c echo.Context) error {
	var req patchShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_payload")
	}

	shipment, err := h.service.Patch(c.Request().Context(), c.Param("id"), toShipmentPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shipment)
}

// Delete handles DELETE /api/shipments/:id. Idempotent.
//
// @Summary      Delete a shipment
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Shipment id"
// @Success      200  {object}  okResponse
// @Failure      401  {object}  errorResponse
// @Router       /shipments/{id} [delete]
func (h *ShipmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// AppendEvent handles POST /api/shipments/:id/events.
//
// @Summary      Append a tracking event to the ledger
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Shipment id"
// @Param        body  body      appendEventRequest  true  "Event fields"
// @Success      201   {object}  domain.Shipment
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /shipments/{id}/events [post]
func (h *ShipmentHandler) AppendEvent(c echo.Context) error {
	var req appendEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_payload")
	}

	shipment, err := h.service.AppendEvent(c.Request().Context(), c.Param("id"), toAppendEventInput(req))
	if err != nil {
		return err
	}

	metrics.ShipmentEventsTotal.WithLabelValues("appended").Inc()
	return c.JSON(http.StatusCreated, shipment)
}

// RemoveEvent handles DELETE /api/shipments/:id/events/:eventId. Removing an
// unknown event id is a no-op that still returns the shipment.
//
// @Summary      Remove a tracking event from the ledger
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Shipment id"
// @Param        eventId  path      string  true  "Event id"
// @Success      200      {object}  domain.Shipment
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /shipments/{id}/events/{eventId} [delete]
func (h *ShipmentHandler) RemoveEvent(c echo.Context) error {
	shipment, err := h.service.RemoveEvent(c.Request().Context(), c.Param("id"), c.Param("eventId"))
	if err != nil {
		return err
	}

	metrics.ShipmentEventsTotal.WithLabelValues("removed").Inc()
	return c.JSON(http.StatusOK, shipment)
}
