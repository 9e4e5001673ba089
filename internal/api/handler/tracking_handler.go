package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swiftcargo/tracking-api/internal/api/metrics"
	"github.com/swiftcargo/tracking-api/internal/core/domain"
	"github.com/swiftcargo/tracking-api/internal/core/ports"
)

// TrackingHandler serves the anonymous tracking lookup.
type TrackingHandler struct {
	service ports.ShipmentService
}

func NewTrackingHandler(service ports.ShipmentService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles GET /api/track/:trackingNumber. Lookup is case-insensitive
// on the whole tracking number.
//
// @Summary      Look up a shipment by tracking number
// @Tags         tracking
// @Produce      json
// @Param        trackingNumber  path      string  true  "Tracking number (e.g. SC1ABCDEF234)"
// @Success      200             {object}  domain.Shipment
// @Failure      404             {object}  errorResponse
// @Router       /track/{trackingNumber} [get]
func (h *TrackingHandler) Track(c echo.Context) error {
	shipment, err := h.service.Track(c.Request().Context(), c.Param("trackingNumber"))
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			metrics.TrackingLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.TrackingLookupsTotal.WithLabelValues("found").Inc()
	return c.JSON(http.StatusOK, shipment)
}
