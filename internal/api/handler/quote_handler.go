package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swiftcargo/tracking-api/internal/api/metrics"
	"github.com/swiftcargo/tracking-api/internal/core/ports"
)

// QuoteHandler handles quote requests: anonymous submission plus
// authenticated triage.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

type createQuoteRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Service     string `json:"service"`
	Weight      string `json:"weight"`
	Details     string `json:"details"`
}

type patchQuoteRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Origin      *string `json:"origin"`
	Destination *string `json:"destination"`
	Service     *string `json:"service"`
	Weight      *string `json:"weight"`
	Details     *string `json:"details"`
	Status      *string `json:"status"`
}

// Create handles POST /api/quotes, the public submission endpoint. Status
// and createdAt are assigned server-side regardless of the payload.
//
// @Summary      Submit a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      createQuoteRequest  true  "Quote fields"
// @Success      201   {object}  domain.Quote
// @Router       /quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	var req createQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_payload")
	}

	quote, err := h.service.Create(c.Request().Context(), ports.CreateQuoteInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Origin:      req.Origin,
		Destination: req.Destination,
		Service:     req.Service,
		Weight:      req.Weight,
		Details:     req.Details,
	})
	if err != nil {
		return err
	}

	metrics.QuotesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, quote)
}

// List handles GET /api/quotes.
//
// @Summary      List all quote requests, newest first
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Quote
// @Failure      401  {object}  errorResponse
// @Router       /quotes [get]
func (h *QuoteHandler) List(c echo.Context) error {
	quotes, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quotes)
}

// Patch handles PATCH /api/quotes/:id.
//
// @Summary      Patch quote fields
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Quote id"
// @Param        body  body      patchQuoteRequest  true  "Fields to merge"
// @Success      200   {object}  domain.Quote
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /quotes/{id} [patch]
func (h *QuoteHandler) Patch(c echo.Context) error {
	var req patchQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_payload")
	}

	quote, err := h.service.Patch(c.Request().Context(), c.Param("id"), ports.QuotePatch{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Origin:      req.Origin,
		Destination: req.Destination,
		Service:     req.Service,
		Weight:      req.Weight,
		Details:     req.Details,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

// Delete handles DELETE /api/quotes/:id. Idempotent.
//
// @Summary      Delete a quote request
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Quote id"
// @Success      200  {object}  okResponse
// @Failure      401  {object}  errorResponse
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
