package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tablescout/internal/delivery/context"
	"tablescout/internal/delivery/http/response"
	"tablescout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuotaHandlerParams holds dependencies for QuotaHandler, injected by Fx.
type QuotaHandlerParams struct {
	fx.In

	QuotaUC usecase.QuotaUsecase
	Logger  *slog.Logger
}

// QuotaHandler serves the caller's AI scoring allowance.
type QuotaHandler struct {
	quotaUC usecase.QuotaUsecase
	logger  *slog.Logger
}

// NewQuotaHandler is the constructor for QuotaHandler
func NewQuotaHandler(params QuotaHandlerParams) *QuotaHandler {
	return &QuotaHandler{
		quotaUC: params.QuotaUC,
		logger:  params.Logger,
	}
}

// CheckQuota handles GET /v1/quota
func (h *QuotaHandler) CheckQuota(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CALLER", "Caller identity is required")
	}

	status, err := h.quotaUC.CheckQuota(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// ReserveQuota handles POST /v1/quota/reserve
func (h *QuotaHandler) ReserveQuota(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CALLER", "Caller identity is required")
	}

	result, err := h.quotaUC.ReserveQuota(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RefundQuota handles POST /v1/quota/refund
func (h *QuotaHandler) RefundQuota(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_CALLER", "Caller identity is required")
	}

	result, err := h.quotaUC.RefundQuota(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
