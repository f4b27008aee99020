package middleware

import (
	"net/http"
	"strings"

	deliverycontext "tablescout/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// CallerMiddleware reads the caller identity forwarded by the auth gateway.
// Tokens are verified before requests reach this service.
type CallerMiddleware struct{}

// NewCallerMiddleware is the constructor for CallerMiddleware.
func NewCallerMiddleware() *CallerMiddleware {
	return &CallerMiddleware{}
}

// RequireCaller rejects requests without a caller identity.
func (m *CallerMiddleware) RequireCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXUserID))
		if userID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "caller identity is missing")
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
