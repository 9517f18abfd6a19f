package middleware

import (
	"github.com/mconway/firefly-iii/internal/common/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const correlationIDHeader = "X-Request-Id"

// Context stamps every request with a correlation id, reusing the
// incoming X-Request-Id when the caller provides one.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(correlationIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := log.ContextWithCorrelationID(req.Context(), id)
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(correlationIDHeader, id)

			return next(c)
		}
	}
}
