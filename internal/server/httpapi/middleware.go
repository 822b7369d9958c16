package httpapi

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/logging"
	"github.com/dmitrijs2005/desawisata/internal/server/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"

	localRequestID = "request_id"
	localClaims    = "claims"
)

// requestID reuses a client supplied X-Request-ID or assigns a new one, and
// echoes it on the response.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Locals(localRequestID, id)
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}

func requestIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}

// observe logs every request and records its metrics. Errors from the
// chain are rendered here so the logged status is the one sent.
func observe(l logging.Logger, m *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		m.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(c.Method(), route).Observe(elapsed.Seconds())

		args := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", elapsed.Milliseconds(),
			"request_id", requestIDFrom(c),
		}
		if status >= fiber.StatusInternalServerError {
			l.Warn(c.UserContext(), "request failed", args...)
		} else {
			l.Info(c.UserContext(), "request served", args...)
		}
		return nil
	}
}

// authGate admits requests carrying a valid bearer token in Authorization.
func authGate(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return detail(c, fiber.StatusForbidden, "Not authenticated")
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			return detail(c, fiber.StatusForbidden, "Could not validate credentials")
		}

		c.Locals(localClaims, claims)
		return c.Next()
	}
}

// bearerToken strips a leading "Bearer" scheme from header; a bare token is
// returned as is.
func bearerToken(header string) (string, error) {
	token := strings.TrimSpace(header)
	if rest, ok := strings.CutPrefix(token, "Bearer"); ok {
		token = strings.TrimSpace(rest)
	}
	if token == "" {
		return "", common.ErrUnauthenticated
	}
	return token, nil
}

// claimsFrom returns the claims the gate stored, nil on open routes.
func claimsFrom(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(localClaims).(*auth.Claims)
	return claims
}
