package httpapi

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/logging"
	"github.com/gofiber/fiber/v2"
)

const internalDetail = "Internal server error"

// detail writes the {"detail": msg} error body.
func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

// errorHandler answers for errors no handler turned into a response.
// Fiber's own errors (unknown route, wrong method, oversized body) keep their
// status; anything else is a 500 whose text stays in the log.
func errorHandler(l logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return detail(c, fe.Code, fe.Message)
		}
		l.Error(c.UserContext(), "unhandled error", "err", err, "path", c.Path(), "request_id", requestIDFrom(c))
		return detail(c, fiber.StatusInternalServerError, internalDetail)
	}
}

// validationDetail is the client-facing part of a common.ErrValidation
// error.
func validationDetail(err error) string {
	return strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": ")
}
