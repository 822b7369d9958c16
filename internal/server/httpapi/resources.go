package httpapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/logging"
	"github.com/gofiber/fiber/v2"
)

// resourceHandler serves the five CRUD routes of one resource kind. noun is
// used in error details ("Failed to add package"), deletedNoun in the
// delete confirmation ("Paket 'X' deleted successfully").
type resourceHandler[T any, P any] struct {
	svc         ResourceService[T, P]
	path        string
	noun        string
	deletedNoun string
	logger      logging.Logger
}

func registerResource[T any, P any](app *fiber.App, gate fiber.Handler, h *resourceHandler[T, P]) {
	h.logger = h.logger.With("resource", h.noun)

	app.Get(h.path, h.list)
	app.Get(h.path+"/:id", h.get)
	app.Post(h.path, gate, h.create)
	app.Put(h.path+"/:id", gate, h.update)
	app.Delete(h.path+"/:id", gate, h.delete)
}

func (h *resourceHandler[T, P]) title() string {
	return strings.ToUpper(h.noun[:1]) + h.noun[1:]
}

func (h *resourceHandler[T, P]) list(c *fiber.Ctx) error {
	items, err := h.svc.List(c.UserContext())
	if err != nil {
		h.logError(c, "list", err)
		return detail(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(items)
}

func (h *resourceHandler[T, P]) get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid id")
	}

	item, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return detail(c, fiber.StatusNotFound, h.title()+" not found")
		}
		h.logError(c, "get", err)
		return detail(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(item)
}

func (h *resourceHandler[T, P]) create(c *fiber.Ctx) error {
	var in P
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.svc.Create(c.UserContext(), &in)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return detail(c, fiber.StatusBadRequest, validationDetail(err))
		}
		h.logError(c, "create", err)
		return detail(c, fiber.StatusBadRequest, "Failed to add "+h.noun)
	}

	h.logWrite(c, "created")
	return c.JSON(item)
}

// update answers 400 both for unknown ids and for store failures.
func (h *resourceHandler[T, P]) update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid id")
	}

	var in P
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.svc.Update(c.UserContext(), id, &in)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return detail(c, fiber.StatusBadRequest, validationDetail(err))
		}
		if !errors.Is(err, common.ErrorNotFound) {
			h.logError(c, "update", err)
		}
		return detail(c, fiber.StatusBadRequest, "Failed to update "+h.noun)
	}

	h.logWrite(c, "updated", "id", id)
	return c.JSON(item)
}

func (h *resourceHandler[T, P]) delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return detail(c, fiber.StatusNotFound, h.title()+" not found or already deleted")
		}
		h.logError(c, "delete", err)
		return detail(c, fiber.StatusBadRequest, "Failed to delete "+h.noun)
	}

	h.logWrite(c, "deleted", "id", id)
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%s '%s' deleted successfully", h.deletedNoun, deleted.Label),
	})
}

func (h *resourceHandler[T, P]) logError(c *fiber.Ctx, op string, err error) {
	h.logger.Error(c.UserContext(), op+" failed", "err", err, "request_id", requestIDFrom(c))
}

func (h *resourceHandler[T, P]) logWrite(c *fiber.Ctx, msg string, args ...any) {
	if claims := claimsFrom(c); claims != nil {
		args = append(args, "by", claims.Subject)
	}
	h.logger.Info(c.UserContext(), msg, args...)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
