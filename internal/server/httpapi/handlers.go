package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/logging"
	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"id_user"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

func loginHandler(l logging.Logger, svc LoginService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return detail(c, fiber.StatusBadRequest, "Invalid request body")
		}

		res, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrValidation):
				return detail(c, fiber.StatusBadRequest, "Email and password are required")
			case errors.Is(err, common.ErrInvalidCredentials):
				return detail(c, fiber.StatusUnauthorized, "Invalid email or password")
			default:
				l.Error(c.UserContext(), "login failed", "err", err, "request_id", requestIDFrom(c))
				return detail(c, fiber.StatusInternalServerError, internalDetail)
			}
		}

		l.Info(c.UserContext(), "Logged in", "id_user", res.UserID)

		return c.JSON(loginResponse{
			AccessToken: res.AccessToken,
			TokenType:   "bearer",
			UserID:      res.UserID,
			Name:        res.Username,
			Email:       res.Email,
			Role:        res.Role,
		})
	}
}

func healthHandler(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if db == nil || db.PingContext(ctx) != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

type presignRequest struct {
	Folder      string `json:"folder"`
	ContentType string `json:"content_type"`
}

func presignHandler(l logging.Logger, media Presigner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req presignRequest
		if err := c.BodyParser(&req); err != nil {
			return detail(c, fiber.StatusBadRequest, "Invalid request body")
		}

		up, err := media.PresignPut(c.UserContext(), req.Folder, req.ContentType)
		if err != nil {
			if errors.Is(err, common.ErrValidation) {
				return detail(c, fiber.StatusBadRequest, validationDetail(err))
			}
			l.Error(c.UserContext(), "presign failed", "err", err, "request_id", requestIDFrom(c))
			return detail(c, fiber.StatusInternalServerError, internalDetail)
		}

		return c.JSON(up)
	}
}
