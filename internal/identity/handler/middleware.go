package handler

import (
	"github.com/gofiber/fiber/v2"

	autherror "github.com/irendoro/trpis-tdd/internal/errors"
)

const localsUsername = "username"

// RequireSession resolves the session cookie into an acting username and
// stores it in the request locals. Requests without a live session get 401.
func (h *AuthHandler) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(h.cookie)
		if id == "" {
			return h.fail(c, autherror.ErrNotAuthenticated)
		}

		username, ok := h.sessions.Get(id)
		if !ok {
			c.ClearCookie(h.cookie)
			return h.fail(c, autherror.ErrNotAuthenticated)
		}

		c.Locals(localsUsername, username)
		return c.Next()
	}
}

func actingUsername(c *fiber.Ctx) string {
	username, _ := c.Locals(localsUsername).(string)
	return username
}
