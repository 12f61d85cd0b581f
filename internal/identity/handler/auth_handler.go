package handler

import (
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/irendoro/trpis-tdd/internal/errors"
	"github.com/irendoro/trpis-tdd/internal/identity/dto"
	"github.com/irendoro/trpis-tdd/internal/identity/service"
	"github.com/irendoro/trpis-tdd/internal/identity/session"
	"github.com/irendoro/trpis-tdd/internal/logging"
)

type AuthHandler struct {
	identity *service.IdentityService
	sessions *session.Store
	cookie   string
	log      logging.Logger
}

func NewAuthHandler(identity *service.IdentityService, sessions *session.Store, cookieName string, log logging.Logger) *AuthHandler {
	return &AuthHandler{identity: identity, sessions: sessions, cookie: cookieName, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}

	acc, err := h.identity.Register(input.Username, input.Password)
	if err != nil {
		return h.fail(c, err)
	}

	h.log.Info(c.UserContext(), "account registered", "username", acc.Username, "role", string(acc.Role))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Registration successful"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	sess, err := h.identity.Login(input.Username, input.Password)
	if err != nil {
		h.log.Warn(c.UserContext(), "login rejected", "username", input.Username, "reason", err.Error())
		return h.fail(c, err)
	}

	id := h.sessions.Create(sess.Username)
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
	})

	h.log.Info(c.UserContext(), "login successful", "username", sess.Username)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Login successful"})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(h.cookie); id != "" {
		h.sessions.Destroy(id)
	}
	c.ClearCookie(h.cookie)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	acc, err := h.identity.Profile(actingUsername(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ProfileOutput{
		Username: acc.Username,
		Role:     string(acc.Role),
		Message:  "Profile data",
	})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	acting := actingUsername(c)
	if err := h.identity.UpdatePassword(acting, input.Username, input.Password); err != nil {
		return h.fail(c, err)
	}

	h.log.Info(c.UserContext(), "password updated", "acting", acting, "target", input.Username)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Profile updated successfully"})
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	acting := actingUsername(c)
	if err := h.identity.DeleteAccount(acting); err != nil {
		return h.fail(c, err)
	}

	h.sessions.DestroyUser(acting)
	c.ClearCookie(h.cookie)

	h.log.Info(c.UserContext(), "account deleted", "username", acting)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Account deleted"})
}

// fail maps core error kinds to transport statuses: policy and input
// problems are 400, lockout and authorization rejections are 403, anything
// unexpected is 500.
func (h *AuthHandler) fail(c *fiber.Ctx, err error) error {
	var vErr *autherror.ValidationError
	var lockErr *autherror.LockedError

	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Error()})
	case errors.Is(err, autherror.ErrUsernameTaken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username already exists"})
	case errors.Is(err, autherror.ErrInvalidUsername):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid username"})
	case errors.Is(err, autherror.ErrInvalidPassword):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid password"})
	case errors.Is(err, autherror.ErrTooManyAttempts):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Too many failed attempts, account temporarily locked"})
	case errors.As(err, &lockErr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":               "Account is locked",
			"retry_after_seconds": int(math.Ceil(lockErr.Remaining.Seconds())),
		})
	case errors.Is(err, autherror.ErrDenied):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Permission denied"})
	case errors.Is(err, autherror.ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not logged in"})
	default:
		// ErrNoSuchUser lands here: existence was checked before any
		// mutation, so reaching it is an internal invariant violation,
		// not a user error.
		h.log.Error(c.UserContext(), "internal error", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
