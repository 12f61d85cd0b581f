package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Post("/logout", h.Logout)

	// Session-protected endpoints
	profile := app.Group("/profile", h.RequireSession())
	profile.Get("/", h.Profile)
	profile.Put("/update", h.UpdateProfile)
	profile.Delete("/", h.DeleteAccount)
}
