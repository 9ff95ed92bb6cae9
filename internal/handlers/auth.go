package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hogarlabs/hogar/internal/middleware"
	"github.com/hogarlabs/hogar/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	DB *gorm.DB
}

// LoginForm handles GET /login/. An already-authenticated session
// skips straight to the dashboard without re-checking credentials.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if middleware.SessionUserID(c) != 0 {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{})
}

// Login handles POST /login/
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if middleware.SessionUserID(c) != 0 {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := services.Authenticate(h.DB, username, password)
	if err != nil {
		// Failed logins re-render the form; no session is created
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Error": "Usuario o contraseña incorrectos",
		})
	}

	if err := middleware.StartSession(c, user); err != nil {
		zap.S().Errorf("failed to start session for user %d: %v", user.ID, err)
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout handles GET/POST /logout/
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := middleware.EndSession(c); err != nil {
		zap.S().Warnf("failed to destroy session: %v", err)
	}
	return c.Redirect("/login/", fiber.StatusSeeOther)
}
