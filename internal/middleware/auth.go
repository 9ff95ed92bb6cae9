package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/hogarlabs/hogar/internal/config"
	"github.com/hogarlabs/hogar/internal/models"
)

var store *session.Store

// InitSessionStore configures the cookie-backed session store. Must be
// called once before any auth middleware or handler runs.
func InitSessionStore(cfg *config.Config) {
	store = session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.SessionCookie,
		Expiration:     30 * 24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// AuthUser requires an authenticated session; otherwise it redirects
// to the login page. On success the user's id, name and staff flag are
// placed in Locals for handlers.
func AuthUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect("/login/", fiber.StatusSeeOther)
		}

		userID, ok := sess.Get("user_id").(uint)
		if !ok || userID == 0 {
			return c.Redirect("/login/", fiber.StatusSeeOther)
		}

		c.Locals("userID", userID)
		c.Locals("username", sess.Get("username"))
		isStaff, _ := sess.Get("is_staff").(bool)
		c.Locals("isStaff", isStaff)

		return c.Next()
	}
}

// AuthStaff requires an authenticated session with the staff flag.
// Non-staff users land back on the dashboard; the check runs before
// any data access.
func AuthStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect("/login/", fiber.StatusSeeOther)
		}

		userID, ok := sess.Get("user_id").(uint)
		if !ok || userID == 0 {
			return c.Redirect("/login/", fiber.StatusSeeOther)
		}

		isStaff, _ := sess.Get("is_staff").(bool)
		if !isStaff {
			return c.Redirect("/", fiber.StatusSeeOther)
		}

		c.Locals("userID", userID)
		c.Locals("username", sess.Get("username"))
		c.Locals("isStaff", true)

		return c.Next()
	}
}

// StartSession binds a session to the user after a successful login.
func StartSession(c *fiber.Ctx, user *models.User) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("is_staff", user.IsStaff)
	return sess.Save()
}

// EndSession destroys the caller's session.
func EndSession(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// SessionUserID returns the authenticated user id, or 0 when the
// session is anonymous. Used by the login page to skip the form for
// users who already hold a session.
func SessionUserID(c *fiber.Ctx) uint {
	sess, err := store.Get(c)
	if err != nil {
		return 0
	}
	userID, _ := sess.Get("user_id").(uint)
	return userID
}
