package handlers

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hogarlabs/hogar/internal/services"
	"github.com/hogarlabs/hogar/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HomeHandler handles the dashboard and mood logging
type HomeHandler struct {
	DB *gorm.DB
}

// Home handles GET /
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	view, err := services.ComposeHome(h.DB, userID, time.Now(), rng)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "composeHome")
	}

	data := fiber.Map{
		"Username":     currentUsername(c),
		"IsStaff":      c.Locals("isStaff"),
		"HeroPhrase":   view.HeroPhrase,
		"Announcement": view.Announcement,
		"Gradient":     view.Gradient,
	}
	if view.MyMood != nil {
		data["MyMood"] = view.MyMood
		data["MyMoodEmoji"] = services.EmojiFor(view.MyMood.Mood)
	}
	if view.OtherMood != nil {
		data["OtherMood"] = view.OtherMood
		data["OtherMoodEmoji"] = services.EmojiFor(view.OtherMood.Mood)
	}

	return c.Render("dashboard", data)
}

// RecordMood handles POST /mood/. Unknown tags store nothing; either
// way the browser goes back to the dashboard.
func (h *HomeHandler) RecordMood(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	if _, err := services.RecordMood(h.DB, userID, c.FormValue("mood"), c.FormValue("note")); err != nil {
		zap.S().Debugf("mood rejected for user %d: %v", userID, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
