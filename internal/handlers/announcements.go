package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hogarlabs/hogar/internal/services"
	"github.com/hogarlabs/hogar/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnnouncementHandler handles the staff-only announcement admin. The
// staff gate is enforced by middleware on the whole route group.
type AnnouncementHandler struct {
	DB *gorm.DB
}

// Index handles GET /announcements/
func (h *AnnouncementHandler) Index(c *fiber.Ctx) error {
	announcements, err := services.ListAnnouncements(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "announcementsIndex")
	}

	return c.Render("announcements", fiber.Map{
		"Username":      currentUsername(c),
		"Announcements": announcements,
	})
}

// Add handles POST /announcements/add/. Missing fields make the
// request a no-op redirect back to the list.
func (h *AnnouncementHandler) Add(c *fiber.Ctx) error {
	if _, err := services.CreateAnnouncement(h.DB,
		c.FormValue("title"),
		c.FormValue("content"),
		c.FormValue("time_of_day"),
	); err != nil {
		zap.S().Debugf("announcement rejected: %v", err)
	}

	return c.Redirect("/announcements/", fiber.StatusSeeOther)
}

// Delete handles POST /announcements/delete/:id
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	announcementID, err := paramID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Announcement not found")
	}

	if err := services.DeleteAnnouncement(h.DB, announcementID); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteAnnouncement")
	}

	return c.Redirect("/announcements/", fiber.StatusSeeOther)
}
