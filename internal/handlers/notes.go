package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hogarlabs/hogar/internal/services"
	"github.com/hogarlabs/hogar/internal/utils"
	"gorm.io/gorm"
)

// NotesHandler handles private per-user notes
type NotesHandler struct {
	DB *gorm.DB
}

// Index handles GET /notes/
func (h *NotesHandler) Index(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	notes, err := services.ListNotes(h.DB, userID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "notesIndex")
	}

	return c.Render("notes/index", fiber.Map{
		"Username": currentUsername(c),
		"Notes":    notes,
	})
}

// Create handles POST /notes/manage/. Empty content is silently
// ignored.
func (h *NotesHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	if _, err := services.CreateNote(h.DB, userID, c.FormValue("content")); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createNote")
	}

	return c.Redirect("/notes/", fiber.StatusSeeOther)
}

// Manage handles POST /notes/manage/:id: delete when the delete field
// is present, update otherwise. A note owned by someone else takes the
// not-found path, indistinguishable from a nonexistent id.
func (h *NotesHandler) Manage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	noteID, err := paramID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Note not found")
	}

	if c.FormValue("delete") != "" {
		err = services.DeleteNote(h.DB, userID, noteID)
	} else {
		err = services.UpdateNote(h.DB, userID, noteID, c.FormValue("content"))
	}
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Note not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "manageNote")
	}

	return c.Redirect("/notes/", fiber.StatusSeeOther)
}
