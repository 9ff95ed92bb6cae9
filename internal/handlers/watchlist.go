package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hogarlabs/hogar/internal/services"
	"github.com/hogarlabs/hogar/internal/utils"
	"gorm.io/gorm"
)

// WatchlistHandler handles the shared movie/series watchlist
type WatchlistHandler struct {
	DB *gorm.DB
}

// Index handles GET /watchlist/
func (h *WatchlistHandler) Index(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	items, err := services.ListWatchItems(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "watchlistIndex")
	}

	return c.Render("watchlist/index", fiber.Map{
		"Username": currentUsername(c),
		"UserID":   userID,
		"Items":    items,
	})
}

// Add handles POST /watchlist/add/
func (h *WatchlistHandler) Add(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	rating, _ := strconv.Atoi(c.FormValue("rating", "0"))

	if _, err := services.AddWatchItem(h.DB, userID,
		c.FormValue("title"),
		c.FormValue("item_type"),
		rating,
		c.FormValue("comment"),
	); err != nil && err.Error() != "title is required" {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "addWatchItem")
	}

	return c.Redirect("/watchlist/", fiber.StatusSeeOther)
}

// Delete handles POST /watchlist/delete/:id. Shared-list semantics:
// any authenticated user may remove any item.
func (h *WatchlistHandler) Delete(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Watch item not found")
	}

	if err := services.DeleteWatchItem(h.DB, itemID); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Watch item not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteWatchItem")
	}

	return c.Redirect("/watchlist/", fiber.StatusSeeOther)
}

// Toggle handles POST /watchlist/toggle/:id
func (h *WatchlistHandler) Toggle(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Watch item not found")
	}

	if err := services.ToggleWatched(h.DB, itemID); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Watch item not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "toggleWatched")
	}

	return c.Redirect("/watchlist/", fiber.StatusSeeOther)
}

// AddReview handles POST /watchlist/add_review/:id. One review per
// user per item: a second submit overwrites the first.
func (h *WatchlistHandler) AddReview(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	itemID, err := paramID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Watch item not found")
	}

	rating, _ := strconv.Atoi(c.FormValue("rating", "0"))

	if _, err := services.UpsertReview(h.DB, itemID, userID, rating, c.FormValue("comment")); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Watch item not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "addReview")
	}

	return c.Redirect("/watchlist/", fiber.StatusSeeOther)
}
