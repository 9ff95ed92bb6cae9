package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hogarlabs/hogar/internal/models"
	"github.com/hogarlabs/hogar/internal/services"
	"github.com/hogarlabs/hogar/internal/storage"
	"github.com/hogarlabs/hogar/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GalleryHandler handles the shared photo gallery
type GalleryHandler struct {
	DB      *gorm.DB
	Storage storage.Storage
}

// photoView pairs a photo row with its resolved image URL for
// templates.
type photoView struct {
	models.Photo
	URL string
}

func (h *GalleryHandler) views(photos []models.Photo) []photoView {
	out := make([]photoView, 0, len(photos))
	for _, p := range photos {
		out = append(out, photoView{Photo: p, URL: h.Storage.URL(p.ImageKey)})
	}
	return out
}

// Index handles GET /gallery/
func (h *GalleryHandler) Index(c *fiber.Ctx) error {
	photos, err := services.ListPhotos(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "galleryIndex")
	}

	return c.Render("gallery/index", fiber.Map{
		"Username": currentUsername(c),
		"Photos":   h.views(photos),
	})
}

// Detail handles GET and POST /gallery/photo/:id. A POST with the
// delete field removes the photo, any other POST updates the
// description.
func (h *GalleryHandler) Detail(c *fiber.Ctx) error {
	photoID, err := paramID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Photo not found")
	}

	if c.Method() == fiber.MethodPost {
		if c.FormValue("delete") != "" {
			if err := services.DeletePhoto(c.UserContext(), h.DB, h.Storage, photoID); err != nil {
				if err.Error() == "not found" {
					return utils.NotFoundResponse(c, "Photo not found")
				}
				return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deletePhoto")
			}
			return c.Redirect("/gallery/", fiber.StatusSeeOther)
		}

		if err := services.UpdatePhotoDescription(h.DB, photoID, c.FormValue("description")); err != nil {
			if err.Error() == "not found" {
				return utils.NotFoundResponse(c, "Photo not found")
			}
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updatePhoto")
		}
		return c.Redirect("/gallery/photo/"+c.Params("id"), fiber.StatusSeeOther)
	}

	photo, err := services.GetPhoto(h.DB, photoID)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Photo not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "photoDetail")
	}

	return c.Render("gallery/detail", fiber.Map{
		"Username": currentUsername(c),
		"Photo":    photoView{Photo: *photo, URL: h.Storage.URL(photo.ImageKey)},
	})
}

// Upload handles POST /gallery/upload/. Without an image file the
// request is a no-op redirect, mirroring the form flow.
func (h *GalleryHandler) Upload(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusSeeOther)
	}

	file, ferr := c.FormFile("image")
	if ferr != nil {
		return c.Redirect("/gallery/", fiber.StatusSeeOther)
	}

	key, err := saveUpload(c, h.Storage, storage.GalleryPrefix, file)
	if err != nil {
		zap.S().Errorf("gallery upload failed: %v", err)
		return utils.ErrorResponse(c, "upload failed", fiber.StatusInternalServerError, "uploadPhoto")
	}

	if _, err := services.CreatePhoto(h.DB, key, c.FormValue("description"), userID); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "uploadPhoto")
	}

	return c.Redirect("/gallery/", fiber.StatusSeeOther)
}

// Delete handles POST /gallery/delete/:id. Same service path as the
// detail-page delete, so the blob always goes with the row.
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	photoID, err := paramID(c, "id")
	if err != nil {
		return utils.NotFoundResponse(c, "Photo not found")
	}

	if err := services.DeletePhoto(c.UserContext(), h.DB, h.Storage, photoID); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "Photo not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deletePhoto")
	}

	return c.Redirect("/gallery/", fiber.StatusSeeOther)
}
