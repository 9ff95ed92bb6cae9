package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hogarlabs/hogar/internal/services"
	"github.com/hogarlabs/hogar/internal/storage"
	"github.com/hogarlabs/hogar/internal/types"
	"github.com/hogarlabs/hogar/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChatHandler handles the chat polling API
type ChatHandler struct {
	DB      *gorm.DB
	Storage storage.Storage
}

// GetMessages handles GET /chat/get/
// @Summary Get recent chat messages
// @Description Returns the 50 most recent messages, oldest first
// @Tags Chat
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /chat/get/ [get]
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return types.NewAppError(fiber.StatusForbidden, err.Error(), "chat.authorization")
	}

	messages, err := services.ListMessages(h.DB, h.Storage, userID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getMessages")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"messages": messages})
}

// SendMessage handles POST /chat/send/
// @Summary Send a chat message
// @Description Creates a message with text and/or an attached image
// @Tags Chat
// @Accept multipart/form-data
// @Produce json
// @Param content formData string false "Message text"
// @Param image formData file false "Attached image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /chat/send/ [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return types.NewAppError(fiber.StatusForbidden, err.Error(), "chat.authorization")
	}

	content := c.FormValue("content")

	// The message must carry text or an image; check before touching
	// storage so a rejected send leaves no stray blob
	imageKey := ""
	file, ferr := c.FormFile("image")
	if content == "" && ferr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error"})
	}

	if ferr == nil {
		imageKey, err = saveUpload(c, h.Storage, storage.ChatPrefix, file)
		if err != nil {
			zap.S().Errorf("chat image upload failed: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error"})
		}
	}

	if _, err := services.SendMessage(h.DB, userID, content, imageKey); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}
