package handlers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hogarlabs/hogar/internal/storage"
)

// currentUserID extracts the authenticated user id placed in Locals by
// the auth middleware.
func currentUserID(c *fiber.Ctx) (uint, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return 0, fmt.Errorf("user not found in context")
	}
	return userID, nil
}

// currentUsername returns the session username, empty if unset.
func currentUsername(c *fiber.Ctx) string {
	username, _ := c.Locals("username").(string)
	return username
}

// paramID parses a numeric path parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id: %s", raw)
	}
	return uint(id), nil
}

// saveUpload streams a multipart file into storage under a fresh
// uuid-based key within the given prefix and returns the key.
func saveUpload(c *fiber.Ctx, st storage.Storage, prefix string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), filepath.Ext(file.Filename))

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := st.Save(c.UserContext(), key, src, file.Size, contentType); err != nil {
		return "", err
	}
	return key, nil
}
