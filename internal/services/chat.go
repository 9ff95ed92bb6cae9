package services

import (
	"fmt"
	"time"

	"github.com/hogarlabs/hogar/internal/models"
	"github.com/hogarlabs/hogar/internal/storage"
	"gorm.io/gorm"
)

// chatWindow is how many recent messages a poll returns.
const chatWindow = 50

// ChatMessage is the JSON shape the polling client consumes.
type ChatMessage struct {
	ID        uint    `json:"id"`
	User      string  `json:"user"`
	IsUser    bool    `json:"is_user"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"image_url"`
	Timestamp string  `json:"timestamp"`
}

// ListMessages returns the 50 newest messages in chronological order,
// flagged with whether the requesting user authored each one.
func ListMessages(db *gorm.DB, st storage.Storage, userID uint) ([]ChatMessage, error) {
	var messages []models.Message
	if err := db.Preload("User").
		Order("created_at DESC, id DESC").
		Limit(chatWindow).
		Find(&messages).Error; err != nil {
		return nil, err
	}

	// Fetched newest-first for the window, displayed oldest-first
	out := make([]ChatMessage, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		cm := ChatMessage{
			ID:        msg.ID,
			User:      msg.User.Username,
			IsUser:    msg.UserID == userID,
			Content:   msg.Content,
			Timestamp: msg.CreatedAt.Format(time.RFC3339),
		}
		if msg.ImageKey != "" {
			url := st.URL(msg.ImageKey)
			cm.ImageURL = &url
		}
		out = append(out, cm)
	}
	return out, nil
}

// SendMessage appends a chat message. A message needs text or an
// image; with neither nothing is written and an error comes back.
func SendMessage(db *gorm.DB, userID uint, content, imageKey string) (*models.Message, error) {
	if content == "" && imageKey == "" {
		return nil, fmt.Errorf("empty message")
	}

	msg := models.Message{
		UserID:   userID,
		Content:  content,
		ImageKey: imageKey,
	}
	if err := db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}
