package database

import (
	"strings"

	"github.com/hogarlabs/hogar/data"
	"github.com/hogarlabs/hogar/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDailyPhrases loads the embedded phrase set on first boot. The
// table is read-only at runtime, so a non-empty table is left alone.
func SeedDailyPhrases(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.DailyPhrase{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var phrases []models.DailyPhrase
	for _, line := range strings.Split(data.SeedDailyPhrases, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		text, author, _ := strings.Cut(line, "|")
		phrases = append(phrases, models.DailyPhrase{
			Text:     text,
			Author:   author,
			IsActive: true,
		})
	}
	if len(phrases) == 0 {
		return nil
	}

	if err := db.Create(&phrases).Error; err != nil {
		return err
	}
	zap.S().Infof("Seeded %d daily phrases", len(phrases))
	return nil
}
