package services

import (
	"fmt"

	"github.com/hogarlabs/hogar/internal/models"
	"gorm.io/gorm"
)

// Canonical mood tags. Every synonym in the taxonomy maps onto one of
// these before any emoji, SVG or gradient lookup.
const (
	MoodAngry = "angry"
	MoodSad   = "sad"
	MoodTired = "tired"
	MoodCalm  = "calm"
	MoodHappy = "happy"
	MoodLove  = "love"
)

// canonicalMoods maps every accepted tag (Spanish UI tags and their
// English counterparts) to its canonical form. This table is the single
// source of truth shared by the emoji, SVG and gradient lookups so the
// renderings cannot drift apart.
var canonicalMoods = map[string]string{
	"enojado": MoodAngry,
	"triste":  MoodSad,
	"cansado": MoodTired,
	"calmado": MoodCalm,
	"feliz":   MoodHappy,
	"amoroso": MoodLove,
	"angry":   MoodAngry,
	"sad":     MoodSad,
	"tired":   MoodTired,
	"calm":    MoodCalm,
	"happy":   MoodHappy,
	"love":    MoodLove,
}

var moodEmojis = map[string]string{
	MoodAngry: "😡",
	MoodSad:   "😢",
	MoodTired: "😴",
	MoodCalm:  "😊",
	MoodHappy: "😄",
	MoodLove:  "❤️",
}

// Gradient is a dashboard background palette: two gradient stops plus
// three floating blob colors.
type Gradient struct {
	BG1   string `json:"bg1"`
	BG2   string `json:"bg2"`
	Blob1 string `json:"blob1"`
	Blob2 string `json:"blob2"`
	Blob3 string `json:"blob3"`
}

var moodGradients = map[string]Gradient{
	MoodHappy: {
		BG1: "#ffb347", BG2: "#ffcc33",
		Blob1: "rgba(255, 179, 71, 0.8)", Blob2: "rgba(255, 204, 51, 0.8)", Blob3: "rgba(255, 223, 0, 0.6)",
	},
	MoodCalm: {
		BG1: "#4facfe", BG2: "#00f2fe",
		Blob1: "rgba(79, 172, 254, 0.8)", Blob2: "rgba(0, 242, 254, 0.8)", Blob3: "rgba(0, 198, 255, 0.6)",
	},
	MoodTired: {
		BG1: "#8e9eab", BG2: "#eef2f3",
		Blob1: "rgba(142, 158, 171, 0.8)", Blob2: "rgba(200, 210, 220, 0.8)", Blob3: "rgba(100, 110, 120, 0.5)",
	},
	MoodSad: {
		BG1: "#141E30", BG2: "#243B55",
		Blob1: "rgba(20, 30, 48, 0.9)", Blob2: "rgba(36, 59, 85, 0.9)", Blob3: "rgba(10, 20, 40, 0.5)",
	},
	MoodAngry: {
		BG1: "#cb2d3e", BG2: "#ef473a",
		Blob1: "rgba(203, 45, 62, 0.9)", Blob2: "rgba(239, 71, 58, 0.9)", Blob3: "rgba(180, 20, 20, 0.5)",
	},
	MoodLove: {
		BG1: "#ec008c", BG2: "#fc6767",
		Blob1: "rgba(236, 0, 140, 0.8)", Blob2: "rgba(252, 103, 103, 0.8)", Blob3: "rgba(255, 20, 147, 0.6)",
	},
}

// maxMoodNote is the stored note cap in characters.
const maxMoodNote = 255

// CanonicalMood resolves a tag through the synonym table. The second
// return reports whether the tag belongs to the taxonomy at all.
func CanonicalMood(tag string) (string, bool) {
	canonical, ok := canonicalMoods[tag]
	return canonical, ok
}

// EmojiFor returns the emoji for a mood tag, falling back to the calm
// face for anything outside the taxonomy.
func EmojiFor(tag string) string {
	canonical, ok := CanonicalMood(tag)
	if !ok {
		canonical = MoodCalm
	}
	return moodEmojis[canonical]
}

// SVGFor renders the mood emoji centered in a 48x48 viewBox, suitable
// for a slider thumb or inline glyph.
func SVGFor(tag string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="48" height="48" viewBox="0 0 48 48"><text x="50%%" y="55%%" dominant-baseline="middle" text-anchor="middle" font-size="36">%s</text></svg>`,
		EmojiFor(tag))
}

// GradientFor returns the background palette for a mood tag. The happy
// palette is the fallback, matching the product's default page tint.
func GradientFor(tag string) Gradient {
	canonical, ok := CanonicalMood(tag)
	if !ok {
		canonical = MoodHappy
	}
	return moodGradients[canonical]
}

// RecordMood appends a mood entry for the user. Tags outside the
// taxonomy are rejected; prior entries are never touched. Notes longer
// than 255 characters are truncated, not rejected.
func RecordMood(db *gorm.DB, userID uint, tag, note string) (*models.MoodEntry, error) {
	if _, ok := CanonicalMood(tag); !ok {
		return nil, fmt.Errorf("unknown mood tag: %s", tag)
	}

	if runes := []rune(note); len(runes) > maxMoodNote {
		note = string(runes[:maxMoodNote])
	}

	entry := models.MoodEntry{
		UserID: userID,
		Mood:   tag,
		Note:   note,
	}
	if err := db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// LatestMood returns the user's newest mood entry, or nil when the
// user has never logged one.
func LatestMood(db *gorm.DB, userID uint) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// LatestOtherMood returns the newest mood entry logged by anybody but
// the given user, or nil when there is none.
func LatestOtherMood(db *gorm.DB, userID uint) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := db.Where("user_id <> ?", userID).
		Order("created_at DESC, id DESC").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
