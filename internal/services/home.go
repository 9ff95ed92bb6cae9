package services

import (
	"math/rand"
	"time"

	"github.com/hogarlabs/hogar/internal/models"
	"gorm.io/gorm"
)

// HomeView is everything the dashboard template needs.
type HomeView struct {
	HeroPhrase   *models.DailyPhrase
	Announcement *models.Announcement
	MyMood       *models.MoodEntry
	OtherMood    *models.MoodEntry
	Gradient     Gradient
}

// PeriodForHour maps a wall-clock hour onto the announcement period:
// [5,12) morning, [12,20) afternoon, the rest evening.
func PeriodForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return models.TimeMorning
	case hour >= 12 && hour < 20:
		return models.TimeAfternoon
	default:
		return models.TimeEvening
	}
}

// ComposeHome assembles the dashboard for a user. Time and randomness
// come in as arguments so the selection logic stays a plain testable
// function; the selection is uniform over the filtered candidate sets.
// Pure read, no side effects.
func ComposeHome(db *gorm.DB, userID uint, now time.Time, rng *rand.Rand) (*HomeView, error) {
	view := &HomeView{}

	var phrases []models.DailyPhrase
	if err := db.Where("is_active = ?", true).Find(&phrases).Error; err != nil {
		return nil, err
	}
	if len(phrases) > 0 {
		view.HeroPhrase = &phrases[rng.Intn(len(phrases))]
	}

	period := PeriodForHour(now.Hour())
	var announcements []models.Announcement
	if err := db.Where("is_active = ? AND time_of_day IN ?", true, []string{models.TimeAll, period}).
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	if len(announcements) > 0 {
		view.Announcement = &announcements[rng.Intn(len(announcements))]
	}

	myMood, err := LatestMood(db, userID)
	if err != nil {
		return nil, err
	}
	view.MyMood = myMood

	otherMood, err := LatestOtherMood(db, userID)
	if err != nil {
		return nil, err
	}
	view.OtherMood = otherMood

	if myMood != nil {
		view.Gradient = GradientFor(myMood.Mood)
	} else {
		view.Gradient = GradientFor("")
	}

	return view, nil
}
