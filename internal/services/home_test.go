package services_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/hogarlabs/hogar/internal/models"
	"github.com/hogarlabs/hogar/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodForHour(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, models.TimeEvening},
		{4, models.TimeEvening},
		{5, models.TimeMorning},
		{11, models.TimeMorning},
		{12, models.TimeAfternoon},
		{19, models.TimeAfternoon},
		{20, models.TimeEvening},
		{23, models.TimeEvening},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, services.PeriodForHour(tc.hour), "hour %d", tc.hour)
	}
}

func TestComposeHomeFiltersAnnouncementsByPeriod(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ana", false)

	require.NoError(t, db.Create(&models.Announcement{
		Title: "Desayuno", Content: "x", TimeOfDay: models.TimeMorning, IsActive: true,
	}).Error)

	rng := rand.New(rand.NewSource(1))
	afternoon := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	view, err := services.ComposeHome(db, user.ID, afternoon, rng)
	require.NoError(t, err)
	assert.Nil(t, view.Announcement, "a morning-only notice must not show in the afternoon")

	morning := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	view, err = services.ComposeHome(db, user.ID, morning, rng)
	require.NoError(t, err)
	require.NotNil(t, view.Announcement)
	assert.Equal(t, "Desayuno", view.Announcement.Title)
}

func TestComposeHomeAllPeriodAlwaysEligible(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ana", false)

	require.NoError(t, db.Create(&models.Announcement{
		Title: "Siempre", Content: "x", TimeOfDay: models.TimeAll, IsActive: true,
	}).Error)

	rng := rand.New(rand.NewSource(1))
	for _, hour := range []int{3, 8, 15, 22} {
		now := time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC)
		view, err := services.ComposeHome(db, user.ID, now, rng)
		require.NoError(t, err)
		require.NotNil(t, view.Announcement, "hour %d", hour)
		assert.Equal(t, "Siempre", view.Announcement.Title)
	}
}

func TestComposeHomeMorningNeverPicksAfternoonNotice(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ana", false)

	require.NoError(t, db.Create(&models.Announcement{
		Title: "Merienda", Content: "x", TimeOfDay: models.TimeAfternoon, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.Announcement{
		Title: "Siempre", Content: "x", TimeOfDay: models.TimeAll, IsActive: true,
	}).Error)

	morning := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		view, err := services.ComposeHome(db, user.ID, morning, rng)
		require.NoError(t, err)
		require.NotNil(t, view.Announcement, "seed %d", seed)
		assert.Equal(t, "Siempre", view.Announcement.Title, "seed %d", seed)
	}
}

func TestComposeHomeSkipsInactiveRows(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ana", false)

	require.NoError(t, db.Create(&models.DailyPhrase{Text: "apagada", IsActive: false}).Error)
	require.NoError(t, db.Create(&models.Announcement{
		Title: "Vieja", Content: "x", TimeOfDay: models.TimeAll, IsActive: false,
	}).Error)

	rng := rand.New(rand.NewSource(1))
	view, err := services.ComposeHome(db, user.ID, time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC), rng)
	require.NoError(t, err)
	assert.Nil(t, view.HeroPhrase)
	assert.Nil(t, view.Announcement)
}

func TestComposeHomeGradientTracksCallerMood(t *testing.T) {
	db := setupTestDB(t)
	ana := createTestUser(t, db, "ana", false)
	ben := createTestUser(t, db, "ben", false)

	rng := rand.New(rand.NewSource(1))
	now := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	// No mood logged: default palette
	view, err := services.ComposeHome(db, ana.ID, now, rng)
	require.NoError(t, err)
	assert.Equal(t, services.GradientFor("feliz"), view.Gradient)

	// Someone else's mood never tints the caller's page
	_, err = services.RecordMood(db, ben.ID, "enojado", "")
	require.NoError(t, err)
	view, err = services.ComposeHome(db, ana.ID, now, rng)
	require.NoError(t, err)
	assert.Equal(t, services.GradientFor("feliz"), view.Gradient)
	require.NotNil(t, view.OtherMood)
	assert.Equal(t, "enojado", view.OtherMood.Mood)

	// The caller's own mood does
	_, err = services.RecordMood(db, ana.ID, "triste", "")
	require.NoError(t, err)
	view, err = services.ComposeHome(db, ana.ID, now, rng)
	require.NoError(t, err)
	assert.Equal(t, services.GradientFor("triste"), view.Gradient)
	require.NotNil(t, view.MyMood)
	assert.Equal(t, "triste", view.MyMood.Mood)
}

func TestComposeHomePicksAPhrase(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ana", false)

	require.NoError(t, db.Create(&models.DailyPhrase{Text: "hola", Author: "nadie", IsActive: true}).Error)

	rng := rand.New(rand.NewSource(1))
	view, err := services.ComposeHome(db, user.ID, time.Now(), rng)
	require.NoError(t, err)
	require.NotNil(t, view.HeroPhrase)
	assert.Equal(t, "hola", view.HeroPhrase.Text)
}
