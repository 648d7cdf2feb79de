package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	user := &User{Email: "test@example.com"}

	require.NoError(t, user.SetPassword("my-secret-password"))
	assert.NotEqual(t, "my-secret-password", user.PasswordHash)

	assert.True(t, user.CheckPassword("my-secret-password"))
	assert.False(t, user.CheckPassword("wrong-password"))
	assert.False(t, user.CheckPassword(""))
}

func TestBeforeCreateNormalizesEmail(t *testing.T) {
	user := &User{Email: "  Mixed.Case@Example.COM "}

	require.NoError(t, user.BeforeCreate(nil))
	assert.Equal(t, "mixed.case@example.com", user.Email)
}

func TestToProfile(t *testing.T) {
	now := time.Now()
	user := &User{
		Email:       "test@example.com",
		IsActive:    true,
		LastLoginAt: &now,
	}
	user.PasswordHash = "should-not-leak"

	profile := user.ToProfile()

	assert.Equal(t, "test@example.com", profile.Email)
	assert.True(t, profile.IsActive)
	assert.NotNil(t, profile.Concerts, "nil concerts should become an empty list")
	assert.Empty(t, profile.Concerts)
}

func TestConcertIsMultiDay(t *testing.T) {
	start := time.Date(2017, 8, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2017, 8, 13, 0, 0, 0, 0, time.UTC)

	single := Concert{StartDate: &start}
	assert.False(t, single.IsMultiDay())

	// End dates only arrive on multi-day events, so presence is the signal
	festival := Concert{StartDate: &start, EndDate: &end}
	assert.True(t, festival.IsMultiDay())
}
