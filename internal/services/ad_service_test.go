package services

import (
	"testing"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"github.com/stretchr/testify/assert"
)

func seedAd(reward float64, maxViews int) *models.Advertisement {
	ad := &models.Advertisement{
		Title:     "Soda spot",
		Brand:     "FizzCo",
		Duration:  30,
		Reward:    reward,
		Category:  "beverages",
		Type:      "video",
		URL:       "https://cdn.example.com/ads/soda.mp4",
		Thumbnail: "https://cdn.example.com/ads/soda.jpg",
		MaxViews:  maxViews,
		IsActive:  true,
	}
	if err := database.DB.Create(ad).Error; err != nil {
		panic(err)
	}
	return ad
}

func TestWatchAd(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00A401", 10)
	ad := seedAd(15, 100)

	reward, newBalance, err := WatchAd(ad.ID, member.ID)
	assert.NoError(t, err)
	assert.Equal(t, 15.0, reward)
	assert.Equal(t, 25.0, newBalance)

	var refreshedAd models.Advertisement
	database.DB.First(&refreshedAd, ad.ID)
	assert.Equal(t, 1, refreshedAd.CurrentViews)

	var refreshed models.User
	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 25.0, refreshed.Balance)
	assert.Equal(t, 15.0, refreshed.TotalEarnings)

	var entry models.Transaction
	database.DB.Last(&entry)
	assert.Equal(t, models.TransactionTypeAdReward, entry.Type)
}

func TestWatchAdViewCap(t *testing.T) {
	setupTestDB()

	alice := seedUser("Alice", "alice@example.com", "EM00A402", 0)
	bob := seedUser("Bob", "bob@example.com", "EM00A403", 0)
	ad := seedAd(10, 1)

	_, _, err := WatchAd(ad.ID, alice.ID)
	assert.NoError(t, err)

	// The last slot is gone; nobody else gets paid
	_, _, err = WatchAd(ad.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAdMaxViews)

	var refreshedAd models.Advertisement
	database.DB.First(&refreshedAd, ad.ID)
	assert.Equal(t, 1, refreshedAd.CurrentViews)

	var refreshedBob models.User
	database.DB.First(&refreshedBob, bob.ID)
	assert.Equal(t, 0.0, refreshedBob.Balance)
}

func TestWatchAdInactive(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00A404", 0)
	ad := seedAd(10, 100)
	database.DB.Model(ad).Update("is_active", false)

	_, _, err := WatchAd(ad.ID, member.ID)
	assert.ErrorIs(t, err, ErrAdInactive)

	_, _, err = WatchAd(99999, member.ID)
	assert.ErrorIs(t, err, ErrAdNotFound)
}
