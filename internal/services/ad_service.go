package services

import (
	"errors"
	"fmt"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAdNotFound = errors.New("advertisement not found")
	ErrAdInactive = errors.New("advertisement is not active")
	ErrAdMaxViews = errors.New("advertisement has reached maximum views")
)

func CreateAd(ad *models.Advertisement) error {
	return database.DB.Create(ad).Error
}

func UpdateAd(adID uint, updates map[string]interface{}) (*models.Advertisement, error) {
	var ad models.Advertisement
	if err := database.DB.First(&ad, adID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&ad).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

func DeleteAd(adID uint) error {
	result := database.DB.Delete(&models.Advertisement{}, adID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}
	return nil
}

func FindActiveAds() ([]models.Advertisement, error) {
	var ads []models.Advertisement
	if err := database.DB.Where("is_active = ?", true).Order("created_at desc").Find(&ads).Error; err != nil {
		return nil, err
	}
	return ads, nil
}

// WatchAd consumes one view slot and credits the viewer immediately; there is
// no moderation step for ad rewards. The view increment and the credit commit
// together or not at all, and the view counter never exceeds its maximum even
// under concurrent watches.
func WatchAd(adID, userID uint) (reward, newBalance float64, err error) {
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var ad models.Advertisement
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&ad, adID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAdNotFound
			}
			return err
		}

		if !ad.IsActive {
			return ErrAdInactive
		}
		if ad.CurrentViews >= ad.MaxViews {
			return ErrAdMaxViews
		}

		ad.CurrentViews++
		if err := tx.Save(&ad).Error; err != nil {
			return err
		}

		user, err := lockUser(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		reason := fmt.Sprintf("Reward for watching ad #%d: %s", ad.ID, ad.Title)
		if err := applyLedgerEntry(tx, user, ad.Reward, models.TransactionTypeAdReward,
			reason, "system", 0, true); err != nil {
			return err
		}

		reward = ad.Reward
		newBalance = user.Balance
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	invalidateUserCache(userID)
	return reward, newBalance, nil
}
