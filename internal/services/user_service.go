package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserBanned          = errors.New("account is banned")
	ErrAlreadyActivated    = errors.New("account is already activated")
	ErrInsufficientBalance = errors.New("insufficient balance for activation")
)

func FindUserByID(userID uint) (models.User, error) {
	// Try cache
	cacheKey := fmt.Sprintf("user:%d", userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return user, err
	}

	// Set cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

func invalidateUserCache(userIDs ...uint) {
	if database.RedisClient == nil {
		return
	}
	for _, id := range userIDs {
		database.RedisClient.Del(database.Ctx, fmt.Sprintf("user:%d", id))
	}
}

// FindUsers retrieves a paginated list of users.
func FindUsers(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	offset := (page - 1) * limit

	if err := database.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := database.DB.Order("created_at desc").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ActivateAccount converts a funded, non-activated, non-banned account into an
// activated one: it debits the activation fee, flips the activation flag and
// pays the referral chain, all in one database transaction. Either everything
// commits or nothing does.
func ActivateAccount(userID uint) (*models.User, error) {
	var activated models.User
	var touched []uint

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		// Precondition order matters: first failure wins.
		if user.IsBanned {
			return ErrUserBanned
		}
		if user.IsActivated {
			return ErrAlreadyActivated
		}
		if user.Balance < models.ActivationFee {
			return ErrInsufficientBalance
		}

		now := time.Now()
		user.IsActivated = true
		user.ActivatedAt = &now
		if err := applyLedgerEntry(tx, user, -models.ActivationFee, models.TransactionTypeActivationFee,
			"Account activation fee", "system", 0, false); err != nil {
			return err
		}
		touched = append(touched, user.ID)

		if user.ReferredBy != "" {
			if err := payReferralBonuses(tx, user.ReferredBy, user.Email, &touched); err != nil {
				return err
			}
		}

		activated = *user
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(touched...)
	return &activated, nil
}

// payReferralBonuses pays upward through at most three levels of the referral
// chain. Level 1 gets 200 and a referral count bump, level 2 gets 150, level 3
// gets 50; levels 2 and 3 get no count bump. A code that resolves to nobody
// stops the chain silently. Runs on the activation transaction, so a failed
// write rolls back the whole activation.
func payReferralBonuses(tx *gorm.DB, code, activatedEmail string, touched *[]uint) error {
	bonuses := []float64{models.ReferralBonusLevel1, models.ReferralBonusLevel2, models.ReferralBonusLevel3}

	for level, bonus := range bonuses {
		var referrer models.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("referral_code = ?", code).First(&referrer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if level == 0 {
			referrer.Referrals++
		}
		reason := fmt.Sprintf("Level %d referral bonus for activation of %s", level+1, activatedEmail)
		if err := applyLedgerEntry(tx, &referrer, bonus, models.TransactionTypeReferralBonus,
			reason, "system", 0, true); err != nil {
			return err
		}
		*touched = append(*touched, referrer.ID)

		if referrer.ReferredBy == "" {
			return nil
		}
		code = referrer.ReferredBy
	}

	return nil
}

// BanUser soft-bans an account with a reason; the account keeps its balance
// and history.
func BanUser(userID uint, reason string) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.IsBanned = true
	user.BanReason = reason
	if err := database.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	invalidateUserCache(user.ID)
	return &user, nil
}

func UnbanUser(userID uint) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.IsBanned = false
	user.BanReason = ""
	if err := database.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	invalidateUserCache(user.ID)
	return &user, nil
}
