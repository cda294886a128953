package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ELIUD25/empire/config"
	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

func RegisterUser(name, email, password, referralCode string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existingUser models.User
	result := database.DB.Where("email = ?", email).First(&existingUser)
	if result.Error == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	// An empty referral code is fine; a non-empty one must resolve to an
	// existing account. Self-referral cannot happen here since the new
	// account's code does not exist yet.
	referralCode = strings.TrimSpace(referralCode)
	if referralCode != "" {
		var referrer models.User
		if err := database.DB.Where("referral_code = ?", referralCode).First(&referrer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidReferralCode
			}
			return nil, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:       name,
		Email:      email,
		Password:   string(hashedPassword),
		Role:       "user",
		ReferredBy: referralCode,
	}

	// The code column has a unique index; regenerate on the rare collision.
	const maxAttempts = 10
	for attempt := 0; attempt < maxAttempts; attempt++ {
		user.ReferralCode = models.NewReferralCode()
		user.ReferralLink = fmt.Sprintf("%s/register?ref=%s", cfg.AppBaseURL, user.ReferralCode)

		err = database.DB.Create(user).Error
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("failed to generate unique referral code: %w", err)
}

func LoginUser(email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// CheckReferralCode reports whether a referral code resolves to an account.
// Empty codes are considered valid since referrals are optional.
func CheckReferralCode(code string) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return true, nil
	}

	var user models.User
	err := database.DB.Where("referral_code = ?", code).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
