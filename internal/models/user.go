package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform pricing constants, in KES.
const (
	ActivationFee       = 500.0
	ReferralBonusLevel1 = 200.0
	ReferralBonusLevel2 = 150.0
	ReferralBonusLevel3 = 50.0
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"registered_at"`
	UpdatedAt time.Time `json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'user'" json:"role"`

	IsActivated bool       `gorm:"default:false" json:"is_activated"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	IsBanned    bool       `gorm:"default:false" json:"is_banned"`
	BanReason   string     `json:"ban_reason,omitempty"`

	Balance       float64 `gorm:"type:decimal(20,2);not null;default:0" json:"balance"`
	TotalEarnings float64 `gorm:"type:decimal(20,2);not null;default:0" json:"total_earnings"`

	// ReferralCode is unique and immutable once set. ReferredBy stores the
	// referrer's code, not a foreign key.
	ReferralCode string `gorm:"uniqueIndex;not null" json:"referral_code"`
	ReferralLink string `gorm:"not null" json:"referral_link"`
	ReferredBy   string `gorm:"index" json:"referred_by,omitempty"`
	Referrals    int    `gorm:"default:0" json:"referrals"`
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// NewReferralCode returns a fresh "EM"-prefixed code. Uniqueness is enforced
// by the database index; callers retry on collision.
func NewReferralCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "EM" + strings.ToUpper(raw[:6])
}
