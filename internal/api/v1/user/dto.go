package user

import (
	"time"

	"github.com/ELIUD25/empire/internal/models"
)

// UserResponse is the account projection returned to clients. It never
// carries the password hash.
type UserResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	IsActivated   bool       `json:"is_activated"`
	IsBanned      bool       `json:"is_banned"`
	Balance       float64    `json:"balance"`
	TotalEarnings float64    `json:"total_earnings"`
	ReferralCode  string     `json:"referral_code"`
	ReferralLink  string     `json:"referral_link"`
	ReferredBy    string     `json:"referred_by,omitempty"`
	Referrals     int        `json:"referrals"`
	ActivatedAt   *time.Time `json:"activated_at,omitempty"`
	RegisteredAt  time.Time  `json:"registered_at"`
	Token         string     `json:"token,omitempty"`
}

func NewUserResponse(u *models.User, token string) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		IsActivated:   u.IsActivated,
		IsBanned:      u.IsBanned,
		Balance:       u.Balance,
		TotalEarnings: u.TotalEarnings,
		ReferralCode:  u.ReferralCode,
		ReferralLink:  u.ReferralLink,
		ReferredBy:    u.ReferredBy,
		Referrals:     u.Referrals,
		ActivatedAt:   u.ActivatedAt,
		RegisteredAt:  u.CreatedAt,
		Token:         token,
	}
}
