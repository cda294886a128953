package services

import (
	"strings"
	"testing"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRegisterUser(t *testing.T) {
	setupTestDB()

	user, err := RegisterUser("Alice", "Alice@Example.com ", "secret123", "")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email) // normalized
	assert.Equal(t, "user", user.Role)
	assert.False(t, user.IsActivated)
	assert.True(t, strings.HasPrefix(user.ReferralCode, "EM"))
	assert.Len(t, user.ReferralCode, 8)
	assert.Contains(t, user.ReferralLink, "/register?ref="+user.ReferralCode)
	assert.NotEqual(t, "secret123", user.Password)

	_, err = RegisterUser("Alice Again", "alice@example.com", "secret123", "")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterUserWithReferral(t *testing.T) {
	setupTestDB()

	referrer := seedUser("Referrer", "ref@example.com", "EM00R001", 0)

	user, err := RegisterUser("Bob", "bob@example.com", "secret123", referrer.ReferralCode)
	assert.NoError(t, err)
	assert.Equal(t, referrer.ReferralCode, user.ReferredBy)

	_, err = RegisterUser("Carol", "carol@example.com", "secret123", "EMNOBODY")
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
}

func TestReferralCodeCollisionIsTranslated(t *testing.T) {
	setupTestDB()

	seedUser("First", "first@example.com", "EMC0LL01", 0)

	// The unique index on referral_code must surface as gorm.ErrDuplicatedKey,
	// which is what the RegisterUser retry loop matches on.
	dup := &models.User{
		Name:         "Second",
		Email:        "second@example.com",
		Password:     "hashedpassword",
		Role:         "user",
		ReferralCode: "EMC0LL01",
		ReferralLink: "https://empire-eosin.vercel.app/register?ref=EMC0LL01",
	}
	err := database.DB.Create(dup).Error
	assert.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestLoginUser(t *testing.T) {
	setupTestDB()

	registered, err := RegisterUser("Alice", "alice@example.com", "secret123", "")
	assert.NoError(t, err)

	token, user, err := LoginUser("alice@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)

	_, _, err = LoginUser("alice@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = LoginUser("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCheckReferralCode(t *testing.T) {
	setupTestDB()

	seedUser("Referrer", "ref@example.com", "EM00C001", 0)

	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"Empty code is optional", "", true},
		{"Existing code", "EM00C001", true},
		{"Whitespace around code", "  EM00C001  ", true},
		{"Unknown code", "EMZZZZZZ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := CheckReferralCode(tt.code)
			assert.NoError(t, err)
			assert.Equal(t, tt.valid, valid)
		})
	}
}
