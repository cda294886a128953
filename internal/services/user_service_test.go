package services

import (
	"errors"
	"testing"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestActivateAccountNoReferrer(t *testing.T) {
	setupTestDB()

	member := seedUser("Alice", "alice@example.com", "EM000001", 500)

	activated, err := ActivateAccount(member.ID)
	assert.NoError(t, err)
	assert.True(t, activated.IsActivated)
	assert.NotNil(t, activated.ActivatedAt)
	assert.Equal(t, 0.0, activated.Balance)
	assert.Equal(t, 0.0, activated.TotalEarnings) // the fee is not an earning

	var entry models.Transaction
	database.DB.Last(&entry)
	assert.Equal(t, models.TransactionTypeActivationFee, entry.Type)
	assert.Equal(t, -500.0, entry.Amount)
	assert.Equal(t, 500.0, entry.BalanceBefore)
	assert.Equal(t, 0.0, entry.BalanceAfter)
	assert.NotEmpty(t, entry.Hash)
}

func TestActivateAccountPreconditions(t *testing.T) {
	setupTestDB()

	poor := seedUser("Poor", "poor@example.com", "EM000002", 499)
	_, err := ActivateAccount(poor.ID)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Nothing was written
	var count int64
	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(0), count)

	banned := seedUser("Banned", "banned@example.com", "EM000003", 1000)
	database.DB.Model(banned).Updates(map[string]interface{}{"is_banned": true, "ban_reason": "fraud"})
	_, err = ActivateAccount(banned.ID)
	assert.ErrorIs(t, err, ErrUserBanned)

	member := seedUser("Member", "member@example.com", "EM000004", 1000)
	_, err = ActivateAccount(member.ID)
	assert.NoError(t, err)
	_, err = ActivateAccount(member.ID)
	assert.ErrorIs(t, err, ErrAlreadyActivated)

	// The fee was charged exactly once
	var member2 models.User
	database.DB.First(&member2, member.ID)
	assert.Equal(t, 500.0, member2.Balance)

	_, err = ActivateAccount(99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestActivateAccountReferralCascade(t *testing.T) {
	setupTestDB()

	// great-grandparent <- grandparent <- parent <- member
	great := seedUser("Great", "great@example.com", "EM00GG01", 0)

	grand := seedUser("Grand", "grand@example.com", "EM00GP01", 0)
	database.DB.Model(grand).Update("referred_by", great.ReferralCode)

	parent := seedUser("Parent", "parent@example.com", "EM00PA01", 0)
	database.DB.Model(parent).Update("referred_by", grand.ReferralCode)

	member := seedUser("Member", "member@example.com", "EM00ME01", 500)
	database.DB.Model(member).Update("referred_by", parent.ReferralCode)

	_, err := ActivateAccount(member.ID)
	assert.NoError(t, err)

	var l1, l2, l3 models.User
	database.DB.First(&l1, parent.ID)
	database.DB.First(&l2, grand.ID)
	database.DB.First(&l3, great.ID)

	assert.Equal(t, 200.0, l1.Balance)
	assert.Equal(t, 200.0, l1.TotalEarnings)
	assert.Equal(t, 1, l1.Referrals) // only the direct referrer gets the count

	assert.Equal(t, 150.0, l2.Balance)
	assert.Equal(t, 0, l2.Referrals)

	assert.Equal(t, 50.0, l3.Balance)
	assert.Equal(t, 0, l3.Referrals)

	var bonusCount int64
	database.DB.Model(&models.Transaction{}).
		Where("type = ?", models.TransactionTypeReferralBonus).Count(&bonusCount)
	assert.Equal(t, int64(3), bonusCount)
}

func TestActivateAccountCascadeStopsAtChainEnd(t *testing.T) {
	setupTestDB()

	// Four ancestors, but only three levels pay out
	top := seedUser("Top", "top@example.com", "EM00T001", 0)
	a3 := seedUser("A3", "a3@example.com", "EM00A301", 0)
	database.DB.Model(a3).Update("referred_by", top.ReferralCode)
	a2 := seedUser("A2", "a2@example.com", "EM00A201", 0)
	database.DB.Model(a2).Update("referred_by", a3.ReferralCode)
	a1 := seedUser("A1", "a1@example.com", "EM00A101", 0)
	database.DB.Model(a1).Update("referred_by", a2.ReferralCode)
	member := seedUser("Member", "m@example.com", "EM00M001", 500)
	database.DB.Model(member).Update("referred_by", a1.ReferralCode)

	_, err := ActivateAccount(member.ID)
	assert.NoError(t, err)

	var fourth models.User
	database.DB.First(&fourth, top.ID)
	assert.Equal(t, 0.0, fourth.Balance)
}

func TestActivateAccountRollsBackOnCascadeFailure(t *testing.T) {
	setupTestDB()

	referrer := seedUser("Referrer", "ref@example.com", "EM00R101", 0)
	member := seedUser("Member", "member@example.com", "EM00M101", 500)
	database.DB.Model(member).Update("referred_by", referrer.ReferralCode)

	// Make the bonus ledger write fail after the fee debit has been applied.
	// The whole activation runs in one transaction, so everything must come
	// back: balance, flag, and the referrer's credit.
	err := database.DB.Callback().Create().Before("gorm:create").
		Register("fail_bonus_write", func(db *gorm.DB) {
			if entry, ok := db.Statement.Dest.(*models.Transaction); ok &&
				entry.Type == models.TransactionTypeReferralBonus {
				db.AddError(errors.New("simulated write failure"))
			}
		})
	assert.NoError(t, err)
	defer database.DB.Callback().Create().Remove("fail_bonus_write")

	_, err = ActivateAccount(member.ID)
	assert.Error(t, err)

	var reloaded models.User
	database.DB.First(&reloaded, member.ID)
	assert.Equal(t, 500.0, reloaded.Balance)
	assert.False(t, reloaded.IsActivated)
	assert.Nil(t, reloaded.ActivatedAt)

	var ref models.User
	database.DB.First(&ref, referrer.ID)
	assert.Equal(t, 0.0, ref.Balance)
	assert.Equal(t, 0, ref.Referrals)

	var count int64
	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestActivateAccountDanglingReferralCode(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00D001", 500)
	database.DB.Model(member).Update("referred_by", "EMNOBODY")

	// A code that resolves to nobody stops the cascade but never blocks
	// the activation itself.
	activated, err := ActivateAccount(member.ID)
	assert.NoError(t, err)
	assert.True(t, activated.IsActivated)

	var bonusCount int64
	database.DB.Model(&models.Transaction{}).
		Where("type = ?", models.TransactionTypeReferralBonus).Count(&bonusCount)
	assert.Equal(t, int64(0), bonusCount)
}

func TestBanAndUnbanUser(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00B001", 250)

	banned, err := BanUser(member.ID, "spam submissions")
	assert.NoError(t, err)
	assert.True(t, banned.IsBanned)
	assert.Equal(t, "spam submissions", banned.BanReason)
	assert.Equal(t, 250.0, banned.Balance) // balance survives the ban

	unbanned, err := UnbanUser(member.ID)
	assert.NoError(t, err)
	assert.False(t, unbanned.IsBanned)
	assert.Empty(t, unbanned.BanReason)

	_, err = BanUser(99999, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
