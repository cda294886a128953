package services

import (
	"testing"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestApproveDeposit(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00F001", 0)

	deposit, err := CreateDeposit(member, 300, "QJ12345 Confirmed. Ksh300.00 sent")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, deposit.Status)

	approved, err := ApproveDeposit(deposit.ID, 1, "Administrator")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)

	var refreshed models.User
	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 300.0, refreshed.Balance)
	assert.Equal(t, 0.0, refreshed.TotalEarnings) // deposits are not earnings

	var entry models.Transaction
	database.DB.Last(&entry)
	assert.Equal(t, models.TransactionTypeDeposit, entry.Type)
	assert.Equal(t, "Administrator", entry.Operator)

	// A second approval must not double-credit
	_, err = ApproveDeposit(deposit.ID, 1, "Administrator")
	assert.ErrorIs(t, err, models.ErrAlreadyProcessed)

	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 300.0, refreshed.Balance)
}

func TestRejectDeposit(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00F002", 0)
	deposit, _ := CreateDeposit(member, 300, "bogus message")

	rejected, err := RejectDeposit(deposit.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	var refreshed models.User
	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 0.0, refreshed.Balance)

	// Rejected requests are final
	_, err = ApproveDeposit(deposit.ID, 1, "Administrator")
	assert.ErrorIs(t, err, models.ErrAlreadyProcessed)

	_, err = RejectDeposit(99999)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestCreateWithdrawalChecksBalance(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00F003", 100)
	details := datatypes.JSON([]byte(`{"phone":"+254700000000"}`))

	_, err := CreateWithdrawal(member, 150, models.WithdrawalMethodMpesa, details)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	withdrawal, err := CreateWithdrawal(member, 100, models.WithdrawalMethodMpesa, details)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, withdrawal.Status)

	// Submission does not reserve funds
	var refreshed models.User
	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 100.0, refreshed.Balance)
}

func TestApproveWithdrawalDebitsAtApproval(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00F004", 500)
	details := datatypes.JSON([]byte(`{"phone":"+254700000000"}`))

	// Two overlapping requests both pass the submit-time check. Approval
	// debits unconditionally, so the second one drives the balance negative.
	w1, err := CreateWithdrawal(member, 400, models.WithdrawalMethodMpesa, details)
	assert.NoError(t, err)
	w2, err := CreateWithdrawal(member, 400, models.WithdrawalMethodMpesa, details)
	assert.NoError(t, err)

	_, err = ApproveWithdrawal(w1.ID, 1, "Administrator")
	assert.NoError(t, err)
	_, err = ApproveWithdrawal(w2.ID, 1, "Administrator")
	assert.NoError(t, err)

	var refreshed models.User
	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, -300.0, refreshed.Balance)

	var entry models.Transaction
	database.DB.Last(&entry)
	assert.Equal(t, models.TransactionTypeWithdrawal, entry.Type)
	assert.Equal(t, -400.0, entry.Amount)
}

func TestRejectWithdrawalLeavesBalanceAlone(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00F005", 500)
	details := datatypes.JSON([]byte(`{"bank":"Equity","account":"123"}`))

	withdrawal, _ := CreateWithdrawal(member, 200, models.WithdrawalMethodBank, details)

	rejected, err := RejectWithdrawal(withdrawal.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	var refreshed models.User
	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 500.0, refreshed.Balance)

	var count int64
	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestFindDepositsScoping(t *testing.T) {
	setupTestDB()

	alice := seedUser("Alice", "alice@example.com", "EM00F006", 0)
	bob := seedUser("Bob", "bob@example.com", "EM00F007", 0)

	CreateDeposit(alice, 100, "msg a1")
	CreateDeposit(alice, 200, "msg a2")
	CreateDeposit(bob, 300, "msg b1")

	mine, err := FindDeposits(&alice.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := FindDeposits(nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
