package services

import (
	"time"

	"github.com/ELIUD25/empire/config"
	"github.com/ELIUD25/empire/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applyLedgerEntry moves money on a locked user row: it adjusts the balance
// (and lifetime earnings for reward credits), persists the user, and appends
// the matching ledger row, all on the caller's transaction. A positive amount
// credits, a negative amount debits. Preconditions (sufficient balance,
// capacity, status) are the caller's job.
func applyLedgerEntry(tx *gorm.DB, user *models.User, amount float64, txType models.TransactionType, reason, operator string, operatorID uint, isEarning bool) error {
	before := user.Balance
	user.Balance = before + amount
	if isEarning && amount > 0 {
		user.TotalEarnings += amount
	}

	if err := tx.Save(user).Error; err != nil {
		return err
	}

	entry := models.Transaction{
		CreatedAt:     time.Now(),
		UserID:        user.ID,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  user.Balance,
		Reason:        reason,
		Operator:      operator,
		OperatorID:    operatorID,
		Type:          txType,
	}
	if cfg, err := config.LoadConfig(); err == nil && cfg.JWTSecret != "" {
		entry.Hash = entry.GenerateHash(cfg.JWTSecret)
	}

	return tx.Create(&entry).Error
}

// lockUser loads a user row FOR UPDATE inside tx.
func lockUser(tx *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
