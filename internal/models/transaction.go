package models

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

type TransactionType string

const (
	TransactionTypeDeposit       TransactionType = "deposit"
	TransactionTypeWithdrawal    TransactionType = "withdrawal"
	TransactionTypeActivationFee TransactionType = "activation_fee"
	TransactionTypeReferralBonus TransactionType = "referral_bonus"
	TransactionTypeAdReward      TransactionType = "ad_reward"
	TransactionTypeTaskReward    TransactionType = "task_reward"
)

// Transaction is the balance ledger. Every balance mutation writes one row
// inside the same database transaction as the mutation itself.
type Transaction struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time       `gorm:"precision:3" json:"created_at"`
	UserID        uint            `gorm:"index;not null" json:"user_id"`
	Amount        float64         `gorm:"type:decimal(20,2);not null" json:"amount"`
	BalanceBefore float64         `gorm:"type:decimal(20,2);not null" json:"balance_before"`
	BalanceAfter  float64         `gorm:"type:decimal(20,2);not null" json:"balance_after"`
	Reason        string          `gorm:"type:text" json:"reason"`
	Operator      string          `gorm:"type:varchar(100)" json:"operator"` // Username or 'system'
	OperatorID    uint            `gorm:"index;default:0" json:"operator_id"`
	Type          TransactionType `gorm:"type:varchar(50);index;not null" json:"type"`
	Hash          string          `gorm:"type:varchar(64);default:''" json:"hash"` // HMAC SHA256
}

// GenerateHash generates a tamper-proof hash for the transaction
func (t *Transaction) GenerateHash(secret string) string {
	data := fmt.Sprintf("%d|%d|%.2f|%.2f|%.2f|%s|%s|%s|%d",
		t.UserID, t.CreatedAt.UnixNano(), t.Amount, t.BalanceBefore, t.BalanceAfter,
		t.Reason, t.Operator, t.Type, t.OperatorID)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
