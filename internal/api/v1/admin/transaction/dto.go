package transaction

import (
	"time"

	"github.com/ELIUD25/empire/internal/models"
)

type TransactionListItem struct {
	ID            uint                   `json:"id"`
	CreatedAt     time.Time              `json:"created_at"`
	UserID        uint                   `json:"user_id"`
	Amount        float64                `json:"amount"`
	BalanceBefore float64                `json:"balance_before"`
	BalanceAfter  float64                `json:"balance_after"`
	Reason        string                 `json:"reason"`
	Operator      string                 `json:"operator"`
	Type          models.TransactionType `json:"type"`
	Hash          string                 `json:"hash"`
}

type TransactionListResponse struct {
	Transactions []TransactionListItem `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}
