package services

import (
	"errors"
	"fmt"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

func CreateDeposit(user *models.User, amount float64, mpesaMessage string) (*models.DepositRequest, error) {
	deposit := &models.DepositRequest{
		UserID:       user.ID,
		UserName:     user.Name,
		Amount:       amount,
		MpesaMessage: mpesaMessage,
		Status:       models.StatusPending,
	}

	if err := database.DB.Create(deposit).Error; err != nil {
		return nil, err
	}
	return deposit, nil
}

// CreateWithdrawal checks affordability at submission time only. Funds are not
// reserved; the debit happens at approval.
func CreateWithdrawal(user *models.User, amount float64, method models.WithdrawalMethod, details datatypes.JSON) (*models.WithdrawalRequest, error) {
	if user.Balance < amount {
		return nil, ErrInsufficientFunds
	}

	withdrawal := &models.WithdrawalRequest{
		UserID:   user.ID,
		UserName: user.Name,
		Amount:   amount,
		Method:   method,
		Details:  details,
		Status:   models.StatusPending,
	}

	if err := database.DB.Create(withdrawal).Error; err != nil {
		return nil, err
	}
	return withdrawal, nil
}

// ApproveDeposit credits the claimed amount to the owner's balance. Deposits
// are not earnings, so lifetime earnings stay untouched.
func ApproveDeposit(depositID, operatorID uint, operatorName string) (*models.DepositRequest, error) {
	var approved models.DepositRequest
	var ownerID uint

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var deposit models.DepositRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&deposit, depositID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if err := deposit.Status.Resolve(models.StatusApproved); err != nil {
			return err
		}
		if err := tx.Save(&deposit).Error; err != nil {
			return err
		}

		user, err := lockUser(tx, deposit.UserID)
		if err != nil {
			return err
		}
		reason := fmt.Sprintf("Deposit request #%d approved", deposit.ID)
		if err := applyLedgerEntry(tx, user, deposit.Amount, models.TransactionTypeDeposit,
			reason, operatorName, operatorID, false); err != nil {
			return err
		}

		ownerID = user.ID
		approved = deposit
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(ownerID)
	return &approved, nil
}

func RejectDeposit(depositID uint) (*models.DepositRequest, error) {
	var rejected models.DepositRequest

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var deposit models.DepositRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&deposit, depositID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if err := deposit.Status.Resolve(models.StatusRejected); err != nil {
			return err
		}
		if err := tx.Save(&deposit).Error; err != nil {
			return err
		}

		rejected = deposit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rejected, nil
}

// ApproveWithdrawal debits the claimed amount unconditionally. Affordability
// was checked at submission time only; if other approvals drained the balance
// in between, this can drive it negative. Known product gap, kept as-is.
func ApproveWithdrawal(withdrawalID, operatorID uint, operatorName string) (*models.WithdrawalRequest, error) {
	var approved models.WithdrawalRequest
	var ownerID uint

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var withdrawal models.WithdrawalRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&withdrawal, withdrawalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if err := withdrawal.Status.Resolve(models.StatusApproved); err != nil {
			return err
		}
		if err := tx.Save(&withdrawal).Error; err != nil {
			return err
		}

		user, err := lockUser(tx, withdrawal.UserID)
		if err != nil {
			return err
		}
		reason := fmt.Sprintf("Withdrawal request #%d approved (%s)", withdrawal.ID, withdrawal.Method)
		if err := applyLedgerEntry(tx, user, -withdrawal.Amount, models.TransactionTypeWithdrawal,
			reason, operatorName, operatorID, false); err != nil {
			return err
		}

		ownerID = user.ID
		approved = withdrawal
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(ownerID)
	return &approved, nil
}

// RejectWithdrawal flips the status only; funds were never reserved at
// submission time, so there is nothing to release.
func RejectWithdrawal(withdrawalID uint) (*models.WithdrawalRequest, error) {
	var rejected models.WithdrawalRequest

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var withdrawal models.WithdrawalRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&withdrawal, withdrawalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if err := withdrawal.Status.Resolve(models.StatusRejected); err != nil {
			return err
		}
		if err := tx.Save(&withdrawal).Error; err != nil {
			return err
		}

		rejected = withdrawal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rejected, nil
}

func FindDeposits(userID *uint) ([]models.DepositRequest, error) {
	var deposits []models.DepositRequest
	query := database.DB.Order("created_at desc")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if err := query.Find(&deposits).Error; err != nil {
		return nil, err
	}
	return deposits, nil
}

func FindWithdrawals(userID *uint) ([]models.WithdrawalRequest, error) {
	var withdrawals []models.WithdrawalRequest
	query := database.DB.Order("created_at desc")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if err := query.Find(&withdrawals).Error; err != nil {
		return nil, err
	}
	return withdrawals, nil
}
