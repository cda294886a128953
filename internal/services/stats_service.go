package services

import (
	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
)

// AdminStats is the admin dashboard aggregate. TotalRevenue is derived: the
// sum of all approved deposit amounts.
type AdminStats struct {
	TotalUsers         int64   `json:"total_users"`
	TotalRevenue       float64 `json:"total_revenue"`
	PendingActivations int64   `json:"pending_activations"`
	PendingDeposits    int64   `json:"pending_deposits"`
	PendingWithdrawals int64   `json:"pending_withdrawals"`
	PendingTasks       int64   `json:"pending_tasks"`
	PendingBlogs       int64   `json:"pending_blogs"`
	ActiveAds          int64   `json:"active_ads"`
	ActiveTasks        int64   `json:"active_tasks"`
	ActiveSignals      int64   `json:"active_signals"`
}

func GetAdminStats() (*AdminStats, error) {
	stats := &AdminStats{}
	db := database.DB

	counts := []struct {
		dest  *int64
		query func() error
	}{
		{&stats.TotalUsers, func() error {
			return db.Model(&models.User{}).Count(&stats.TotalUsers).Error
		}},
		{&stats.PendingActivations, func() error {
			return db.Model(&models.User{}).Where("is_activated = ?", false).Count(&stats.PendingActivations).Error
		}},
		{&stats.PendingDeposits, func() error {
			return db.Model(&models.DepositRequest{}).Where("status = ?", models.StatusPending).Count(&stats.PendingDeposits).Error
		}},
		{&stats.PendingWithdrawals, func() error {
			return db.Model(&models.WithdrawalRequest{}).Where("status = ?", models.StatusPending).Count(&stats.PendingWithdrawals).Error
		}},
		{&stats.PendingTasks, func() error {
			return db.Model(&models.TaskSubmission{}).Where("status = ?", models.StatusPending).Count(&stats.PendingTasks).Error
		}},
		{&stats.PendingBlogs, func() error {
			return db.Model(&models.BlogPost{}).Where("status = ?", models.StatusPending).Count(&stats.PendingBlogs).Error
		}},
		{&stats.ActiveAds, func() error {
			return db.Model(&models.Advertisement{}).Where("is_active = ?", true).Count(&stats.ActiveAds).Error
		}},
		{&stats.ActiveTasks, func() error {
			return db.Model(&models.Task{}).Where("is_active = ?", true).Count(&stats.ActiveTasks).Error
		}},
		{&stats.ActiveSignals, func() error {
			return db.Model(&models.TradingSignal{}).Where("is_active = ?", true).Count(&stats.ActiveSignals).Error
		}},
	}
	for _, c := range counts {
		if err := c.query(); err != nil {
			return nil, err
		}
	}

	var revenue *float64
	if err := db.Model(&models.DepositRequest{}).
		Where("status = ?", models.StatusApproved).
		Select("SUM(amount)").Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.TotalRevenue = *revenue
	}

	return stats, nil
}

// PendingReview bundles every moderation queue for the admin review screen.
type PendingReview struct {
	Deposits    []models.DepositRequest    `json:"deposits"`
	Withdrawals []models.WithdrawalRequest `json:"withdrawals"`
	Tasks       []models.TaskSubmission    `json:"tasks"`
	Blogs       []models.BlogPost          `json:"blogs"`
}

func GetPendingReview() (*PendingReview, error) {
	review := &PendingReview{}
	db := database.DB

	if err := db.Where("status = ?", models.StatusPending).
		Order("created_at desc").Find(&review.Deposits).Error; err != nil {
		return nil, err
	}
	if err := db.Where("status = ?", models.StatusPending).
		Order("created_at desc").Find(&review.Withdrawals).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Task").Where("status = ?", models.StatusPending).
		Order("created_at desc").Find(&review.Tasks).Error; err != nil {
		return nil, err
	}
	if err := db.Where("status = ?", models.StatusPending).
		Order("created_at desc").Find(&review.Blogs).Error; err != nil {
		return nil, err
	}

	return review, nil
}
