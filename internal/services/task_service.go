package services

import (
	"errors"
	"fmt"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskInactive       = errors.New("task is not active")
	ErrTaskAtCapacity     = errors.New("task has reached its capacity")
	ErrAlreadySubmitted   = errors.New("task already submitted")
	ErrSubmissionNotFound = errors.New("submission not found")
)

func CreateTask(task *models.Task) error {
	return database.DB.Create(task).Error
}

func UpdateTask(taskID uint, updates map[string]interface{}) (*models.Task, error) {
	var task models.Task
	if err := database.DB.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&task).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func DeleteTask(taskID uint) error {
	result := database.DB.Delete(&models.Task{}, taskID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// FindTasks returns active tasks; FindAllTasks returns everything for admins.
func FindTasks() ([]models.Task, error) {
	var tasks []models.Task
	if err := database.DB.Where("is_active = ?", true).Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func FindAllTasks() ([]models.Task, error) {
	var tasks []models.Task
	if err := database.DB.Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// SubmitTask records one member's answer and reserves capacity up front. The
// type-appropriate counter is incremented at submission time, not at approval,
// so a later rejection does not hand the slot back.
func SubmitTask(taskID, userID uint, response string) (*models.TaskSubmission, error) {
	var created models.TaskSubmission

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if !task.IsActive {
			return ErrTaskInactive
		}
		if task.AtCapacity() {
			return ErrTaskAtCapacity
		}

		var existing models.TaskSubmission
		err := tx.Where("task_id = ? AND user_id = ?", taskID, userID).First(&existing).Error
		if err == nil {
			return ErrAlreadySubmitted
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		submission := models.TaskSubmission{
			TaskID:   taskID,
			UserID:   userID,
			Response: response,
			Status:   models.StatusPending,
		}
		if err := tx.Create(&submission).Error; err != nil {
			// The unique (task, user) index backs up the duplicate check
			// against concurrent submissions.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadySubmitted
			}
			return err
		}

		if task.UsesBidderPool() {
			task.CurrentBidders++
		} else {
			task.CurrentResponses++
		}
		if err := tx.Save(&task).Error; err != nil {
			return err
		}

		created = submission
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func FindSubmissionsByUser(userID uint) ([]models.TaskSubmission, error) {
	var submissions []models.TaskSubmission
	if err := database.DB.Preload("Task").Where("user_id = ?", userID).
		Order("created_at desc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func FindAllSubmissions() ([]models.TaskSubmission, error) {
	var submissions []models.TaskSubmission
	if err := database.DB.Preload("Task").Order("created_at desc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// ApproveSubmission credits the task's reward to the submitter's balance and
// lifetime earnings. The reward is read from the task row at approval time,
// not snapshotted at submission. Capacity counters are untouched here; they
// were consumed at submit time.
func ApproveSubmission(submissionID, operatorID uint, operatorName string) (*models.TaskSubmission, error) {
	var approved models.TaskSubmission
	var ownerID uint

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var submission models.TaskSubmission
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&submission, submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}

		if err := submission.Status.Resolve(models.StatusApproved); err != nil {
			return err
		}
		if err := tx.Save(&submission).Error; err != nil {
			return err
		}

		var task models.Task
		if err := tx.First(&task, submission.TaskID).Error; err != nil {
			return err
		}

		user, err := lockUser(tx, submission.UserID)
		if err != nil {
			return err
		}
		reason := fmt.Sprintf("Reward for task #%d: %s", task.ID, task.Title)
		if err := applyLedgerEntry(tx, user, task.Reward, models.TransactionTypeTaskReward,
			reason, operatorName, operatorID, true); err != nil {
			return err
		}

		ownerID = user.ID
		approved = submission
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(ownerID)
	return &approved, nil
}

func RejectSubmission(submissionID uint, feedback string) (*models.TaskSubmission, error) {
	var rejected models.TaskSubmission

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var submission models.TaskSubmission
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&submission, submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}

		if err := submission.Status.Resolve(models.StatusRejected); err != nil {
			return err
		}
		submission.Feedback = feedback
		if err := tx.Save(&submission).Error; err != nil {
			return err
		}

		rejected = submission
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rejected, nil
}
