package services

import (
	"testing"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"github.com/stretchr/testify/assert"
)

func seedTask(taskType models.TaskType, reward float64, maxResponses, maxBidders int) *models.Task {
	task := &models.Task{
		Title:        "Test task",
		Description:  "Do the thing",
		Category:     "general",
		Type:         taskType,
		Reward:       reward,
		MaxResponses: maxResponses,
		MaxBidders:   maxBidders,
		IsActive:     true,
	}
	if err := database.DB.Create(task).Error; err != nil {
		panic(err)
	}
	return task
}

func TestSubmitTask(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00T101", 0)
	task := seedTask(models.TaskTypeSurvey, 50, 10, 0)

	submission, err := SubmitTask(task.ID, member.ID, `{"q1":"yes"}`)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, submission.Status)

	var refreshed models.Task
	database.DB.First(&refreshed, task.ID)
	assert.Equal(t, 1, refreshed.CurrentResponses)
	assert.Equal(t, 0, refreshed.CurrentBidders)

	// One submission per member per task
	_, err = SubmitTask(task.ID, member.ID, `{"q1":"no"}`)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	_, err = SubmitTask(99999, member.ID, "x")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSubmitTaskInactive(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00T102", 0)
	task := seedTask(models.TaskTypeTask, 50, 0, 0)
	database.DB.Model(task).Update("is_active", false)

	_, err := SubmitTask(task.ID, member.ID, "answer")
	assert.ErrorIs(t, err, ErrTaskInactive)
}

func TestSubmitTaskCapacity(t *testing.T) {
	setupTestDB()

	alice := seedUser("Alice", "alice@example.com", "EM00T103", 0)
	bob := seedUser("Bob", "bob@example.com", "EM00T104", 0)
	task := seedTask(models.TaskTypeSurvey, 50, 1, 0)

	_, err := SubmitTask(task.ID, alice.ID, "first")
	assert.NoError(t, err)

	_, err = SubmitTask(task.ID, bob.ID, "second")
	assert.ErrorIs(t, err, ErrTaskAtCapacity)
}

func TestSubmitTaskBidderPool(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00T105", 0)
	task := seedTask(models.TaskTypeBidding, 120, 0, 5)

	_, err := SubmitTask(task.ID, member.ID, "my bid")
	assert.NoError(t, err)

	var refreshed models.Task
	database.DB.First(&refreshed, task.ID)
	assert.Equal(t, 1, refreshed.CurrentBidders)
	assert.Equal(t, 0, refreshed.CurrentResponses)
}

func TestApproveSubmission(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00T106", 0)
	task := seedTask(models.TaskTypeTranscription, 75, 0, 0)

	submission, _ := SubmitTask(task.ID, member.ID, "transcript text")

	approved, err := ApproveSubmission(submission.ID, 1, "Administrator")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)

	var refreshed models.User
	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 75.0, refreshed.Balance)
	assert.Equal(t, 75.0, refreshed.TotalEarnings) // rewards count as earnings

	var entry models.Transaction
	database.DB.Last(&entry)
	assert.Equal(t, models.TransactionTypeTaskReward, entry.Type)

	// No double reward
	_, err = ApproveSubmission(submission.ID, 1, "Administrator")
	assert.ErrorIs(t, err, models.ErrAlreadyProcessed)

	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 75.0, refreshed.Balance)
}

func TestRejectSubmissionKeepsSlotConsumed(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00T107", 0)
	task := seedTask(models.TaskTypeSurvey, 50, 3, 0)

	submission, _ := SubmitTask(task.ID, member.ID, "weak answer")

	rejected, err := RejectSubmission(submission.ID, "Answer too short, please elaborate")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Equal(t, "Answer too short, please elaborate", rejected.Feedback)

	// No payout on rejection
	var refreshed models.User
	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 0.0, refreshed.Balance)

	// The slot stays consumed; rejection does not hand it back
	var refreshedTask models.Task
	database.DB.First(&refreshedTask, task.ID)
	assert.Equal(t, 1, refreshedTask.CurrentResponses)

	_, err = RejectSubmission(99999, "ghost")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestFindSubmissionsByUserPreloadsTask(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00T108", 0)
	task := seedTask(models.TaskTypeSurvey, 50, 0, 0)
	SubmitTask(task.ID, member.ID, "answer")

	submissions, err := FindSubmissionsByUser(member.ID)
	assert.NoError(t, err)
	assert.Len(t, submissions, 1)
	assert.NotNil(t, submissions[0].Task)
	assert.Equal(t, task.Title, submissions[0].Task.Title)
}
