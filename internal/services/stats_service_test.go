package services

import (
	"strings"
	"testing"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetAdminStats(t *testing.T) {
	setupTestDB()

	alice := seedUser("Alice", "alice@example.com", "EM00S001", 1000)
	bob := seedUser("Bob", "bob@example.com", "EM00S002", 0)

	d1, _ := CreateDeposit(alice, 300, "msg 1")
	CreateDeposit(bob, 200, "msg 2") // stays pending
	ApproveDeposit(d1.ID, 1, "Administrator")

	ActivateAccount(alice.ID)

	task := seedTask(models.TaskTypeSurvey, 50, 0, 0)
	SubmitTask(task.ID, bob.ID, "answer")

	seedAd(10, 100)
	CreatePost(bob, "Draft", strings.Repeat("x", 500), "general")

	stats, err := GetAdminStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, 300.0, stats.TotalRevenue) // approved deposits only
	assert.Equal(t, int64(1), stats.PendingActivations)
	assert.Equal(t, int64(1), stats.PendingDeposits)
	assert.Equal(t, int64(1), stats.PendingTasks)
	assert.Equal(t, int64(1), stats.PendingBlogs)
	assert.Equal(t, int64(1), stats.ActiveAds)
	assert.Equal(t, int64(1), stats.ActiveTasks)
}

func TestGetPendingReview(t *testing.T) {
	setupTestDB()

	member := seedUser("Member", "member@example.com", "EM00S003", 0)
	CreateDeposit(member, 100, "msg")
	task := seedTask(models.TaskTypeSurvey, 50, 0, 0)
	SubmitTask(task.ID, member.ID, "answer")
	CreatePost(member, "Draft", strings.Repeat("x", 500), "general")

	review, err := GetPendingReview()
	assert.NoError(t, err)
	assert.Len(t, review.Deposits, 1)
	assert.Empty(t, review.Withdrawals)
	assert.Len(t, review.Tasks, 1)
	assert.NotNil(t, review.Tasks[0].Task)
	assert.Len(t, review.Blogs, 1)
}
