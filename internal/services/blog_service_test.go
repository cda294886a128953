package services

import (
	"strings"
	"testing"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBlogModerationFlow(t *testing.T) {
	setupTestDB()

	author := seedUser("Author", "author@example.com", "EM00BL01", 0)
	content := strings.Repeat("word ", 120)

	post, err := CreatePost(author, "My first post", content, "finance")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, post.Status)
	assert.Equal(t, author.Name, post.Author)

	// Pending posts are invisible to readers
	published, err := FindPublishedPosts()
	assert.NoError(t, err)
	assert.Empty(t, published)

	_, err = ReadPost(post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	// But the author sees their own queue
	mine, err := FindPostsByAuthor(author.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	approved, err := ApprovePost(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPublished, approved.Status)

	published, _ = FindPublishedPosts()
	assert.Len(t, published, 1)

	// Published posts cannot be re-moderated
	_, err = RejectPost(post.ID, "too late")
	assert.ErrorIs(t, err, models.ErrAlreadyProcessed)
}

func TestReadPostCountsViews(t *testing.T) {
	setupTestDB()

	author := seedUser("Author", "author@example.com", "EM00BL02", 0)
	post, _ := CreatePost(author, "Views", strings.Repeat("x", 500), "general")
	ApprovePost(post.ID)

	first, err := ReadPost(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Views)

	second, err := ReadPost(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, second.Views)
}

func TestRejectPostStoresFeedback(t *testing.T) {
	setupTestDB()

	author := seedUser("Author", "author@example.com", "EM00BL03", 0)
	post, _ := CreatePost(author, "Weak draft", strings.Repeat("x", 500), "general")

	rejected, err := RejectPost(post.ID, "Needs original analysis")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Equal(t, "Needs original analysis", rejected.Feedback)

	_, err = ApprovePost(post.ID)
	assert.ErrorIs(t, err, models.ErrAlreadyProcessed)

	_, err = ApprovePost(99999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
