package services

import (
	"errors"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPostNotFound = errors.New("blog post not found")

func CreatePost(user *models.User, title, content, category string) (*models.BlogPost, error) {
	post := &models.BlogPost{
		Title:    title,
		Content:  content,
		Category: category,
		Author:   user.Name,
		AuthorID: user.ID,
		Status:   models.StatusPending,
	}

	if err := database.DB.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func FindPublishedPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := database.DB.Where("status = ?", models.StatusPublished).
		Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func FindAllPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := database.DB.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func FindPostsByAuthor(authorID uint) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := database.DB.Where("author_id = ?", authorID).
		Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ReadPost returns a published post and bumps its view counter.
func ReadPost(postID uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := database.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.Status != models.StatusPublished {
		return nil, ErrPostNotFound
	}

	if err := database.DB.Model(&post).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		return nil, err
	}
	post.Views++

	return &post, nil
}

func ApprovePost(postID uint) (*models.BlogPost, error) {
	return resolvePost(postID, models.StatusPublished, "")
}

func RejectPost(postID uint, feedback string) (*models.BlogPost, error) {
	return resolvePost(postID, models.StatusRejected, feedback)
}

func resolvePost(postID uint, next models.ModerationStatus, feedback string) (*models.BlogPost, error) {
	var resolved models.BlogPost

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var post models.BlogPost
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := post.Status.Resolve(next); err != nil {
			return err
		}
		if feedback != "" {
			post.Feedback = feedback
		}
		if err := tx.Save(&post).Error; err != nil {
			return err
		}

		resolved = post
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}
