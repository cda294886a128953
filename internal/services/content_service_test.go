package services

import (
	"testing"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMarketAnalysisLifecycle(t *testing.T) {
	setupTestDB()

	analysis := &models.MarketAnalysis{
		Title:    "EURUSD weekly outlook",
		Content:  "Price is consolidating below the 1.09 handle.",
		IsActive: true,
	}
	assert.NoError(t, CreateAnalysis(analysis))
	assert.NotZero(t, analysis.ID)

	active, err := FindActiveAnalyses()
	assert.NoError(t, err)
	assert.Len(t, active, 1)

	// Deactivating hides the piece from members but not from the admin list.
	updated, err := UpdateAnalysis(analysis.ID, map[string]interface{}{"is_active": false})
	assert.NoError(t, err)
	assert.False(t, updated.IsActive)

	active, err = FindActiveAnalyses()
	assert.NoError(t, err)
	assert.Empty(t, active)

	all, err := FindAllAnalyses()
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	assert.NoError(t, DeleteAnalysis(analysis.ID))
	assert.ErrorIs(t, DeleteAnalysis(analysis.ID), ErrAnalysisNotFound)

	_, err = UpdateAnalysis(99999, map[string]interface{}{"title": "ghost"})
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}

func TestCourseAndNewsUpdateDelete(t *testing.T) {
	setupTestDB()

	course := &models.TradingCourse{Title: "Price Action Basics", Description: "Intro", Level: "Beginner", IsActive: true}
	assert.NoError(t, CreateCourse(course))

	updated, err := UpdateCourse(course.ID, map[string]interface{}{"level": "Intermediate", "is_active": false})
	assert.NoError(t, err)
	assert.Equal(t, "Intermediate", updated.Level)

	visible, err := FindActiveCourses()
	assert.NoError(t, err)
	assert.Empty(t, visible)

	assert.NoError(t, DeleteCourse(course.ID))
	assert.ErrorIs(t, DeleteCourse(course.ID), ErrCourseNotFound)

	news := &models.MarketNews{Headline: "CPI beats forecasts", Body: "Inflation came in hot.", IsActive: true}
	assert.NoError(t, CreateNews(news))

	_, err = UpdateNews(news.ID, map[string]interface{}{"headline": "CPI beats forecasts again"})
	assert.NoError(t, err)

	var reloaded models.MarketNews
	database.DB.First(&reloaded, news.ID)
	assert.Equal(t, "CPI beats forecasts again", reloaded.Headline)

	assert.NoError(t, DeleteNews(news.ID))
	assert.ErrorIs(t, DeleteNews(news.ID), ErrNewsNotFound)
}

func TestUpdateSignalFields(t *testing.T) {
	setupTestDB()

	signal := &models.TradingSignal{
		Pair:       "GBPUSD",
		SignalType: "BUY",
		EntryPrice: 1.2750,
		TP1:        1.2800,
		TP2:        1.2850,
		StopLoss:   1.2700,
		Status:     models.SignalStatusActive,
		IsActive:   true,
	}
	assert.NoError(t, CreateSignal(signal))

	updated, err := UpdateSignal(signal.ID, map[string]interface{}{"stop_loss": 1.2710})
	assert.NoError(t, err)
	assert.Equal(t, 1.2710, updated.StopLoss)

	_, err = UpdateSignal(99999, map[string]interface{}{"pair": "XAUUSD"})
	assert.ErrorIs(t, err, ErrSignalNotFound)
}
