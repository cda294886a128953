package services

import (
	"errors"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSignalNotFound   = errors.New("trading signal not found")
	ErrCourseNotFound   = errors.New("trading course not found")
	ErrNewsNotFound     = errors.New("market news not found")
	ErrAnalysisNotFound = errors.New("market analysis not found")
	ErrTipNotFound      = errors.New("betting tip not found")
)

func FindActiveSignals() ([]models.TradingSignal, error) {
	var signals []models.TradingSignal
	if err := database.DB.Where("is_active = ?", true).Order("created_at desc").Find(&signals).Error; err != nil {
		return nil, err
	}
	return signals, nil
}

func CreateSignal(signal *models.TradingSignal) error {
	return database.DB.Create(signal).Error
}

// UpdateSignalStatus moves a signal through its market lifecycle
// (active, hit_tp1, hit_tp2, stopped) and records the pip result.
func UpdateSignalStatus(signalID uint, status models.SignalStatus, pips int) (*models.TradingSignal, error) {
	var signal models.TradingSignal
	if err := database.DB.First(&signal, signalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSignalNotFound
		}
		return nil, err
	}

	signal.Status = status
	signal.Pips = pips
	if status != models.SignalStatusActive {
		signal.IsActive = false
	}
	if err := database.DB.Save(&signal).Error; err != nil {
		return nil, err
	}
	return &signal, nil
}

func UpdateSignal(signalID uint, updates map[string]interface{}) (*models.TradingSignal, error) {
	var signal models.TradingSignal
	if err := database.DB.First(&signal, signalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSignalNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&signal).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &signal, nil
}

func DeleteSignal(signalID uint) error {
	result := database.DB.Delete(&models.TradingSignal{}, signalID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSignalNotFound
	}
	return nil
}

func FindActiveCourses() ([]models.TradingCourse, error) {
	var courses []models.TradingCourse
	if err := database.DB.Where("is_active = ?", true).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func CreateCourse(course *models.TradingCourse) error {
	return database.DB.Create(course).Error
}

func UpdateCourse(courseID uint, updates map[string]interface{}) (*models.TradingCourse, error) {
	var course models.TradingCourse
	if err := database.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&course).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func DeleteCourse(courseID uint) error {
	result := database.DB.Delete(&models.TradingCourse{}, courseID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func FindActiveNews() ([]models.MarketNews, error) {
	var news []models.MarketNews
	if err := database.DB.Where("is_active = ?", true).Order("created_at desc").Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

func CreateNews(news *models.MarketNews) error {
	return database.DB.Create(news).Error
}

func UpdateNews(newsID uint, updates map[string]interface{}) (*models.MarketNews, error) {
	var news models.MarketNews
	if err := database.DB.First(&news, newsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&news).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func DeleteNews(newsID uint) error {
	result := database.DB.Delete(&models.MarketNews{}, newsID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}

// FindActiveAnalyses returns published market analysis pieces for members;
// FindAllAnalyses returns everything for the admin dashboard.
func FindActiveAnalyses() ([]models.MarketAnalysis, error) {
	var analyses []models.MarketAnalysis
	if err := database.DB.Where("is_active = ?", true).Order("created_at desc").Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

func FindAllAnalyses() ([]models.MarketAnalysis, error) {
	var analyses []models.MarketAnalysis
	if err := database.DB.Order("created_at desc").Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

func CreateAnalysis(analysis *models.MarketAnalysis) error {
	return database.DB.Create(analysis).Error
}

func UpdateAnalysis(analysisID uint, updates map[string]interface{}) (*models.MarketAnalysis, error) {
	var analysis models.MarketAnalysis
	if err := database.DB.First(&analysis, analysisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&analysis).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

func DeleteAnalysis(analysisID uint) error {
	result := database.DB.Delete(&models.MarketAnalysis{}, analysisID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}

func FindActiveTips() ([]models.BettingTip, error) {
	var tips []models.BettingTip
	if err := database.DB.Where("is_active = ?", true).Order("created_at desc").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

func CreateTip(tip *models.BettingTip) error {
	return database.DB.Create(tip).Error
}

func UpdateTip(tipID uint, updates map[string]interface{}) (*models.BettingTip, error) {
	var tip models.BettingTip
	if err := database.DB.First(&tip, tipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTipNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&tip).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

func DeleteTip(tipID uint) error {
	result := database.DB.Delete(&models.BettingTip{}, tipID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTipNotFound
	}
	return nil
}
