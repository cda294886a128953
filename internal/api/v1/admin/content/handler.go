package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// CreateSignal godoc
// @Summary Publish a trading signal
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSignalInput true "Signal definition"
// @Success 200 {object} utils.Response
// @Router /admin/content/signals [post]
func CreateSignal(c *gin.Context) {
	var input CreateSignalInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	signal := models.TradingSignal{
		Pair:       input.Pair,
		SignalType: input.SignalType,
		EntryPrice: input.EntryPrice,
		TP1:        input.TP1,
		TP2:        input.TP2,
		StopLoss:   input.StopLoss,
		Status:     models.SignalStatusActive,
		IsActive:   true,
	}

	if err := services.CreateSignal(&signal); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create trading signal"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trading signal published", signal))
}

// UpdateSignalStatus godoc
// @Summary Update a trading signal's market status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Signal ID"
// @Param request body UpdateSignalStatusInput true "New status and pip result"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/signals/{id}/status [put]
func UpdateSignalStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateSignalStatusInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	signal, err := services.UpdateSignalStatus(id, models.SignalStatus(input.Status), input.Pips)
	if err != nil {
		if errors.Is(err, services.ErrSignalNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Trading signal not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update trading signal"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trading signal updated", signal))
}

// UpdateSignal godoc
// @Summary Update a trading signal's fields
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Signal ID"
// @Param request body UpdateSignalInput true "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/signals/{id} [patch]
func UpdateSignal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateSignalInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := input.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	signal, err := services.UpdateSignal(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrSignalNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Trading signal not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update trading signal"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trading signal updated", signal))
}

// DeleteSignal godoc
// @Summary Delete a trading signal
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Signal ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/signals/{id} [delete]
func DeleteSignal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := services.DeleteSignal(id); err != nil {
		if errors.Is(err, services.ErrSignalNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Trading signal not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete trading signal"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trading signal deleted", nil))
}

// CreateCourse godoc
// @Summary Publish a trading course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCourseInput true "Course definition"
// @Success 200 {object} utils.Response
// @Router /admin/content/courses [post]
func CreateCourse(c *gin.Context) {
	var input CreateCourseInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	course := models.TradingCourse{
		Title:       input.Title,
		Description: input.Description,
		Level:       input.Level,
		Duration:    input.Duration,
		VideoURL:    input.VideoURL,
		IsActive:    true,
	}

	if err := services.CreateCourse(&course); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create trading course"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trading course published", course))
}

// UpdateCourse godoc
// @Summary Update a trading course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body UpdateCourseInput true "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/courses/{id} [patch]
func UpdateCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateCourseInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := input.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	course, err := services.UpdateCourse(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Trading course not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update trading course"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trading course updated", course))
}

// DeleteCourse godoc
// @Summary Delete a trading course
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/courses/{id} [delete]
func DeleteCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := services.DeleteCourse(id); err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Trading course not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete trading course"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trading course deleted", nil))
}

// CreateNews godoc
// @Summary Publish market news
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNewsInput true "News item"
// @Success 200 {object} utils.Response
// @Router /admin/content/news [post]
func CreateNews(c *gin.Context) {
	var input CreateNewsInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	news := models.MarketNews{
		Headline: input.Headline,
		Body:     input.Body,
		Source:   input.Source,
		IsActive: true,
	}

	if err := services.CreateNews(&news); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create market news"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Market news published", news))
}

// UpdateNews godoc
// @Summary Update market news
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param request body UpdateNewsInput true "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/news/{id} [patch]
func UpdateNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateNewsInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := input.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	news, err := services.UpdateNews(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Market news not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update market news"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Market news updated", news))
}

// DeleteNews godoc
// @Summary Delete market news
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/news/{id} [delete]
func DeleteNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := services.DeleteNews(id); err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Market news not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete market news"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Market news deleted", nil))
}

// ListAnalyses godoc
// @Summary List all market analysis pieces
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /admin/content/analysis [get]
func ListAnalyses(c *gin.Context) {
	analyses, err := services.FindAllAnalyses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch market analysis"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Market analysis retrieved", analyses))
}

// CreateAnalysis godoc
// @Summary Publish a market analysis piece
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAnalysisInput true "Analysis piece"
// @Success 200 {object} utils.Response
// @Router /admin/content/analysis [post]
func CreateAnalysis(c *gin.Context) {
	var input CreateAnalysisInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	analysis := models.MarketAnalysis{
		Title:    input.Title,
		Content:  input.Content,
		IsActive: true,
	}

	if err := services.CreateAnalysis(&analysis); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create market analysis"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Market analysis published", analysis))
}

// UpdateAnalysis godoc
// @Summary Update a market analysis piece
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Analysis ID"
// @Param request body UpdateAnalysisInput true "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/analysis/{id} [patch]
func UpdateAnalysis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateAnalysisInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := input.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	analysis, err := services.UpdateAnalysis(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Market analysis not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update market analysis"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Market analysis updated", analysis))
}

// DeleteAnalysis godoc
// @Summary Delete a market analysis piece
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Analysis ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/analysis/{id} [delete]
func DeleteAnalysis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := services.DeleteAnalysis(id); err != nil {
		if errors.Is(err, services.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Market analysis not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete market analysis"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Market analysis deleted", nil))
}

// CreateTip godoc
// @Summary Publish a betting tip
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTipInput true "Tip definition"
// @Success 200 {object} utils.Response
// @Router /admin/content/tips [post]
func CreateTip(c *gin.Context) {
	var input CreateTipInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	tip := models.BettingTip{
		Match:      input.Match,
		League:     input.League,
		Time:       input.Time,
		Prediction: input.Prediction,
		Odds:       input.Odds,
		Confidence: input.Confidence,
		Analysis:   input.Analysis,
		Date:       input.Date,
		IsActive:   true,
	}

	if err := services.CreateTip(&tip); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create betting tip"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Betting tip published", tip))
}

// UpdateTip godoc
// @Summary Update a betting tip
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tip ID"
// @Param request body UpdateTipInput true "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/tips/{id} [patch]
func UpdateTip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateTipInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := input.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	tip, err := services.UpdateTip(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrTipNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Betting tip not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update betting tip"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Betting tip updated", tip))
}

// DeleteTip godoc
// @Summary Delete a betting tip
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tip ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/content/tips/{id} [delete]
func DeleteTip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := services.DeleteTip(id); err != nil {
		if errors.Is(err, services.ErrTipNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Betting tip not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete betting tip"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Betting tip deleted", nil))
}
