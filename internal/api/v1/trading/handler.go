package trading

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
)

// ListSignals godoc
// @Summary      List active trading signals
// @Tags         trading
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /trading/signals [get]
func ListSignals(c *gin.Context) {
	signals, err := services.FindActiveSignals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch trading signals"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trading signals fetched successfully", signals))
}

// ListCourses godoc
// @Summary      List active trading courses
// @Tags         trading
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /trading/courses [get]
func ListCourses(c *gin.Context) {
	courses, err := services.FindActiveCourses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch trading courses"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Trading courses fetched successfully", courses))
}

// ListNews godoc
// @Summary      List active market news
// @Tags         trading
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /trading/news [get]
func ListNews(c *gin.Context) {
	news, err := services.FindActiveNews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch market news"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Market news fetched successfully", news))
}

// ListAnalyses godoc
// @Summary      List active market analysis
// @Tags         trading
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /trading/analysis [get]
func ListAnalyses(c *gin.Context) {
	analyses, err := services.FindActiveAnalyses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch market analysis"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Market analysis fetched successfully", analyses))
}
