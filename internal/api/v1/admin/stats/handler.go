package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
)

// GetStats godoc
// @Summary Platform-wide dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=services.AdminStats}
// @Router /admin/stats [get]
func GetStats(c *gin.Context) {
	stats, err := services.GetAdminStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to compute statistics"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Statistics computed successfully", stats))
}

// GetPending godoc
// @Summary Every moderation queue in one response
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=services.PendingReview}
// @Router /admin/pending [get]
func GetPending(c *gin.Context) {
	review, err := services.GetPendingReview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch pending items"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pending items fetched successfully", review))
}
