package betting

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
)

// ListTips godoc
// @Summary      List active betting tips
// @Tags         betting
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /betting/tips [get]
func ListTips(c *gin.Context) {
	tips, err := services.FindActiveTips()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch betting tips"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Betting tips fetched successfully", tips))
}
