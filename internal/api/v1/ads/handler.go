package ads

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
	"github.com/gin-gonic/gin"
)

// ListAds godoc
// @Summary List active advertisements
// @Tags ads
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Advertisement}
// @Failure 500 {object} utils.Response
// @Router /ads [get]
func ListAds(c *gin.Context) {
	adsList, err := services.FindActiveAds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch advertisements"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Advertisements retrieved successfully", adsList))
}

type WatchResponse struct {
	Reward     float64 `json:"reward"`
	NewBalance float64 `json:"new_balance"`
}

// WatchAd godoc
// @Summary Watch an advertisement
// @Description Consume one view slot and credit the viewer's balance immediately
// @Tags ads
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Advertisement ID"
// @Success 200 {object} utils.Response{data=WatchResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /ads/{id}/watch [post]
func WatchAd(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid advertisement ID"))
		return
	}

	val, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := val.(models.User)

	reward, newBalance, err := services.WatchAd(uint(id), u.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrAdInactive), errors.Is(err, services.ErrAdMaxViews):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process ad watch"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Advertisement watched successfully", WatchResponse{
		Reward:     reward,
		NewBalance: newBalance,
	}))
}
