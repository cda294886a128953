package ads

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
)

type CreateAdInput struct {
	Title     string  `json:"title" binding:"required"`
	Brand     string  `json:"brand" binding:"required"`
	Duration  int     `json:"duration" binding:"required,gt=0"`
	Reward    float64 `json:"reward" binding:"required,gt=0"`
	Category  string  `json:"category" binding:"required"`
	Type      string  `json:"type" binding:"required,oneof=video image"`
	URL       string  `json:"url" binding:"required"`
	Thumbnail string  `json:"thumbnail" binding:"required"`
	MaxViews  int     `json:"max_views" binding:"required,gt=0"`
}

type UpdateAdInput struct {
	Title     *string  `json:"title,omitempty"`
	Brand     *string  `json:"brand,omitempty"`
	Duration  *int     `json:"duration,omitempty" binding:"omitempty,gt=0"`
	Reward    *float64 `json:"reward,omitempty" binding:"omitempty,gt=0"`
	Category  *string  `json:"category,omitempty"`
	Type      *string  `json:"type,omitempty" binding:"omitempty,oneof=video image"`
	URL       *string  `json:"url,omitempty"`
	Thumbnail *string  `json:"thumbnail,omitempty"`
	MaxViews  *int     `json:"max_views,omitempty" binding:"omitempty,gt=0"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

func (in *UpdateAdInput) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Brand != nil {
		updates["brand"] = *in.Brand
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.Reward != nil {
		updates["reward"] = *in.Reward
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Type != nil {
		updates["type"] = *in.Type
	}
	if in.URL != nil {
		updates["url"] = *in.URL
	}
	if in.Thumbnail != nil {
		updates["thumbnail"] = *in.Thumbnail
	}
	if in.MaxViews != nil {
		updates["max_views"] = *in.MaxViews
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return updates
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid advertisement ID"))
		return 0, false
	}
	return uint(id), true
}

// CreateAd godoc
// @Summary Create an advertisement
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAdInput true "Advertisement definition"
// @Success 200 {object} utils.Response
// @Router /admin/ads [post]
func CreateAd(c *gin.Context) {
	var input CreateAdInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	ad := models.Advertisement{
		Title:     input.Title,
		Brand:     input.Brand,
		Duration:  input.Duration,
		Reward:    input.Reward,
		Category:  input.Category,
		Type:      input.Type,
		URL:       input.URL,
		Thumbnail: input.Thumbnail,
		MaxViews:  input.MaxViews,
		IsActive:  true,
	}

	if err := services.CreateAd(&ad); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create advertisement"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Advertisement created successfully", ad))
}

// UpdateAd godoc
// @Summary Update an advertisement
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advertisement ID"
// @Param request body UpdateAdInput true "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/ads/{id} [patch]
func UpdateAd(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateAdInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := input.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	ad, err := services.UpdateAd(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrAdNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Advertisement not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update advertisement"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Advertisement updated successfully", ad))
}

// DeleteAd godoc
// @Summary Delete an advertisement
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advertisement ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/ads/{id} [delete]
func DeleteAd(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := services.DeleteAd(id); err != nil {
		if errors.Is(err, services.ErrAdNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Advertisement not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete advertisement"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Advertisement deleted successfully", nil))
}
