package blog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
)

type RejectPostInput struct {
	Feedback string `json:"feedback" binding:"required"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid post ID"))
		return 0, false
	}
	return uint(id), true
}

// ListPosts godoc
// @Summary List all blog posts regardless of status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /admin/blog [get]
func ListPosts(c *gin.Context) {
	posts, err := services.FindAllPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch blog posts"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Blog posts fetched successfully", posts))
}

// ApprovePost godoc
// @Summary Approve a blog post and publish it
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/blog/{id}/approve [put]
func ApprovePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := services.ApprovePost(id)
	if err != nil {
		respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Blog post published", post))
}

// RejectPost godoc
// @Summary Reject a blog post with feedback
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body RejectPostInput true "Rejection feedback"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/blog/{id}/reject [put]
func RejectPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input RejectPostInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	post, err := services.RejectPost(id, input.Feedback)
	if err != nil {
		respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Blog post rejected", post))
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Blog post not found"))
	case errors.Is(err, models.ErrAlreadyProcessed):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Blog post has already been processed"))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process blog post"))
	}
}
