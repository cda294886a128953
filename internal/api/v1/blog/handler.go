package blog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
)

type CreatePostInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required,min=500"`
	Category string `json:"category" binding:"required"`
}

// ListPosts godoc
// @Summary      List published blog posts
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /blog [get]
func ListPosts(c *gin.Context) {
	posts, err := services.FindPublishedPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch blog posts"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Blog posts fetched successfully", posts))
}

// MyPosts godoc
// @Summary      List the current user's blog posts
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /blog/my-posts [get]
func MyPosts(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	posts, err := services.FindPostsByAuthor(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch blog posts"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Blog posts fetched successfully", posts))
}

// GetPost godoc
// @Summary      Read a published blog post
// @Tags         blog
// @Produce      json
// @Param        id path int true "Post ID"
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /blog/{id} [get]
func GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid post ID"))
		return
	}

	post, err := services.ReadPost(uint(postID))
	if err != nil {
		switch err {
		case services.ErrPostNotFound:
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Blog post not found"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch blog post"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Blog post fetched successfully", post))
}

// CreatePost godoc
// @Summary      Submit a blog post for review
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        request body CreatePostInput true "Post content"
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /blog [post]
func CreatePost(c *gin.Context) {
	var input CreatePostInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user := c.MustGet("user").(models.User)

	post, err := services.CreatePost(&user, input.Title, input.Content, input.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to submit blog post"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Blog post submitted for review", post))
}
