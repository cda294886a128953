package task

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
	"github.com/gin-gonic/gin"
)

// ListTasks godoc
// @Summary List active tasks
// @Tags tasks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Task}
// @Failure 500 {object} utils.Response
// @Router /tasks [get]
func ListTasks(c *gin.Context) {
	tasks, err := services.FindTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch tasks"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Tasks retrieved successfully", tasks))
}

type SubmitInput struct {
	Response string `json:"response" binding:"required"`
}

// SubmitTask godoc
// @Summary Submit a task
// @Description Create a pending submission and reserve one capacity slot; the reward is credited only after admin approval
// @Tags tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Task ID"
// @Param input body SubmitInput true "Submission"
// @Success 201 {object} utils.Response{data=models.TaskSubmission}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /tasks/{id}/submit [post]
func SubmitTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid task ID"))
		return
	}

	var input SubmitInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	val, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := val.(models.User)

	submission, err := services.SubmitTask(uint(id), u.ID, input.Response)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrTaskInactive),
			errors.Is(err, services.ErrTaskAtCapacity),
			errors.Is(err, services.ErrAlreadySubmitted):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to submit task"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Task submitted successfully", submission))
}

// MySubmissions godoc
// @Summary List the current user's task submissions
// @Tags tasks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.TaskSubmission}
// @Failure 500 {object} utils.Response
// @Router /tasks/my-submissions [get]
func MySubmissions(c *gin.Context) {
	val, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := val.(models.User)

	submissions, err := services.FindSubmissionsByUser(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch submissions"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Submissions retrieved successfully", submissions))
}
