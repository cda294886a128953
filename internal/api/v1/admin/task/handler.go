package task

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

func operatorFrom(c *gin.Context) (uint, string) {
	if userVal, exists := c.Get("user"); exists {
		if u, ok := userVal.(models.User); ok {
			return u.ID, u.Name
		}
	}
	return 0, "unknown"
}

// ListTasks godoc
// @Summary List all tasks including inactive ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /admin/tasks [get]
func ListTasks(c *gin.Context) {
	tasks, err := services.FindAllTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch tasks"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Tasks fetched successfully", tasks))
}

// CreateTask godoc
// @Summary Create a task
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskInput true "Task definition"
// @Success 200 {object} utils.Response
// @Router /admin/tasks [post]
func CreateTask(c *gin.Context) {
	var input CreateTaskInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	task := models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Type:         models.TaskType(input.Type),
		Reward:       input.Reward,
		Duration:     input.Duration,
		Difficulty:   input.Difficulty,
		Requirements: input.Requirements,
		MaxResponses: input.MaxResponses,
		MaxBidders:   input.MaxBidders,
		Deadline:     input.Deadline,
		CanRedo:      input.CanRedo,
		Questions:    input.Questions,
		Instructions: input.Instructions,
		Attachments:  input.Attachments,
		AudioURL:     input.AudioURL,
		IsActive:     true,
	}

	if err := services.CreateTask(&task); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create task"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Task created successfully", task))
}

// UpdateTask godoc
// @Summary Update a task
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body UpdateTaskInput true "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/tasks/{id} [patch]
func UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateTaskInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := input.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	task, err := services.UpdateTask(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Task not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update task"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Task updated successfully", task))
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/tasks/{id} [delete]
func DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := services.DeleteTask(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Task not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete task"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Task deleted successfully", nil))
}

// ListSubmissions godoc
// @Summary List all task submissions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /admin/tasks/submissions [get]
func ListSubmissions(c *gin.Context) {
	submissions, err := services.FindAllSubmissions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch submissions"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Submissions fetched successfully", submissions))
}

// ApproveSubmission godoc
// @Summary Approve a submission and credit the task reward
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/tasks/submissions/{id}/approve [put]
func ApproveSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	operatorID, operatorName := operatorFrom(c)

	submission, err := services.ApproveSubmission(id, operatorID, operatorName)
	if err != nil {
		respondSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Submission approved and reward credited", submission))
}

// RejectSubmission godoc
// @Summary Reject a submission with feedback
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body RejectSubmissionInput true "Rejection feedback"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/tasks/submissions/{id}/reject [put]
func RejectSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input RejectSubmissionInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	submission, err := services.RejectSubmission(id, input.Feedback)
	if err != nil {
		respondSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Submission rejected", submission))
}

func respondSubmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSubmissionNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Submission not found"))
	case errors.Is(err, models.ErrAlreadyProcessed):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Submission has already been processed"))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process submission"))
	}
}
