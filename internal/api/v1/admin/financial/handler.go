package financial

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
)

func operatorFrom(c *gin.Context) (uint, string) {
	if userVal, exists := c.Get("user"); exists {
		if u, ok := userVal.(models.User); ok {
			return u.ID, u.Name
		}
	}
	return 0, "unknown"
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid request ID"))
		return 0, false
	}
	return uint(id), true
}

func respondModerationError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, notFoundMsg))
	case errors.Is(err, models.ErrAlreadyProcessed):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Request has already been processed"))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process request"))
	}
}

// ListDeposits godoc
// @Summary List all deposit requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /admin/financial/deposits [get]
func ListDeposits(c *gin.Context) {
	deposits, err := services.FindDeposits(nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch deposit requests"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Deposit requests fetched successfully", deposits))
}

// ListWithdrawals godoc
// @Summary List all withdrawal requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response
// @Router /admin/financial/withdrawals [get]
func ListWithdrawals(c *gin.Context) {
	withdrawals, err := services.FindWithdrawals(nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch withdrawal requests"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal requests fetched successfully", withdrawals))
}

// ApproveDeposit godoc
// @Summary Approve a deposit request and credit the member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit request ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/financial/deposits/{id}/approve [put]
func ApproveDeposit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	operatorID, operatorName := operatorFrom(c)

	deposit, err := services.ApproveDeposit(id, operatorID, operatorName)
	if err != nil {
		respondModerationError(c, err, "Deposit request not found")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Deposit approved and credited", deposit))
}

// RejectDeposit godoc
// @Summary Reject a deposit request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit request ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/financial/deposits/{id}/reject [put]
func RejectDeposit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deposit, err := services.RejectDeposit(id)
	if err != nil {
		respondModerationError(c, err, "Deposit request not found")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Deposit request rejected", deposit))
}

// ApproveWithdrawal godoc
// @Summary Approve a withdrawal request and debit the member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Withdrawal request ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/financial/withdrawals/{id}/approve [put]
func ApproveWithdrawal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	operatorID, operatorName := operatorFrom(c)

	withdrawal, err := services.ApproveWithdrawal(id, operatorID, operatorName)
	if err != nil {
		respondModerationError(c, err, "Withdrawal request not found")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal approved and debited", withdrawal))
}

// RejectWithdrawal godoc
// @Summary Reject a withdrawal request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Withdrawal request ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/financial/withdrawals/{id}/reject [put]
func RejectWithdrawal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	withdrawal, err := services.RejectWithdrawal(id)
	if err != nil {
		respondModerationError(c, err, "Withdrawal request not found")
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal request rejected", withdrawal))
}
