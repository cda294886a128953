package financial

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
)

// DepositInput carries a manual M-Pesa deposit claim. The pasted
// confirmation message is what the admin verifies against.
type DepositInput struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	MpesaMessage string  `json:"mpesaMessage" binding:"required"`
}

type WithdrawInput struct {
	Amount  float64        `json:"amount" binding:"required,gt=0"`
	Method  string         `json:"method" binding:"required,oneof=mpesa bank"`
	Details datatypes.JSON `json:"details" binding:"required"`
}

// Deposit godoc
// @Summary      Submit a deposit request
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request body DepositInput true "Deposit details"
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /financial/deposit [post]
func Deposit(c *gin.Context) {
	var input DepositInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user := c.MustGet("user").(models.User)

	req, err := services.CreateDeposit(&user, input.Amount, input.MpesaMessage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to submit deposit request"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Deposit request submitted, awaiting verification", req))
}

// Withdraw godoc
// @Summary      Submit a withdrawal request
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request body WithdrawInput true "Withdrawal details"
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /financial/withdraw [post]
func Withdraw(c *gin.Context) {
	var input WithdrawInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user := c.MustGet("user").(models.User)

	req, err := services.CreateWithdrawal(&user, input.Amount, models.WithdrawalMethod(input.Method), input.Details)
	if err != nil {
		switch err {
		case services.ErrInsufficientFunds:
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Insufficient balance"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to submit withdrawal request"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal request submitted", req))
}

// MyDeposits godoc
// @Summary      List the current user's deposit requests
// @Tags         financial
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /financial/my-deposits [get]
func MyDeposits(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	deposits, err := services.FindDeposits(&user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch deposit requests"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Deposit requests fetched successfully", deposits))
}

// MyWithdrawals godoc
// @Summary      List the current user's withdrawal requests
// @Tags         financial
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /financial/my-withdrawals [get]
func MyWithdrawals(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	withdrawals, err := services.FindWithdrawals(&user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch withdrawal requests"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal requests fetched successfully", withdrawals))
}
