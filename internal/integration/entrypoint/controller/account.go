package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/application/usecase/account"
	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	createUseCase *account.CreateAccountUseCase
	listUseCase   *account.ListAccountsUseCase
	updateUseCase *account.UpdateAccountUseCase
	deleteUseCase *account.DeleteAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	createUseCase *account.CreateAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
) *AccountController {
	return &AccountController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	input := account.CreateAccountInput{
		Name:            req.Name,
		Category:        entity.AccountCategory(req.Category),
		StartingBalance: decimal.NewFromFloat(req.StartingBalance),
		ClosingDay:      req.ClosingDay,
		DueDay:          req.DueDay,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// Update handles PUT /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	input := account.UpdateAccountInput{
		AccountID:       accountID,
		Name:            req.Name,
		Category:        entity.AccountCategory(req.Category),
		StartingBalance: decimal.NewFromFloat(req.StartingBalance),
		ClosingDay:      req.ClosingDay,
		DueDay:          req.DueDay,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{AccountID: accountID}); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAccountError handles account errors and returns appropriate HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		ctx.JSON(c.getStatusCodeForAccountError(accErr.Code), dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAccountError maps account error codes to HTTP status codes.
func (c *AccountController) getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAccountCategory,
		domainerror.ErrCodeCardDaysRequired,
		domainerror.ErrCodeCardDaysNotAllowed,
		domainerror.ErrCodeInvalidCardDay,
		domainerror.ErrCodeMissingAccountFields,
		domainerror.ErrCodeAccountNotCard:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
