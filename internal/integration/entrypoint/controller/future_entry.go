package controller

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/application/usecase/futureentry"
	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/domain/valueobject"
	"github.com/centavo/backend/internal/integration/entrypoint/dto"
)

// FutureEntryController handles future entry endpoints.
type FutureEntryController struct {
	createUseCase *futureentry.CreateFutureEntryUseCase
	listUseCase   *futureentry.ListFutureEntriesUseCase
	payUseCase    *futureentry.PayFutureEntryUseCase
	deleteUseCase *futureentry.DeleteFutureEntryUseCase
}

// NewFutureEntryController creates a new future entry controller instance.
func NewFutureEntryController(
	createUseCase *futureentry.CreateFutureEntryUseCase,
	listUseCase *futureentry.ListFutureEntriesUseCase,
	payUseCase *futureentry.PayFutureEntryUseCase,
	deleteUseCase *futureentry.DeleteFutureEntryUseCase,
) *FutureEntryController {
	return &FutureEntryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		payUseCase:    payUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /future-entries requests.
func (c *FutureEntryController) Create(ctx *gin.Context) {
	var req dto.CreateFutureEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format. Use YYYY-MM-DD",
		})
		return
	}

	var accountID *uuid.UUID
	if req.AccountID != nil && *req.AccountID != "" {
		id, err := uuid.Parse(*req.AccountID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid account ID format",
			})
			return
		}
		accountID = &id
	}

	input := futureentry.CreateFutureEntryInput{
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Kind:        entity.FutureEntryKind(req.Kind),
		DueDate:     dueDate,
		Category:    req.Category,
		AccountID:   accountID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFutureEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFutureEntryResponse(output.Entry))
}

// List handles GET /future-entries requests.
func (c *FutureEntryController) List(ctx *gin.Context) {
	var filter adapter.FutureEntryFilter

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.FutureEntryStatus(statusStr)
		if status != entity.FutureEntryStatusPending && status != entity.FutureEntryStatusPaid {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid status. Use pending or paid",
			})
			return
		}
		filter.Status = &status
	}

	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := valueobject.ParseYearMonth(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format. Use YYYY-MM",
			})
			return
		}
		filter.Month = &month
	}

	if purchaseIDStr := ctx.Query("purchase_id"); purchaseIDStr != "" {
		purchaseID, err := uuid.Parse(purchaseIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid purchase ID format",
			})
			return
		}
		filter.PurchaseID = &purchaseID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), futureentry.ListFutureEntriesInput{Filter: filter})
	if err != nil {
		c.handleFutureEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFutureEntryListResponse(output.Entries))
}

// Pay handles POST /future-entries/:id/pay requests.
func (c *FutureEntryController) Pay(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid future entry ID format",
		})
		return
	}

	// The body is optional: entries with their own account settle without one.
	var req dto.PayFutureEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := futureentry.PayFutureEntryInput{EntryID: entryID}

	if req.PaymentAccountID != nil && *req.PaymentAccountID != "" {
		id, err := uuid.Parse(*req.PaymentAccountID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment account ID format",
			})
			return
		}
		input.PaymentAccountID = &id
	}

	if req.PaymentDate != nil && *req.PaymentDate != "" {
		date, err := time.Parse("2006-01-02", *req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaymentDate = &date
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFutureEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PayFutureEntryResponse{
		Entry:       dto.ToFutureEntryResponse(output.Entry),
		Transaction: dto.ToTransactionResponse(output.Transaction),
	})
}

// Delete handles DELETE /future-entries/:id requests.
func (c *FutureEntryController) Delete(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid future entry ID format",
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), entryID)
	if err != nil {
		c.handleFutureEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteFutureEntryResponse{
		PurchaseDeleted: output.PurchaseDeleted,
		EntriesDeleted:  output.EntriesDeleted,
	})
}

// handleFutureEntryError handles future entry errors and returns appropriate HTTP responses.
func (c *FutureEntryController) handleFutureEntryError(ctx *gin.Context, err error) {
	var feErr *domainerror.FutureEntryError
	if errors.As(err, &feErr) {
		ctx.JSON(c.getStatusCodeForFutureEntryError(feErr.Code), dto.ErrorResponse{
			Error: feErr.Message,
			Code:  string(feErr.Code),
		})
		return
	}

	// Group deletes run through the installment flow and fail with its codes.
	var instErr *domainerror.InstallmentError
	if errors.As(err, &instErr) {
		ctx.JSON(getStatusCodeForInstallmentError(instErr.Code), dto.ErrorResponse{
			Error: instErr.Message,
			Code:  string(instErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFutureEntryError maps future entry error codes to HTTP status codes.
func (c *FutureEntryController) getStatusCodeForFutureEntryError(code domainerror.FutureEntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeFutureEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFutureEntryAlreadyPaid:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidFutureEntryKind,
		domainerror.ErrCodeInvalidFutureEntryAmount,
		domainerror.ErrCodePaymentAccountRequired,
		domainerror.ErrCodePaymentAccountIsCard:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
