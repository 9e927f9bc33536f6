package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/application/usecase/installment"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/integration/entrypoint/dto"
)

// InstallmentController handles installment purchase endpoints.
type InstallmentController struct {
	createUseCase *installment.CreatePurchaseUseCase
	listUseCase   *installment.ListPurchasesUseCase
	deleteUseCase *installment.DeletePurchaseUseCase
}

// NewInstallmentController creates a new installment controller instance.
func NewInstallmentController(
	createUseCase *installment.CreatePurchaseUseCase,
	listUseCase *installment.ListPurchasesUseCase,
	deleteUseCase *installment.DeletePurchaseUseCase,
) *InstallmentController {
	return &InstallmentController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /installment-purchases requests.
func (c *InstallmentController) Create(ctx *gin.Context) {
	var req dto.CreatePurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase date format. Use YYYY-MM-DD",
		})
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	input := installment.CreatePurchaseInput{
		Description:      req.Description,
		TotalAmount:      decimal.NewFromFloat(req.TotalAmount),
		InstallmentCount: req.InstallmentCount,
		PurchaseDate:     purchaseDate,
		AccountID:        accountID,
		Category:         req.Category,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	entries := make([]dto.FutureEntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = dto.ToFutureEntryResponse(entry)
	}

	ctx.JSON(http.StatusCreated, dto.CreatePurchaseResponse{
		Purchase: dto.ToPurchaseResponse(output.Purchase),
		Entries:  entries,
	})
}

// List handles GET /installment-purchases requests.
func (c *InstallmentController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(output.Purchases))
}

// Delete handles DELETE /installment-purchases/:id requests.
func (c *InstallmentController) Delete(ctx *gin.Context) {
	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase ID format",
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), purchaseID)
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeletePurchaseResponse{
		EntriesDeleted: output.EntriesDeleted,
	})
}

// handleInstallmentError handles installment errors and returns appropriate HTTP responses.
func (c *InstallmentController) handleInstallmentError(ctx *gin.Context, err error) {
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

// getStatusCodeForInstallmentError maps installment error codes to HTTP status codes.
// Partial failures report 500: the store is inconsistent and the client must
// not retry blindly.
func getStatusCodeForInstallmentError(code domainerror.InstallmentErrorCode) int {
	switch code {
	case domainerror.ErrCodePurchaseNotFound,
		domainerror.ErrCodePurchaseAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCardNotConfigured,
		domainerror.ErrCodePurchaseAccountNotCard,
		domainerror.ErrCodeInvalidInstallmentCount,
		domainerror.ErrCodeInvalidPurchaseAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodePurchaseDeleteIncomplete,
		domainerror.ErrCodePurchaseCreateIncomplete:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
