package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/centavo/backend/internal/application/usecase/dashboard"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/domain/valueobject"
	"github.com/centavo/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the derived read endpoints: summary metrics,
// annual timeline, category grid, net worth history and card statements.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	timelineUseCase  *dashboard.GetTimelineUseCase
	gridUseCase      *dashboard.GetCategoryGridUseCase
	netWorthUseCase  *dashboard.GetNetWorthHistoryUseCase
	statementUseCase *dashboard.GetCardStatementUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	timelineUseCase *dashboard.GetTimelineUseCase,
	gridUseCase *dashboard.GetCategoryGridUseCase,
	netWorthUseCase *dashboard.GetNetWorthHistoryUseCase,
	statementUseCase *dashboard.GetCardStatementUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		timelineUseCase:  timelineUseCase,
		gridUseCase:      gridUseCase,
		netWorthUseCase:  netWorthUseCase,
		statementUseCase: statementUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests. The month query
// parameter defaults to the current month.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	month, ok := c.monthParam(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{Month: month})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Metrics))
}

// GetTimeline handles GET /dashboard/timeline requests. The year query
// parameter defaults to the current year.
func (c *DashboardController) GetTimeline(ctx *gin.Context) {
	year, ok := c.yearParam(ctx)
	if !ok {
		return
	}

	output, err := c.timelineUseCase.Execute(ctx.Request.Context(), dashboard.GetTimelineInput{Year: year})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimelineResponse(year, output.Months))
}

// GetCategoryGrid handles GET /dashboard/category-grid requests.
func (c *DashboardController) GetCategoryGrid(ctx *gin.Context) {
	year, ok := c.yearParam(ctx)
	if !ok {
		return
	}

	output, err := c.gridUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryGridInput{Year: year})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryGridResponse(year, output.Grid))
}

// GetNetWorthHistory handles GET /dashboard/net-worth-history requests.
func (c *DashboardController) GetNetWorthHistory(ctx *gin.Context) {
	month, ok := c.monthParam(ctx)
	if !ok {
		return
	}

	output, err := c.netWorthUseCase.Execute(ctx.Request.Context(), dashboard.GetNetWorthHistoryInput{Month: month})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NetWorthHistoryResponse{
		Points: dto.ToNetWorthPointResponses(output.Points),
	})
}

// GetCardStatement handles GET /dashboard/card-statement/:id requests.
func (c *DashboardController) GetCardStatement(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	month, ok := c.monthParam(ctx)
	if !ok {
		return
	}

	output, err := c.statementUseCase.Execute(ctx.Request.Context(), dashboard.GetCardStatementInput{
		AccountID: accountID,
		Month:     month,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardStatementResponse(accountID.String(), month.String(), output.Rows, output.Total))
}

// monthParam reads the month query parameter (YYYY-MM), defaulting to the
// current month. On a parse failure it writes the error response and
// returns false.
func (c *DashboardController) monthParam(ctx *gin.Context) (valueobject.YearMonth, bool) {
	raw := ctx.Query("month")
	if raw == "" {
		now := time.Now()
		return valueobject.NewYearMonth(now.Year(), now.Month()), true
	}

	month, err := valueobject.ParseYearMonth(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format. Use YYYY-MM",
		})
		return valueobject.YearMonth{}, false
	}
	return month, true
}

// yearParam reads the year query parameter, defaulting to the current year.
func (c *DashboardController) yearParam(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("year")
	if raw == "" {
		return time.Now().Year(), true
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year format",
		})
		return 0, false
	}
	return year, true
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		status := http.StatusBadRequest
		if accErr.Code == domainerror.ErrCodeAccountNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	var recErr *domainerror.MalformedRecordError
	if errors.As(err, &recErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: recErr.Error(),
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
