package dto

import (
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/finance"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// SummaryResponse represents the full dashboard metrics record.
type SummaryResponse struct {
	Month string `json:"month"`

	RealizedIncome  string `json:"realized_income"`
	RealizedExpense string `json:"realized_expense"`
	NetRealized     string `json:"net_realized"`

	PendingReceivable string `json:"pending_receivable"`
	PendingPayable    string `json:"pending_payable"`

	ProjectedIncome  string `json:"projected_income"`
	ProjectedExpense string `json:"projected_expense"`
	ProjectedNet     string `json:"projected_net"`

	TotalAssets      string `json:"total_assets"`
	TotalLiabilities string `json:"total_liabilities"`
	NetWorth         string `json:"net_worth"`

	DebtIndex     string `json:"debt_index"`
	ReserveMonths string `json:"reserve_months"`
	SavingsRate   string `json:"savings_rate"`
	HealthScore   string `json:"health_score"`

	CategoryAverages []CategoryAverageResponse `json:"category_averages"`
	NetWorthHistory  []NetWorthPointResponse   `json:"net_worth_history"`
}

// CategoryAverageResponse is one category's mean monthly expense.
type CategoryAverageResponse struct {
	Category string `json:"category"`
	Average  string `json:"average"`
}

// NetWorthPointResponse is one month of net-worth history.
type NetWorthPointResponse struct {
	Month string `json:"month"`
	Value string `json:"value"`
}

// NetWorthHistoryResponse represents the trailing net-worth history.
type NetWorthHistoryResponse struct {
	Points []NetWorthPointResponse `json:"points"`
}

// TimelineMonthResponse is one month of the annual timeline.
type TimelineMonthResponse struct {
	Month       string `json:"month"`
	Income      string `json:"income"`
	Expense     string `json:"expense"`
	CardUsage   string `json:"card_usage"`
	Net         string `json:"net"`
	Accumulated string `json:"accumulated"`
}

// TimelineResponse represents the annual cash-flow timeline.
type TimelineResponse struct {
	Year   int                     `json:"year"`
	Months []TimelineMonthResponse `json:"months"`
}

// CategoryGridResponse represents the per-category monthly breakdown of a year.
type CategoryGridResponse struct {
	Year        int                 `json:"year"`
	Income      map[string][]string `json:"income"`
	Expense     map[string][]string `json:"expense"`
	MonthlyNet  []string            `json:"monthly_net"`
	Accumulated []string            `json:"accumulated"`
}

// StatementRowResponse is one virtual row of a card statement.
type StatementRowResponse struct {
	EntryID          string `json:"entry_id"`
	Description      string `json:"description"`
	Amount           string `json:"amount"`
	DueDate          string `json:"due_date"`
	Sequence         int    `json:"sequence"`
	InstallmentCount int    `json:"installment_count"`
	Pending          bool   `json:"pending"`
}

// CardStatementResponse represents a card's statement for one month.
type CardStatementResponse struct {
	AccountID string                 `json:"account_id"`
	Month     string                 `json:"month"`
	Rows      []StatementRowResponse `json:"rows"`
	Total     string                 `json:"total"`
}

// ToSummaryResponse converts a Metrics record to a SummaryResponse DTO.
func ToSummaryResponse(m *finance.Metrics) SummaryResponse {
	averages := make([]CategoryAverageResponse, len(m.CategoryAverages))
	for i, avg := range m.CategoryAverages {
		averages[i] = CategoryAverageResponse{
			Category: string(avg.Category),
			Average:  avg.Average.StringFixed(2),
		}
	}

	return SummaryResponse{
		Month:             m.Month.String(),
		RealizedIncome:    m.RealizedIncome.StringFixed(2),
		RealizedExpense:   m.RealizedExpense.StringFixed(2),
		NetRealized:       m.NetRealized.StringFixed(2),
		PendingReceivable: m.PendingReceivable.StringFixed(2),
		PendingPayable:    m.PendingPayable.StringFixed(2),
		ProjectedIncome:   m.ProjectedIncome.StringFixed(2),
		ProjectedExpense:  m.ProjectedExpense.StringFixed(2),
		ProjectedNet:      m.ProjectedNet.StringFixed(2),
		TotalAssets:       m.TotalAssets.StringFixed(2),
		TotalLiabilities:  m.TotalLiabilities.StringFixed(2),
		NetWorth:          m.NetWorth.StringFixed(2),
		DebtIndex:         m.DebtIndex.StringFixed(2),
		ReserveMonths:     m.ReserveMonths.StringFixed(2),
		SavingsRate:       m.SavingsRate.StringFixed(2),
		HealthScore:       m.HealthScore.StringFixed(2),
		CategoryAverages:  averages,
		NetWorthHistory:   ToNetWorthPointResponses(m.NetWorthHistory),
	}
}

// ToNetWorthPointResponses converts net-worth points to their DTO form.
func ToNetWorthPointResponses(points []finance.NetWorthPoint) []NetWorthPointResponse {
	responses := make([]NetWorthPointResponse, len(points))
	for i, p := range points {
		responses[i] = NetWorthPointResponse{
			Month: p.Month.String(),
			Value: p.Value.StringFixed(2),
		}
	}
	return responses
}

// ToTimelineResponse converts timeline months to a TimelineResponse DTO.
func ToTimelineResponse(year int, months []finance.TimelineMonth) TimelineResponse {
	responses := make([]TimelineMonthResponse, len(months))
	for i, m := range months {
		responses[i] = TimelineMonthResponse{
			Month:       m.Month.String(),
			Income:      m.Income.StringFixed(2),
			Expense:     m.Expense.StringFixed(2),
			CardUsage:   m.CardUsage.StringFixed(2),
			Net:         m.Net.StringFixed(2),
			Accumulated: m.Accumulated.StringFixed(2),
		}
	}
	return TimelineResponse{Year: year, Months: responses}
}

// ToCategoryGridResponse converts a CategoryGrid to its DTO form.
func ToCategoryGridResponse(year int, grid *finance.CategoryGrid) CategoryGridResponse {
	return CategoryGridResponse{
		Year:        year,
		Income:      gridMapToStrings(grid.Income),
		Expense:     gridMapToStrings(grid.Expense),
		MonthlyNet:  decimalsToStrings(grid.MonthlyNet),
		Accumulated: decimalsToStrings(grid.Accumulated),
	}
}

// ToCardStatementResponse converts statement rows to a CardStatementResponse DTO.
func ToCardStatementResponse(accountID, month string, rows []finance.StatementRow, total decimal.Decimal) CardStatementResponse {
	rowResponses := make([]StatementRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = StatementRowResponse{
			EntryID:          row.EntryID.String(),
			Description:      row.Description,
			Amount:           row.Amount.StringFixed(2),
			DueDate:          row.DueDate.Format("2006-01-02"),
			Sequence:         row.Sequence,
			InstallmentCount: row.InstallmentCount,
			Pending:          row.Pending,
		}
	}
	return CardStatementResponse{
		AccountID: accountID,
		Month:     month,
		Rows:      rowResponses,
		Total:     total.StringFixed(2),
	}
}

func gridMapToStrings(in map[valueobject.Category][]decimal.Decimal) map[string][]string {
	out := make(map[string][]string, len(in))
	for category, values := range in {
		out[string(category)] = decimalsToStrings(values)
	}
	return out
}

func decimalsToStrings(values []decimal.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.StringFixed(2)
	}
	return out
}
