package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"credit-system/internal/domain/credit"
	"credit-system/internal/pkg/apperrors"
)

type CreateCreditRequest struct {
	CreditValue           decimal.Decimal `json:"creditValue"`
	DayFirstOfInstallment string          `json:"dayFirstOfInstallment" validate:"required,datetime=2006-01-02"`
	NumberOfInstallments  int             `json:"numberOfInstallments"`
	CustomerID            int64           `json:"customerId"`
}

// Validate only enforces field-format constraints. Value positivity,
// installment bounds and the installment-date window are business rules
// judged by the credit service, so they report a single business error
// rather than a field list.
func (r *CreateCreditRequest) Validate() error {
	if fields := checkStruct(r); len(fields) > 0 {
		return &apperrors.ValidationErrors{Fields: fields}
	}
	return nil
}

func (r *CreateCreditRequest) DayFirstInstallment() time.Time {
	day, _ := time.Parse(time.DateOnly, r.DayFirstOfInstallment)
	return day
}

type CreditSummaryResponse struct {
	CreditCode           string `json:"creditCode"`
	CreditValue          string `json:"creditValue"`
	NumberOfInstallments int    `json:"numberOfInstallments"`
}

func NewCreditSummaryResponse(cr *credit.Credit) CreditSummaryResponse {
	return CreditSummaryResponse{
		CreditCode:           cr.CreditCode.String(),
		CreditValue:          cr.CreditValue.StringFixed(2),
		NumberOfInstallments: cr.NumberOfInstallments,
	}
}

// CreditDetailResponse keeps the singular numberOfInstallment key of the
// published contract.
type CreditDetailResponse struct {
	CreditCode          string `json:"creditCode"`
	CreditValue         string `json:"creditValue"`
	NumberOfInstallment int    `json:"numberOfInstallment"`
	Status              string `json:"status"`
	EmailCustomer       string `json:"emailCustomer"`
	IncomeCustomer      string `json:"incomeCustomer"`
}

func NewCreditDetailResponse(cr *credit.Credit) CreditDetailResponse {
	resp := CreditDetailResponse{
		CreditCode:          cr.CreditCode.String(),
		CreditValue:         cr.CreditValue.StringFixed(2),
		NumberOfInstallment: cr.NumberOfInstallments,
		Status:              string(cr.Status),
	}
	if cr.Customer != nil {
		resp.EmailCustomer = cr.Customer.Email
		resp.IncomeCustomer = cr.Customer.Income.StringFixed(2)
	}
	return resp
}

// ErrorResponse is the structured body of every 4xx/5xx response.
type ErrorResponse struct {
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Exception string    `json:"exception"`
	Details   []string  `json:"details"`
}

type TokenRequest struct {
	Username string `json:"username"`
}
