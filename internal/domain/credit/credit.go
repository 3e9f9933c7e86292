package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"credit-system/internal/domain/customer"
)

// Policy bounds for a credit request. MaxInstallments is the pinned upper
// bound for the number of installments; MaxFirstInstallmentMonths bounds how
// far in the future the first installment may fall.
const (
	MinInstallments           = 1
	MaxInstallments           = 48
	MaxFirstInstallmentMonths = 3
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
)

type Credit struct {
	ID                   int64
	CreditCode           uuid.UUID
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	Status               Status
	CustomerID           int64
	Customer             *customer.Customer
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewCredit builds a credit in its initial state with a freshly generated
// credit code. The code is immutable after creation.
func NewCredit(value decimal.Decimal, dayFirstInstallment time.Time, installments int, customerID int64) *Credit {
	now := time.Now()
	return &Credit{
		CreditCode:           uuid.New(),
		CreditValue:          value,
		DayFirstInstallment:  dayFirstInstallment,
		NumberOfInstallments: installments,
		Status:               StatusInProgress,
		CustomerID:           customerID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// RegenerateCode assigns a new credit code after a persistence collision.
func (c *Credit) RegenerateCode() {
	c.CreditCode = uuid.New()
}

// Validate is the pure eligibility decision for a proposed credit, judged
// against the given current date. Checks run in a fixed order and the first
// violated rule is reported:
//
//  1. creditValue must be greater than zero
//  2. numberOfInstallments must be within [MinInstallments, MaxInstallments]
//  3. dayFirstInstallment must be strictly after today and at most
//     MaxFirstInstallmentMonths calendar months later
//
// Customer existence is a service-level concern and checked there.
func (c *Credit) Validate(today time.Time) error {
	if !c.CreditValue.IsPositive() {
		return ErrInvalidCreditValue
	}
	if c.NumberOfInstallments < MinInstallments || c.NumberOfInstallments > MaxInstallments {
		return ErrInvalidInstallmentCount
	}

	today = truncateToDay(today)
	day := truncateToDay(c.DayFirstInstallment)
	limit := today.AddDate(0, MaxFirstInstallmentMonths, 0)
	if !day.After(today) || day.After(limit) {
		return ErrInvalidInstallmentDate
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
