package credit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"credit-system/internal/pkg/apperrors"
)

var (
	// Business-rule violations, in the order the validation runs them.
	// All of them map to a 400 at the boundary.
	ErrInvalidCreditValue      = fmt.Errorf("%w: creditValue must be greater than zero", apperrors.ErrValidation)
	ErrInvalidInstallmentCount = fmt.Errorf("%w: numberOfInstallments must be between %d and %d", apperrors.ErrValidation, MinInstallments, MaxInstallments)
	ErrInvalidInstallmentDate  = fmt.Errorf("%w: dayFirstInstallment must be after today and within %d months", apperrors.ErrValidation, MaxFirstInstallmentMonths)
	ErrCustomerNotFound        = fmt.Errorf("%w: customer not found", apperrors.ErrValidation)

	// ErrNotFound is reported for an unknown credit code and, deliberately
	// with the same shape, for a code owned by another customer.
	ErrNotFound = fmt.Errorf("%w: credit not found", apperrors.ErrNotFound)
)

type Repository interface {
	// CreateCredit persists a new credit and fills in its generated identity
	// and timestamps. A credit-code collision surfaces as
	// apperrors.ErrAlreadyExists.
	CreateCredit(ctx context.Context, cr *Credit) error

	// FindAllByCustomerID returns the customer's credits, empty when none.
	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error)

	// FindByCode looks a credit up by its code regardless of owner; the
	// ownership check belongs to the service.
	FindByCode(ctx context.Context, creditCode uuid.UUID) (*Credit, error)
}
