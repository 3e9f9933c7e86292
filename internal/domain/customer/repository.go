package customer

import (
	"context"
	"fmt"

	"credit-system/internal/pkg/apperrors"
)

var (
	// ErrNotFound covers both truly absent and logically deleted customers.
	ErrNotFound = fmt.Errorf("%w: customer not found", apperrors.ErrNotFound)

	// ErrDuplicateCustomer is returned when the cpf or email unique
	// constraint is violated on insert.
	ErrDuplicateCustomer = fmt.Errorf("%w: customer with same cpf or email already registered", apperrors.ErrAlreadyExists)
)

type Repository interface {
	Save(ctx context.Context, cust *Customer) error

	// FindByID only returns active customers; deactivated ones report ErrNotFound.
	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	// Deactivate flips the logical-delete flag. Deactivating an already
	// inactive or absent customer reports ErrNotFound.
	Deactivate(ctx context.Context, customerID int64) error
}
