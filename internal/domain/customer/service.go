package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"credit-system/internal/event"
	"credit-system/internal/pkg/apperrors"
)

const customerNotFound = "Customer not found by repository"

// NewCustomerInput carries the already field-validated values of a
// registration request. The password arrives in plain text and is hashed
// here, never stored or logged as-is.
type NewCustomerInput struct {
	FirstName string
	LastName  string
	CPF       string
	Email     string
	Password  string
	Income    decimal.Decimal
	Address   Address
}

type Service interface {
	CreateCustomer(ctx context.Context, input NewCustomerInput) (*Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, update Update) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

var _ Service = (*customerService)(nil)

type customerService struct {
	repo   Repository
	pub    event.Publisher
	logger *slog.Logger
}

func NewCustomerService(repo Repository, pub event.Publisher, logger *slog.Logger) Service {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if pub == nil {
		pub = event.NoopPublisher{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}
	return &customerService{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func newCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	return event.CustomerEventPayload{
		CustomerID: cust.ID,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		CPF:        cust.CPF,
		Email:      cust.Email,
		Income:     cust.Income,
		ZipCode:    cust.Address.ZipCode,
		Street:     cust.Address.Street,
		Active:     cust.Active,
	}
}

func (s *customerService) publishEvent(ctx context.Context, cust *Customer, publish func(context.Context, event.CustomerEvent) error, kind string) {
	evt := event.CustomerEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(cust),
	}
	if err := publish(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish customer event",
			slog.String("event", kind), slog.Int64("customerID", cust.ID), slog.Any("error", err))
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, input NewCustomerInput) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer")

	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	if input.FirstName == "" || input.LastName == "" {
		s.logger.WarnContext(ctx, "Validation failed: name is empty")
		return nil, fmt.Errorf("%w: first and last name cannot be empty", apperrors.ErrInvalidArgument)
	}
	if !input.Income.IsPositive() {
		s.logger.WarnContext(ctx, "Validation failed: income is not positive")
		return nil, fmt.Errorf("%w: income must be greater than zero", apperrors.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to hash password: %v", apperrors.ErrInternalServer, err)
	}

	cust := NewCustomer(input.FirstName, input.LastName, input.CPF, input.Email, string(hash), input.Income, input.Address)

	s.logger.InfoContext(ctx, "Calling repository Save")
	if err := s.repo.Save(ctx, cust); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			s.logger.WarnContext(ctx, "Duplicate cpf or email rejected by repository")
			return nil, ErrDuplicateCustomer
		}
		s.logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully created new customer", slog.Int64("customerID", cust.ID))
	s.publishEvent(ctx, cust, s.pub.PublishCustomerCreated, "created")
	return cust, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to get customer by ID", slog.Int64("customerID", customerID))

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}

	return cust, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, update Update) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", customerID))

	if update.Income != nil && !update.Income.IsPositive() {
		s.logger.WarnContext(ctx, "Validation failed: income is not positive")
		return nil, fmt.Errorf("%w: income must be greater than zero", apperrors.ErrInvalidArgument)
	}

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found by repository for update", slog.Int64("customerID", customerID))
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer for update", slog.Any("error", err))
		return nil, fmt.Errorf("cannot find customer %d to update: %w", customerID, err)
	}

	cust.Apply(update)

	if err := s.repo.Save(ctx, cust); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.ErrorContext(ctx, "Customer disappeared before save completed")
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save updated customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully updated customer", slog.Int64("customerID", customerID))
	s.publishEvent(ctx, cust, s.pub.PublishCustomerUpdated, "updated")
	return cust, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	s.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
			return ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer for delete", slog.Any("error", err))
		return fmt.Errorf("cannot find customer %d to delete: %w", customerID, err)
	}

	if err := s.repo.Deactivate(ctx, customerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer already deactivated", slog.Int64("customerID", customerID))
			return ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error deactivating customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}

	cust.Deactivate()
	s.logger.InfoContext(ctx, "Successfully deleted customer", slog.Int64("customerID", customerID))
	s.publishEvent(ctx, cust, s.pub.PublishCustomerDeleted, "deleted")
	return nil
}
