package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"credit-system/internal/domain/customer"
	"credit-system/internal/event"
	"credit-system/internal/pkg/apperrors"
)

// Bounded retry budget for credit-code collisions. The code space is a
// random UUID, so a second collision in a row already means something is
// very wrong with the environment.
const maxCodeRetries = 3

type NewCreditInput struct {
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	CustomerID           int64
}

type Service interface {
	CreateCredit(ctx context.Context, input NewCreditInput) (*Credit, error)
	FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error)
	FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error)
}

var _ Service = (*creditService)(nil)

type creditService struct {
	repo            Repository
	customerService customer.Service
	pub             event.Publisher
	logger          *slog.Logger
}

func NewCreditService(repo Repository, cs customer.Service, pub event.Publisher, logger *slog.Logger) Service {
	if repo == nil {
		panic("credit repository cannot be nil")
	}
	if cs == nil {
		panic("customer service cannot be nil")
	}
	if pub == nil {
		pub = event.NoopPublisher{}
	}
	return &creditService{
		repo:            repo,
		customerService: cs,
		pub:             pub,
		logger:          logger.With(slog.String("component", "creditService")),
	}
}

func (s *creditService) CreateCredit(ctx context.Context, input NewCreditInput) (*Credit, error) {
	s.logger.InfoContext(ctx, "Attempting to create new credit", slog.Int64("customerID", input.CustomerID))

	cr := NewCredit(input.CreditValue, input.DayFirstInstallment, input.NumberOfInstallments, input.CustomerID)

	if err := cr.Validate(time.Now()); err != nil {
		s.logger.WarnContext(ctx, "Credit request rejected by business rules", slog.Any("error", err))
		return nil, err
	}

	cust, err := s.customerService.GetCustomer(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			s.logger.WarnContext(ctx, "Credit requested for unknown customer", slog.Int64("customerID", input.CustomerID))
			return nil, ErrCustomerNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to verify customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to verify customer %d: %w", input.CustomerID, err)
	}

	for attempt := 1; ; attempt++ {
		err = s.repo.CreateCredit(ctx, cr)
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrAlreadyExists) {
			s.logger.ErrorContext(ctx, "Repository failed to save credit", slog.Any("error", err))
			return nil, fmt.Errorf("failed to save credit: %w", err)
		}
		if attempt >= maxCodeRetries {
			s.logger.ErrorContext(ctx, "Exhausted credit code retries", slog.Int("attempts", attempt))
			return nil, fmt.Errorf("%w: could not generate a unique credit code after %d attempts", apperrors.ErrDatabase, attempt)
		}
		s.logger.WarnContext(ctx, "Credit code collision, regenerating", slog.Int("attempt", attempt))
		cr.RegenerateCode()
	}

	cr.Customer = cust
	s.logger.InfoContext(ctx, "Successfully created credit",
		slog.Int64("creditID", cr.ID), slog.String("creditCode", cr.CreditCode.String()))

	evt := event.CreditEvent{
		Timestamp: time.Now(),
		Payload: event.CreditEventPayload{
			CreditID:             cr.ID,
			CreditCode:           cr.CreditCode.String(),
			CreditValue:          cr.CreditValue,
			NumberOfInstallments: cr.NumberOfInstallments,
			DayFirstInstallment:  cr.DayFirstInstallment.Format(time.DateOnly),
			Status:               string(cr.Status),
			CustomerID:           cr.CustomerID,
		},
	}
	if pubErr := s.pub.PublishCreditCreated(ctx, evt); pubErr != nil {
		s.logger.ErrorContext(ctx, "Credit created, but failed to publish creation event", slog.Any("error", pubErr))
	}

	return cr, nil
}

func (s *creditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error) {
	s.logger.InfoContext(ctx, "Listing credits by customer", slog.Int64("customerID", customerID))

	credits, err := s.repo.FindAllByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing credits", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list credits for customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully listed credits", slog.Int("count", len(credits)))
	return credits, nil
}

func (s *creditService) FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error) {
	s.logger.InfoContext(ctx, "Looking up credit by code", slog.String("creditCode", creditCode.String()))

	cr, err := s.repo.FindByCode(ctx, creditCode)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Credit not found by repository")
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to find credit %s: %w", creditCode, err)
	}

	// Ownership mismatch is reported as not-found so the response never
	// confirms that the code exists for someone else.
	if cr.CustomerID != customerID {
		s.logger.WarnContext(ctx, "Credit owned by a different customer",
			slog.Int64("requestedBy", customerID), slog.Int64("ownedBy", cr.CustomerID))
		return nil, ErrNotFound
	}

	cust, err := s.customerService.GetCustomer(ctx, cr.CustomerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			s.logger.WarnContext(ctx, "Owning customer no longer active")
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to load owning customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load customer %d for credit: %w", cr.CustomerID, err)
	}
	cr.Customer = cust

	return cr, nil
}
