package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"

	"credit-system/internal/domain/credit"
	"credit-system/internal/pkg/apperrors"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

var _ DBPool = (pgxmock.PgxPoolIface)(nil)

var errMsgFormat = "%w: %w"

type CreditRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ credit.Repository = (*CreditRepository)(nil)

func NewCreditRepository(db DBPool, logger *slog.Logger) *CreditRepository {
	if db == nil {
		panic("DBPool cannot be nil for CreditRepository")
	}
	return &CreditRepository{db: db, logger: logger.With("component", "CreditRepository")}
}

func (r *CreditRepository) CreateCredit(ctx context.Context, cr *credit.Credit) error {
	if cr == nil {
		return fmt.Errorf("%w: credit cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new credit", slog.String("creditCode", cr.CreditCode.String()))

	query := `
        INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		cr.CreditCode,
		cr.CreditValue,
		cr.DayFirstInstallment,
		cr.NumberOfInstallments,
		cr.Status,
		cr.CustomerID,
	).Scan(
		&cr.ID,
		&cr.CreatedAt,
		&cr.UpdatedAt,
	)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert credit due to unique constraint violation", slog.String("creditCode", cr.CreditCode.String()))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert credit", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert credit: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Credit inserted successfully", slog.Int64("creditID", cr.ID))
	return nil
}

func (r *CreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	r.logger.InfoContext(ctx, "Attempting to list credits by customer", slog.Int64("customerID", customerID))

	query := `
        SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at, updated_at
        FROM credits
        WHERE customer_id = $1
        ORDER BY id`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query credits", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query credits: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	credits := make([]*credit.Credit, 0)
	for rows.Next() {
		cr, err := scanCredit(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan credit row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan credit row: %w", apperrors.ErrDatabase, err)
		}
		credits = append(credits, cr)
	}

	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating credit rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating credit rows: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Listed credits successfully", slog.Int("count", len(credits)))
	return credits, nil
}

func (r *CreditRepository) FindByCode(ctx context.Context, creditCode uuid.UUID) (*credit.Credit, error) {
	r.logger.InfoContext(ctx, "Attempting to find credit by code", slog.String("creditCode", creditCode.String()))

	query := `
        SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at, updated_at
        FROM credits
        WHERE credit_code = $1`

	cr, err := scanCredit(r.db.QueryRow(ctx, query, creditCode))
	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrNotFound) {
			r.logger.WarnContext(ctx, "Credit not found", slog.String("creditCode", creditCode.String()))
			return nil, credit.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to find credit", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to find credit: %w", apperrors.ErrDatabase, err)
	}

	return cr, nil
}

func scanCredit(row pgx.Row) (*credit.Credit, error) {
	cr := &credit.Credit{}
	err := row.Scan(
		&cr.ID,
		&cr.CreditCode,
		&cr.CreditValue,
		&cr.DayFirstInstallment,
		&cr.NumberOfInstallments,
		&cr.Status,
		&cr.CustomerID,
		&cr.CreatedAt,
		&cr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return cr, nil
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
