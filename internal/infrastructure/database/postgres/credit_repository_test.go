package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"credit-system/internal/domain/credit"
	"credit-system/internal/pkg/apperrors"
)

func testCredit() *credit.Credit {
	return &credit.Credit{
		ID:                   1,
		CreditCode:           uuid.New(),
		CreditValue:          decimal.NewFromInt(30000),
		DayFirstInstallment:  time.Now().AddDate(0, 1, 0),
		NumberOfInstallments: 12,
		Status:               credit.StatusInProgress,
		CustomerID:           1,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
}

func setupCreditRepo(t *testing.T) (context.Context, *CreditRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewCreditRepository(mockPool, logger)

	return ctx, repo, mockPool
}

const insertCreditQuery = `
        INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING id, created_at, updated_at`

var creditColumns = []string{
	"id", "credit_code", "credit_value", "day_first_installment",
	"number_of_installments", "status", "customer_id", "created_at", "updated_at",
}

func TestCreateCreditWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	cr := testCredit()
	cr.ID = 0

	mockPool.ExpectQuery(regexp.QuoteMeta(insertCreditQuery)).WithArgs(
		cr.CreditCode,
		cr.CreditValue,
		cr.DayFirstInstallment,
		cr.NumberOfInstallments,
		cr.Status,
		cr.CustomerID,
	).WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
		AddRow(int64(10), cr.CreatedAt, cr.UpdatedAt))

	err := repo.CreateCredit(ctx, cr)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), cr.ID, "generated ID should be written back")
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestCreateCreditWhenCodeCollision(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	cr := testCredit()
	cr.ID = 0

	mockPool.ExpectQuery(regexp.QuoteMeta(insertCreditQuery)).WithArgs(
		cr.CreditCode,
		cr.CreditValue,
		cr.DayFirstInstallment,
		cr.NumberOfInstallments,
		cr.Status,
		cr.CustomerID,
	).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "credits_credit_code_key"})

	err := repo.CreateCredit(ctx, cr)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestCreateCreditWhenNil(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	err := repo.CreateCredit(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestFindAllCreditsByCustomerIDWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	first := testCredit()
	second := testCredit()
	second.ID = 2

	mockPool.ExpectQuery("SELECT (.+) FROM credits").WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(creditColumns).
			AddRow(first.ID, first.CreditCode, first.CreditValue, first.DayFirstInstallment,
				first.NumberOfInstallments, first.Status, first.CustomerID, first.CreatedAt, first.UpdatedAt).
			AddRow(second.ID, second.CreditCode, second.CreditValue, second.DayFirstInstallment,
				second.NumberOfInstallments, second.Status, second.CustomerID, second.CreatedAt, second.UpdatedAt))

	credits, err := repo.FindAllByCustomerID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, credits, 2)
	assert.Equal(t, first.CreditCode, credits[0].CreditCode)
	assert.Equal(t, second.CreditCode, credits[1].CreditCode)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindAllCreditsByCustomerIDWhenEmpty(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT (.+) FROM credits").WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows(creditColumns))

	credits, err := repo.FindAllByCustomerID(ctx, 9)
	assert.NoError(t, err)
	assert.NotNil(t, credits, "empty result should be an empty slice, not nil")
	assert.Empty(t, credits)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCreditByCodeWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	cr := testCredit()

	mockPool.ExpectQuery("SELECT (.+) FROM credits").WithArgs(cr.CreditCode).
		WillReturnRows(pgxmock.NewRows(creditColumns).
			AddRow(cr.ID, cr.CreditCode, cr.CreditValue, cr.DayFirstInstallment,
				cr.NumberOfInstallments, cr.Status, cr.CustomerID, cr.CreatedAt, cr.UpdatedAt))

	found, err := repo.FindByCode(ctx, cr.CreditCode)
	assert.NoError(t, err)
	assert.Equal(t, cr.CreditCode, found.CreditCode)
	assert.Equal(t, cr.CustomerID, found.CustomerID)
	assert.True(t, found.CreditValue.Equal(cr.CreditValue))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCreditByCodeWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCreditRepo(t)
	defer mockPool.Close()

	code := uuid.New()
	mockPool.ExpectQuery("SELECT (.+) FROM credits").WithArgs(code).
		WillReturnError(pgx.ErrNoRows)

	found, err := repo.FindByCode(ctx, code)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, credit.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
