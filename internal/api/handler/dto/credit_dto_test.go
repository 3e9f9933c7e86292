package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"credit-system/internal/domain/credit"
	"credit-system/internal/domain/customer"
	"credit-system/internal/pkg/apperrors"
)

func TestCreateCreditRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateCreditRequest
		wantErr bool
	}{
		{validRequest, CreateCreditRequest{
			CreditValue:           decimal.NewFromInt(30000),
			DayFirstOfInstallment: "2025-06-13",
			NumberOfInstallments:  12,
			CustomerID:            1,
		}, false},
		{"Missing installment date", CreateCreditRequest{
			CreditValue:          decimal.NewFromInt(30000),
			NumberOfInstallments: 12,
			CustomerID:           1,
		}, true},
		{"Malformed installment date", CreateCreditRequest{
			CreditValue:           decimal.NewFromInt(30000),
			DayFirstOfInstallment: "13/06/2025",
			NumberOfInstallments:  12,
			CustomerID:            1,
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				var vErrs *apperrors.ValidationErrors
				assert.True(t, errors.As(err, &vErrs))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Value, installment count and customer are judged by the credit service, so
// a request that only breaks those rules passes field validation here.
func TestCreateCreditRequestValidateLeavesBusinessRulesAlone(t *testing.T) {
	req := CreateCreditRequest{
		CreditValue:           decimal.Zero,
		DayFirstOfInstallment: "2025-06-13",
		NumberOfInstallments:  0,
		CustomerID:            0,
	}

	assert.NoError(t, req.Validate())
}

func TestCreateCreditRequestDayFirstInstallment(t *testing.T) {
	req := CreateCreditRequest{DayFirstOfInstallment: "2025-06-13"}

	day := req.DayFirstInstallment()
	assert.Equal(t, time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC), day)
}

func TestNewCreditSummaryResponse(t *testing.T) {
	cr := &credit.Credit{
		CreditCode:           uuid.New(),
		CreditValue:          decimal.NewFromFloat(30000.129),
		NumberOfInstallments: 12,
	}

	resp := NewCreditSummaryResponse(cr)
	assert.Equal(t, cr.CreditCode.String(), resp.CreditCode)
	assert.Equal(t, "30000.13", resp.CreditValue)
	assert.Equal(t, 12, resp.NumberOfInstallments)
}

func TestNewCreditDetailResponse(t *testing.T) {
	cr := &credit.Credit{
		CreditCode:           uuid.New(),
		CreditValue:          decimal.NewFromInt(30000),
		NumberOfInstallments: 12,
		Status:               credit.StatusInProgress,
		Customer: &customer.Customer{
			Email:  "camila@email.com",
			Income: decimal.NewFromInt(1000),
		},
	}

	resp := NewCreditDetailResponse(cr)
	assert.Equal(t, cr.CreditCode.String(), resp.CreditCode)
	assert.Equal(t, 12, resp.NumberOfInstallment)
	assert.Equal(t, "IN_PROGRESS", resp.Status)
	assert.Equal(t, "camila@email.com", resp.EmailCustomer)
	assert.Equal(t, "1000.00", resp.IncomeCustomer)

	t.Run("without attached customer", func(t *testing.T) {
		cr.Customer = nil
		resp := NewCreditDetailResponse(cr)
		assert.Empty(t, resp.EmailCustomer)
		assert.Empty(t, resp.IncomeCustomer)
	})
}
