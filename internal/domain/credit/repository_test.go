package credit

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"credit-system/internal/domain/customer"
	"credit-system/internal/event"
)

type MockCreditRepository struct {
	mock.Mock
}

func (_m *MockCreditRepository) CreateCredit(ctx context.Context, cr *Credit) error {
	ret := _m.Called(ctx, cr)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Credit) error); ok {
		r0 = rf(ctx, cr)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*Credit
	if rf, ok := ret.Get(0).(func(context.Context, int64) []*Credit); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*Credit)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCreditRepository) FindByCode(ctx context.Context, creditCode uuid.UUID) (*Credit, error) {
	ret := _m.Called(ctx, creditCode)

	var r0 *Credit
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *Credit); ok {
		r0 = rf(ctx, creditCode)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Credit)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, creditCode)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

var _ Repository = (*MockCreditRepository)(nil)

type MockCustomerService struct {
	mock.Mock
}

func (_m *MockCustomerService) CreateCustomer(ctx context.Context, input customer.NewCustomerInput) (*customer.Customer, error) {
	ret := _m.Called(ctx, input)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) GetCustomer(ctx context.Context, customerID int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID int64, update customer.Update) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID, update)

	var r0 *customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)
	return ret.Error(0)
}

var _ customer.Service = (*MockCustomerService)(nil)

type MockEventPublisher struct {
	mock.Mock
}

func (_m *MockEventPublisher) PublishCustomerCreated(ctx context.Context, evt event.CustomerEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *MockEventPublisher) PublishCustomerUpdated(ctx context.Context, evt event.CustomerEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *MockEventPublisher) PublishCustomerDeleted(ctx context.Context, evt event.CustomerEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *MockEventPublisher) PublishCreditCreated(ctx context.Context, evt event.CreditEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

var _ event.Publisher = (*MockEventPublisher)(nil)
