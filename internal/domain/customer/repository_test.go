package customer

import (
	"context"

	"github.com/stretchr/testify/mock"

	"credit-system/internal/event"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) Save(ctx context.Context, cust *Customer) error {
	ret := _m.Called(ctx, cust)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Customer) error); ok {
		r0 = rf(ctx, cust)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCustomerRepository) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Customer
	if rf, ok := ret.Get(0).(func(context.Context, int64) *Customer); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*Customer)
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

func (_m *MockCustomerRepository) Deactivate(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, customerID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

var _ Repository = (*MockCustomerRepository)(nil)

type MockPublisher struct {
	mock.Mock
}

func (_m *MockPublisher) PublishCustomerCreated(ctx context.Context, evt event.CustomerEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *MockPublisher) PublishCustomerUpdated(ctx context.Context, evt event.CustomerEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *MockPublisher) PublishCustomerDeleted(ctx context.Context, evt event.CustomerEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

func (_m *MockPublisher) PublishCreditCreated(ctx context.Context, evt event.CreditEvent) error {
	ret := _m.Called(ctx, evt)
	return ret.Error(0)
}

var _ event.Publisher = (*MockPublisher)(nil)
