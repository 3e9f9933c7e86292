package event

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type CustomerEventPayload struct {
	CustomerID int64           `json:"customerId"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	CPF        string          `json:"cpf"`
	Email      string          `json:"email"`
	Income     decimal.Decimal `json:"income"`
	ZipCode    string          `json:"zipCode"`
	Street     string          `json:"street"`
	Active     bool            `json:"active"`
}

type CustomerEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CreditEventPayload struct {
	CreditID             int64           `json:"creditId"`
	CreditCode           string          `json:"creditCode"`
	CreditValue          decimal.Decimal `json:"creditValue"`
	NumberOfInstallments int             `json:"numberOfInstallments"`
	DayFirstInstallment  string          `json:"dayFirstInstallment"`
	Status               string          `json:"status"`
	CustomerID           int64           `json:"customerId"`
}

type CreditEvent struct {
	Timestamp time.Time          `json:"timestamp"`
	Payload   CreditEventPayload `json:"payload"`
}

// NoopPublisher satisfies Publisher when no broker is configured.
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func (NoopPublisher) PublishCustomerCreated(context.Context, CustomerEvent) error { return nil }
func (NoopPublisher) PublishCustomerUpdated(context.Context, CustomerEvent) error { return nil }
func (NoopPublisher) PublishCustomerDeleted(context.Context, CustomerEvent) error { return nil }
func (NoopPublisher) PublishCreditCreated(context.Context, CreditEvent) error     { return nil }
