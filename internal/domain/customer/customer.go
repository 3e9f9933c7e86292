package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is a value object owned by its Customer. It is persisted as
// embedded columns and never referenced independently.
type Address struct {
	ZipCode string `json:"zipCode"`
	Street  string `json:"street"`
}

type Customer struct {
	ID           int64           `json:"id"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	CPF          string          `json:"cpf"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Income       decimal.Decimal `json:"income"`
	Address      Address         `json:"address"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func NewCustomer(firstName, lastName, cpf, email, passwordHash string, income decimal.Decimal, address Address) *Customer {
	now := time.Now()
	return &Customer{
		FirstName:    firstName,
		LastName:     lastName,
		CPF:          cpf,
		Email:        email,
		PasswordHash: passwordHash,
		Income:       income,
		Address:      address,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Update holds the whitelisted mutable fields of a customer. Nil fields are
// left untouched; cpf, email and password are immutable through this path.
type Update struct {
	FirstName *string
	LastName  *string
	Income    *decimal.Decimal
	ZipCode   *string
	Street    *string
}

func (c *Customer) Apply(u Update) {
	if u.FirstName != nil {
		c.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		c.LastName = *u.LastName
	}
	if u.Income != nil {
		c.Income = *u.Income
	}
	if u.ZipCode != nil {
		c.Address.ZipCode = *u.ZipCode
	}
	if u.Street != nil {
		c.Address.Street = *u.Street
	}
	c.UpdatedAt = time.Now()
}

func (c *Customer) Deactivate() {
	if c.Active {
		c.Active = false
		c.UpdatedAt = time.Now()
	}
}
