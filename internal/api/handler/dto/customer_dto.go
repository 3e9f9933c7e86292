package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"credit-system/internal/domain/customer"
	"credit-system/internal/pkg/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldMessage renders one declarative-constraint violation the way the
// error body reports it.
func fieldMessage(fe validator.FieldError) apperrors.FieldError {
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "cannot be empty"
	case "email":
		msg = "must be a valid email address"
	case "numeric":
		msg = "must contain only digits"
	case "len":
		msg = "must be exactly " + fe.Param() + " characters"
	case "min":
		msg = "must be at least " + fe.Param() + " characters"
	case "datetime":
		msg = "must be a date in YYYY-MM-DD format"
	default:
		msg = "is invalid"
	}
	return apperrors.FieldError{Field: jsonFieldName(fe.Field()), Message: msg}
}

// Field names in request structs are exported Go names; the error body uses
// the JSON casing.
func jsonFieldName(name string) string {
	if name == "CPF" {
		return "cpf"
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func checkStruct(v any) []apperrors.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	fields := make([]apperrors.FieldError, 0)
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			fields = append(fields, fieldMessage(fe))
		}
	}
	return fields
}

type CreateCustomerRequest struct {
	FirstName string          `json:"firstName" validate:"required"`
	LastName  string          `json:"lastName" validate:"required"`
	CPF       string          `json:"cpf" validate:"required,numeric,len=11"`
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=6"`
	Income    decimal.Decimal `json:"income"`
	ZipCode   string          `json:"zipCode" validate:"required"`
	Street    string          `json:"street" validate:"required"`
}

func (r *CreateCustomerRequest) Validate() error {
	fields := checkStruct(r)
	if !r.Income.IsPositive() {
		fields = append(fields, apperrors.FieldError{Field: "income", Message: "must be greater than zero"})
	}
	if len(fields) > 0 {
		return &apperrors.ValidationErrors{Fields: fields}
	}
	return nil
}

// UpdateCustomerRequest carries the whitelisted mutable fields. Absent
// fields are left untouched; present ones must still hold valid values.
type UpdateCustomerRequest struct {
	FirstName *string          `json:"firstName"`
	LastName  *string          `json:"lastName"`
	Income    *decimal.Decimal `json:"income"`
	ZipCode   *string          `json:"zipCode"`
	Street    *string          `json:"street"`
}

func (r *UpdateCustomerRequest) Validate() error {
	fields := make([]apperrors.FieldError, 0)
	checkBlank := func(name string, v *string) {
		if v != nil && strings.TrimSpace(*v) == "" {
			fields = append(fields, apperrors.FieldError{Field: name, Message: "cannot be empty"})
		}
	}
	checkBlank("firstName", r.FirstName)
	checkBlank("lastName", r.LastName)
	checkBlank("zipCode", r.ZipCode)
	checkBlank("street", r.Street)
	if r.Income != nil && !r.Income.IsPositive() {
		fields = append(fields, apperrors.FieldError{Field: "income", Message: "must be greater than zero"})
	}
	if len(fields) > 0 {
		return &apperrors.ValidationErrors{Fields: fields}
	}
	return nil
}

func (r *UpdateCustomerRequest) ToUpdate() customer.Update {
	return customer.Update{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Income:    r.Income,
		ZipCode:   r.ZipCode,
		Street:    r.Street,
	}
}

// CustomerResponse is the external customer view. The password never
// appears here.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	Income    string `json:"income"`
	ZipCode   string `json:"zipCode"`
	Street    string `json:"street"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		ID:        cust.ID,
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		CPF:       cust.CPF,
		Email:     cust.Email,
		Income:    cust.Income.StringFixed(2),
		ZipCode:   cust.Address.ZipCode,
		Street:    cust.Address.Street,
	}
}
