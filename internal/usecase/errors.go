package usecase

import "errors"

const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeTokenRejected    = "TOKEN_REJECTED"
	CodeCustomerRejected = "CUSTOMER_REJECTED"
	CodeChargeRejected   = "CHARGE_REJECTED"
	CodeInvoiceFailed    = "INVOICE_FAILED"
)

// DomainError é uma recusa esperada: dados incompletos ou o gateway disse
// não. Vira 400.
type DomainError struct {
	Code    string
	Message string
	Details any
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var target *DomainError
	return errors.As(err, &target)
}

// TechnicalError é uma falha de um serviço interno depois do cargo. Vira 500.
type TechnicalError struct {
	Code    string
	Message string
	Details any
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var target *TechnicalError
	return errors.As(err, &target)
}
