package usecase

import "github.com/xavierca1/epayco-charge/internal/entity"

type ProcessChargeInput struct {
	Request  *entity.ChargeRequest
	ClientIP string
}

type ProcessChargeOutput struct {
	Message        string         `json:"message"`
	EmailSent      bool           `json:"email_sent"`
	PaymentDetails any            `json:"payment_details"`
	Factura        map[string]any `json:"factura"`
}

// CallbackURLs são as URLs que o ePayco chama depois do cargo.
type CallbackURLs struct {
	Response     string
	Confirmation string
}
