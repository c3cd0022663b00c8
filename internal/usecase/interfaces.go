package usecase

import (
	"context"

	"github.com/xavierca1/epayco-charge/internal/entity"
	"github.com/xavierca1/epayco-charge/internal/infra/integration/epayco"
	"github.com/xavierca1/epayco-charge/internal/infra/queue"
)

type PaymentGateway interface {
	CreateToken(ctx context.Context, card entity.Card) (epayco.Response, error)
	CreateCustomer(ctx context.Context, input epayco.CustomerInput) (epayco.Response, error)
	CreateCharge(ctx context.Context, info entity.PaymentInfo) (epayco.Response, error)
}

type InvoiceService interface {
	CreateInvoice(ctx context.Context, invoice entity.Invoice, requestID string) (map[string]any, error)
}

// Notifier nunca falha para fora: o bool diz se o email saiu.
type Notifier interface {
	SendPaymentReceipt(ctx context.Context, to string, invoiceID any, chargeData map[string]any) bool
}

type EventPublisher interface {
	PublishChargeEvent(ctx context.Context, event queue.ChargeEvent) error
}

type MetricsRecorder interface {
	RecordIntegrationError(service string)
	RecordNotification(sent bool)
}
