package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/epayco-charge/internal/entity"
	"github.com/xavierca1/epayco-charge/internal/infra/integration/billing"
	"github.com/xavierca1/epayco-charge/internal/infra/integration/epayco"
	"github.com/xavierca1/epayco-charge/internal/infra/queue"
)

const (
	MsgIncompleteData     = "Datos incompletos"
	DetailsIncompleteData = "Se requieren los datos de tarjeta, cliente y cuota"
	MsgTokenRejected      = "Error al generar el token"
	MsgCustomerRejected   = "Error al crear el cliente"
	MsgChargeRejected     = "Error en el cargo"
	MsgInvoiceFailed      = "Error al crear la factura"
	MsgSuccess            = "Pago procesado exitosamente"

	serviceEpayco  = "epayco"
	serviceBilling = "ms-negocio"
)

func NewProcessChargeUseCase(
	gateway PaymentGateway,
	billingService InvoiceService,
	notifier Notifier,
	events EventPublisher,
	metrics MetricsRecorder,
	callbacks CallbackURLs,
	logger *zap.Logger,
) *ProcessChargeUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProcessChargeUseCase{
		Gateway:   gateway,
		Billing:   billingService,
		Notifier:  notifier,
		Events:    events,
		Metrics:   metrics,
		Callbacks: callbacks,
		Logger:    logger,
		newID:     func() string { return uuid.New().String() },
		now:       time.Now,
	}
}

// ProcessChargeUseCase executa token -> cliente -> cargo -> fatura ->
// notificação, parando no primeiro passo que falhar. Nada é desfeito: um
// cargo aprovado cuja fatura falhou só gera o evento charge.unreconciled.
type ProcessChargeUseCase struct {
	Gateway   PaymentGateway
	Billing   InvoiceService
	Notifier  Notifier
	Events    EventPublisher  // opcional
	Metrics   MetricsRecorder // opcional
	Callbacks CallbackURLs
	Logger    *zap.Logger

	newID func() string
	now   func() time.Time
}

func (uc *ProcessChargeUseCase) Execute(ctx context.Context, input ProcessChargeInput) (*ProcessChargeOutput, error) {
	reference := uc.newID()
	log := uc.Logger.With(zap.String("reference", reference))
	req := input.Request

	if missing := ValidateChargeRequest(req); len(missing) > 0 {
		fields := make([]string, 0, len(missing))
		for _, m := range missing {
			fields = append(fields, m.Field)
		}
		log.Warn("dados incompletos", zap.Strings("missing", fields))
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: MsgIncompleteData,
			Details: DetailsIncompleteData,
		}
	}

	// 1. Token do cartão
	token, err := uc.Gateway.CreateToken(ctx, *req.Card)
	if err != nil {
		uc.integrationError(serviceEpayco)
		return nil, fmt.Errorf("falha ao tokenizar cartão: %w", err)
	}
	if !token.Status() {
		log.Warn("epayco recusou o token", zap.Any("response", token))
		return nil, &DomainError{Code: CodeTokenRejected, Message: MsgTokenRejected, Details: token}
	}
	tokenID := token.ID()
	if tokenID == "" {
		return nil, errors.New("resposta do token sem id")
	}

	// 2. Cliente vinculado ao token
	customer, err := uc.Gateway.CreateCustomer(ctx, epayco.CustomerInput{
		TokenCard: tokenID,
		Name:      req.Customer.Name.String(),
		LastName:  req.Customer.LastName.String(),
		Email:     req.Customer.Email.String(),
		Phone:     req.Customer.Phone.String(),
		Default:   true,
	})
	if err != nil {
		uc.integrationError(serviceEpayco)
		return nil, fmt.Errorf("falha ao criar cliente: %w", err)
	}
	if !customer.Status() {
		log.Warn("epayco recusou o cliente", zap.Any("response", customer))
		return nil, &DomainError{Code: CodeCustomerRejected, Message: MsgCustomerRejected, Details: customer}
	}
	customerID, ok := customer.CustomerID()
	if !ok {
		return nil, errors.New("resposta do cliente sem data.customerId")
	}

	// 3. Payload do cargo
	info, err := uc.buildPaymentInfo(req, tokenID, customerID, input.ClientIP)
	if err != nil {
		return nil, err
	}

	// 4. Cargo
	charge, err := uc.Gateway.CreateCharge(ctx, info)
	if err != nil {
		uc.integrationError(serviceEpayco)
		return nil, fmt.Errorf("falha ao executar cargo: %w", err)
	}
	if !charge.Status() {
		log.Warn("epayco recusou o cargo", zap.Any("response", charge))
		return nil, &DomainError{Code: CodeChargeRejected, Message: MsgChargeRejected, Details: charge}
	}
	log.Info("cargo aprovado", zap.Int64("value", info.Value), zap.Any("due_id", req.Due.ID))

	// Cliente já cobrado: fatura, notificação e eventos seguem mesmo se o
	// chamador desconectar. O limite passa a ser só o timeout do http.Client.
	ctx = context.WithoutCancel(ctx)

	// 5. Fatura no ms-negocio
	factura, err := uc.Billing.CreateInvoice(ctx, entity.Invoice{
		Detalle: info.Description,
		IDCuota: req.Due.ID,
	}, reference)
	if err != nil {
		uc.integrationError(serviceBilling)
		log.Error("cargo aprovado mas fatura não criada", zap.Error(err))

		event := uc.newEvent(queue.EventChargeUnreconciled, reference, req, info, charge)
		event.Error = err.Error()

		var statusErr *billing.StatusError
		if errors.As(err, &statusErr) {
			event.InvoiceStatus = statusErr.StatusCode
			event.Invoice = statusErr.Body
			uc.publish(ctx, log, event)
			return nil, &TechnicalError{Code: CodeInvoiceFailed, Message: MsgInvoiceFailed, Details: statusErr.Body}
		}

		uc.publish(ctx, log, event)
		return nil, fmt.Errorf("falha ao criar factura: %w", err)
	}

	// 6. Notificação (nunca derruba o fluxo)
	emailSent := uc.Notifier.SendPaymentReceipt(ctx, req.Customer.Email.String(), factura["id"], charge.Data())
	if uc.Metrics != nil {
		uc.Metrics.RecordNotification(emailSent)
	}
	if !emailSent {
		log.Warn("pagamento processado sem email de confirmação")
	}

	event := uc.newEvent(queue.EventChargeCompleted, reference, req, info, charge)
	event.Invoice = factura
	uc.publish(ctx, log, event)

	return &ProcessChargeOutput{
		Message:        MsgSuccess,
		EmailSent:      emailSent,
		PaymentDetails: charge["data"],
		Factura:        factura,
	}, nil
}

func (uc *ProcessChargeUseCase) buildPaymentInfo(req *entity.ChargeRequest, tokenID, customerID, clientIP string) (entity.PaymentInfo, error) {
	value, err := toInt("due.valor", req.Due.Valor)
	if err != nil {
		return entity.PaymentInfo{}, err
	}
	tax, err := intOrDefault("tax", req.Tax, int64(0))
	if err != nil {
		return entity.PaymentInfo{}, err
	}
	taxBase, err := intOrDefault("tax_base", req.TaxBase, req.Due.Valor)
	if err != nil {
		return entity.PaymentInfo{}, err
	}
	dues, err := intOrDefault("dues", req.Dues, int64(1))
	if err != nil {
		return entity.PaymentInfo{}, err
	}

	description := fmt.Sprintf("Pago de cuota #%s", scalarString(req.Due.ID))
	if req.Description != nil {
		description = string(*req.Description)
	}

	return entity.PaymentInfo{
		TokenCard:              tokenID,
		CustomerID:             customerID,
		DocType:                entity.DefaultDocType,
		DocNumber:              req.Customer.DocNumber.String(),
		Name:                   req.Customer.Name.String(),
		LastName:               req.Customer.LastName.String(),
		Email:                  req.Customer.Email.String(),
		Bill:                   req.Due.IDServicio,
		Description:            description,
		Value:                  value,
		Tax:                    tax,
		TaxBase:                taxBase,
		Currency:               entity.DefaultCurrency,
		Dues:                   dues,
		IP:                     clientIP,
		URLResponse:            uc.Callbacks.Response,
		URLConfirmation:        uc.Callbacks.Confirmation,
		MethodConfirmation:     entity.DefaultMethodConfirmation,
		UseDefaultCardCustomer: true,
	}, nil
}

func (uc *ProcessChargeUseCase) newEvent(kind, reference string, req *entity.ChargeRequest, info entity.PaymentInfo, charge epayco.Response) queue.ChargeEvent {
	return queue.ChargeEvent{
		ID:         uc.newID(),
		Type:       kind,
		Reference:  reference,
		DueID:      req.Due.ID,
		Email:      info.Email,
		Value:      info.Value,
		Charge:     charge.Data(),
		OccurredAt: uc.now().UTC(),
	}
}

func (uc *ProcessChargeUseCase) publish(ctx context.Context, log *zap.Logger, event queue.ChargeEvent) {
	if uc.Events == nil {
		return
	}
	if err := uc.Events.PublishChargeEvent(ctx, event); err != nil {
		uc.integrationError("rabbitmq")
		log.Error("falha ao publicar evento de cargo", zap.String("type", event.Type), zap.Error(err))
	}
}

func (uc *ProcessChargeUseCase) integrationError(service string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordIntegrationError(service)
	}
}

func scalarString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
