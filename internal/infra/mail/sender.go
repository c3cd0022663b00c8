package mail

import (
	"context"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier manda o comprovante direto por SMTP, sem o serviço de
// notificações no meio.
type SMTPNotifier struct {
	from   string
	dialer dialer
	logger *zap.Logger
}

func NewSMTPNotifier(cfg SMTPConfig, logger *zap.Logger) *SMTPNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPNotifier{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		logger: logger,
	}
}

func (s *SMTPNotifier) SendPaymentReceipt(ctx context.Context, to string, invoiceID any, chargeData map[string]any) bool {
	receipt, err := BuildReceipt(to, invoiceID, chargeData)
	if err != nil {
		s.logger.Error("erro ao montar comprovante", zap.Error(err))
		return false
	}

	if err := ctx.Err(); err != nil {
		s.logger.Error("envio de email cancelado", zap.Error(err))
		return false
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", receipt.Recipient)
	m.SetHeader("Subject", receipt.Subject)
	m.SetBody("text/plain", receipt.Message)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("erro ao enviar email SMTP", zap.String("recipient", to), zap.Error(err))
		return false
	}

	s.logger.Info("comprovante enviado por SMTP", zap.String("recipient", to))
	return true
}
