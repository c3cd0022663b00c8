package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// HTTPNotifier entrega o comprovante ao serviço de notificações.
type HTTPNotifier struct {
	url    string
	http   *http.Client
	logger *zap.Logger
}

func NewHTTPNotifier(url string, httpClient *http.Client, logger *zap.Logger) *HTTPNotifier {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPNotifier{url: url, http: httpClient, logger: logger}
}

// SendPaymentReceipt nunca devolve erro: qualquer falha vira false e log.
func (n *HTTPNotifier) SendPaymentReceipt(ctx context.Context, to string, invoiceID any, chargeData map[string]any) bool {
	receipt, err := BuildReceipt(to, invoiceID, chargeData)
	if err != nil {
		n.logger.Error("erro ao montar comprovante", zap.Error(err))
		return false
	}

	body, err := json.Marshal(notificationRequest{
		Recipient: receipt.Recipient,
		Message:   receipt.Message,
		Subject:   receipt.Subject,
	})
	if err != nil {
		n.logger.Error("erro ao gerar json da notificação", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("erro ao conectar com o serviço de notificações", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		n.logger.Error("erro ao conectar com o serviço de notificações", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		n.logger.Error("erro ao enviar a notificação",
			zap.Int("status", resp.StatusCode),
			zap.String("response", strings.TrimSpace(string(raw))),
		)
		return false
	}

	n.logger.Info("notificação de pagamento enviada", zap.String("recipient", to))
	return true
}
