package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xavierca1/epayco-charge/internal/entity"
)

// Client fala com o ms-negocio, o sistema de registro das faturas.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// StatusError é devolvido quando o ms-negocio responde algo diferente de 200.
// Body é o JSON decodificado ou, se não for JSON, o texto cru.
type StatusError struct {
	StatusCode int
	Body       any
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ms-negocio respondeu status %d", e.StatusCode)
}

// CreateInvoice registra a fatura e devolve o corpo da resposta do ms-negocio.
func (c *Client) CreateInvoice(ctx context.Context, invoice entity.Invoice, requestID string) (map[string]any, error) {
	url := fmt.Sprintf("%s/facturas", c.baseURL)

	jsonBody, err := json.Marshal(invoice)
	if err != nil {
		return nil, fmt.Errorf("erro ao marshal factura: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request ms-negocio: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta ms-negocio: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: decodeBody(raw)}
	}

	var response map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode ms-negocio: %w", err)
	}
	if response == nil {
		response = map[string]any{}
	}

	return response, nil
}

func decodeBody(raw []byte) any {
	var body any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return body
}
