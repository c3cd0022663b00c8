package epayco

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

const (
	DefaultBaseURL = "https://api.secure.payco.co"

	tokenPath    = "/v1/tokens"
	customerPath = "/payment/v1/customer/create"
	chargePath   = "/payment/v1/charge/create"
)

type Client struct {
	opts Options
	http *http.Client
}

func NewClient(opts Options, httpClient *http.Client) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{opts: opts, http: httpClient}
}

// CreateToken tokeniza o cartão. O token só vale para a cadeia atual.
func (c *Client) CreateToken(ctx context.Context, card entity.Card) (Response, error) {
	payload := createTokenRequest{
		Number:   card.Number.String(),
		ExpYear:  card.ExpYear.String(),
		ExpMonth: card.ExpMonth.String(),
		CVC:      card.CVC.String(),
	}
	return c.post(ctx, tokenPath, payload)
}

// CreateCustomer vincula o token a um cliente no ePayco.
func (c *Client) CreateCustomer(ctx context.Context, input CustomerInput) (Response, error) {
	payload := createCustomerRequest{
		TokenCard: input.TokenCard,
		Name:      input.Name,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Default:   input.Default,
	}
	return c.post(ctx, customerPath, payload)
}

// CreateCharge executa o cargo com o token e o cliente já criados.
func (c *Client) CreateCharge(ctx context.Context, info entity.PaymentInfo) (Response, error) {
	return c.post(ctx, chargePath, info)
}

func (c *Client) post(ctx context.Context, path string, payload any) (Response, error) {
	// 1. Struct -> map para anexar as flags do SDK
	body, err := c.withOptions(payload)
	if err != nil {
		return nil, err
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json epayco: %w", err)
	}

	// 2. Cria Request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	// 3. Envia
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com epayco: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta epayco: %w", err)
	}

	// 4. Decodifica. Recusas também vêm como JSON com status=false, então o
	// status HTTP não decide nada aqui.
	var response Response
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&response); err != nil {
		return nil, fmt.Errorf("resposta inválida do epayco (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if response == nil {
		response = Response{}
	}

	return response, nil
}

func (c *Client) withOptions(payload any) (map[string]any, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter payload epayco: %w", err)
	}

	body := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("erro ao converter payload epayco: %w", err)
	}

	body["test"] = c.opts.Test
	body["lenguage"] = c.opts.Language
	return body, nil
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.SetBasicAuth(c.opts.PublicKey, c.opts.PrivateKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("type", "sdk")
	req.Header.Set("lang", "GO")
}
