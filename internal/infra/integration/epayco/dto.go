package epayco

import (
	"encoding/json"
	"fmt"
)

// Options são as credenciais e flags do SDK, lidas uma vez no boot.
type Options struct {
	PublicKey  string
	PrivateKey string
	Test       bool
	Language   string
	BaseURL    string
}

type CustomerInput struct {
	TokenCard string
	Name      string
	LastName  string
	Email     string
	Phone     string
	Default   bool
}

// --- PAYLOADS: o que mandamos pro ePayco ---

type createTokenRequest struct {
	Number   string `json:"card[number]"`
	ExpYear  string `json:"card[exp_year]"`
	ExpMonth string `json:"card[exp_month]"`
	CVC      string `json:"card[cvc]"`
}

type createCustomerRequest struct {
	TokenCard string `json:"token_card"`
	Name      string `json:"name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Default   bool   `json:"default"`
}

// --- RESPONSE: o que o ePayco devolve ---

// Response é a resposta crua do gateway. Ela é devolvida ao chamador sem
// alterações quando o gateway recusa a operação.
type Response map[string]any

// Status segue a regra de verdade do SDK: ausente, false, "", 0, {} e []
// contam como recusa.
func (r Response) Status() bool {
	return truthy(r["status"])
}

// ID é o identificador do token (`id` no topo da resposta).
func (r Response) ID() string {
	return stringValue(r["id"])
}

// Data devolve o objeto `data`, ou nil se não existir.
func (r Response) Data() map[string]any {
	data, _ := r["data"].(map[string]any)
	return data
}

// CustomerID lê `data.customerId` da resposta de criação de cliente.
func (r Response) CustomerID() (string, bool) {
	v, ok := r.Data()["customerId"]
	if !ok || v == nil {
		return "", false
	}
	id := stringValue(v)
	return id, id != ""
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
