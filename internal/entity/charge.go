package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ChargeRequest é o corpo aceito pelo POST /charge.
type ChargeRequest struct {
	Card     *Card     `json:"card"`
	Customer *Customer `json:"customer"`
	Due      *Due      `json:"due"`

	// Opcionais. Chegam como string ou número e são convertidos para inteiro
	// só na montagem do PaymentInfo. Description nil (ausente ou null) usa o
	// padrão; "" é mantido.
	Description *FlexString `json:"description,omitempty"`
	Tax         any         `json:"tax,omitempty"`
	TaxBase     any         `json:"tax_base,omitempty"`
	Dues        any         `json:"dues,omitempty"`
}

type Card struct {
	Number   FlexString `json:"number"`
	ExpMonth FlexString `json:"exp_month"`
	ExpYear  FlexString `json:"exp_year"`
	CVC      FlexString `json:"cvc"`
}

func (c *Card) IsEmpty() bool {
	return c == nil || *c == Card{}
}

// Due é a cuota sendo paga. ID e IDServicio são repassados sem conversão
// para o gateway e para o ms-negocio.
type Due struct {
	ID         any `json:"id"`
	IDServicio any `json:"id_servicio"`
	Valor      any `json:"valor"`
}

func (d *Due) IsEmpty() bool {
	return d == nil || (d.ID == nil && d.IDServicio == nil && d.Valor == nil)
}

// HasRequiredData reporta se card, customer e due vieram preenchidos.
func (r *ChargeRequest) HasRequiredData() bool {
	return r != nil && !r.Card.IsEmpty() && !r.Customer.IsEmpty() && !r.Due.IsEmpty()
}

// FlexString aceita tanto "4575623182290326" quanto 4575623182290326.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexString(num.String())
	return nil
}

func (s FlexString) String() string {
	return strings.TrimSpace(string(s))
}
