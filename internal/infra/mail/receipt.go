package mail

import (
	"bytes"
	"fmt"
	"text/template"
)

const notAvailable = "N/A"

var receiptTemplate = template.Must(template.New("receipt").Parse(`
Gracias por tu pago. Aquí están los detalles de tu factura:

Número de factura: {{.Bill}}
Valor: {{.Valor}}
Descripción: {{.Descripcion}}
Estado: {{.Estado}}
Respuesta: {{.Respuesta}}

Si tienes alguna pregunta, no dudes en contactarnos.

Saludos,
Tu Empresa
`))

// BuildReceipt monta o comprovante a partir do `data` do cargo e do id da
// fatura criada no ms-negocio.
func BuildReceipt(to string, invoiceID any, chargeData map[string]any) (Receipt, error) {
	data := ReceiptData{
		Bill:        valueOrNA(invoiceID),
		Valor:       valueOrNA(chargeData["valor"]),
		Descripcion: valueOrNA(chargeData["descripcion"]),
		Estado:      valueOrNA(chargeData["estado"]),
		Respuesta:   valueOrNA(chargeData["respuesta"]),
	}

	var body bytes.Buffer
	if err := receiptTemplate.Execute(&body, data); err != nil {
		return Receipt{}, fmt.Errorf("erro ao processar template: %w", err)
	}

	return Receipt{
		Recipient: to,
		Subject:   fmt.Sprintf("Factura %s - Detalles del Pago", data.Bill),
		Message:   body.String(),
	}, nil
}

func valueOrNA(v any) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprint(v)
}
