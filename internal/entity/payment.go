package entity

const (
	DefaultCurrency           = "COP"
	DefaultDocType            = "CC"
	DefaultMethodConfirmation = "GET"
)

// PaymentInfo é o payload enviado ao gateway para executar o cargo.
type PaymentInfo struct {
	TokenCard              string `json:"token_card"`
	CustomerID             string `json:"customer_id"`
	DocType                string `json:"doc_type"`
	DocNumber              string `json:"doc_number"`
	Name                   string `json:"name"`
	LastName               string `json:"last_name"`
	Email                  string `json:"email"`
	Bill                   any    `json:"bill"`
	Description            string `json:"description"`
	Value                  int64  `json:"value"`
	Tax                    int64  `json:"tax"`
	TaxBase                int64  `json:"tax_base"`
	Currency               string `json:"currency"`
	Dues                   int64  `json:"dues"`
	IP                     string `json:"ip"`
	URLResponse            string `json:"url_response"`
	URLConfirmation        string `json:"url_confirmation"`
	MethodConfirmation     string `json:"method_confirmation"`
	UseDefaultCardCustomer bool   `json:"use_default_card_customer"`
}

// Invoice é o registro criado no ms-negocio depois do cargo aprovado.
type Invoice struct {
	Detalle string `json:"detalle"`
	IDCuota any    `json:"id_cuota"`
}
