package mail

// ReceiptData alimenta o template do comprovante.
type ReceiptData struct {
	Bill        string
	Valor       string
	Descripcion string
	Estado      string
	Respuesta   string
}

// Receipt é a mensagem pronta para qualquer canal de envio.
type Receipt struct {
	Recipient string
	Subject   string
	Message   string
}

// notificationRequest é o contrato do serviço de notificações.
type notificationRequest struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Subject   string `json:"subject"`
}

// SMTPConfig são as credenciais do NOTIFIER_DRIVER=smtp.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
