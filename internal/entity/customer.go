package entity

// Customer é o titular do cartão, como chega no corpo do /charge.
type Customer struct {
	Name      FlexString `json:"name"`
	LastName  FlexString `json:"last_name"`
	Email     FlexString `json:"email"`
	Phone     FlexString `json:"phone"`
	DocNumber FlexString `json:"doc_number"`
}

// IsEmpty trata `{}` como cliente ausente.
func (c *Customer) IsEmpty() bool {
	return c == nil || *c == Customer{}
}
