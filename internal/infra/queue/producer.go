package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventChargeCompleted    = "charge.completed"
	EventChargeUnreconciled = "charge.unreconciled"
)

// ChargeEvent descreve o desfecho de um cargo aprovado pelo gateway.
// charge.unreconciled significa: cliente cobrado, fatura não criada.
type ChargeEvent struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	Reference     string         `json:"reference"`
	DueID         any            `json:"due_id"`
	Email         string         `json:"email"`
	Value         int64          `json:"value"`
	Charge        map[string]any `json:"charge"`
	Invoice       any            `json:"invoice,omitempty"`
	InvoiceStatus int            `json:"invoice_status,omitempty"`
	Error         string         `json:"error,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch publisher
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishChargeEvent(ctx context.Context, event ChargeEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter evento: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		event.Type, // routing key == tipo do evento
		false,      // Mandatory
		false,      // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         event.Type,
			Timestamp:    event.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
