package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.payments"
	DLXName      = "ex.payments.dlx" // Dead Letter Exchange

	UnreconciledQueue = "q.charges.unreconciled"
	UnreconciledDLQ   = "q.charges.unreconciled.dlq"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("falha ao abrir canal: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("falha ao declarar topologia: %w", err)
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

// setupTopology declara o exchange de eventos de cargo. Só os cargos sem
// fatura ganham fila própria; charge.completed fica para quem quiser assinar.
func setupTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(UnreconciledDLQ, true, false, false, false, nil); err != nil {
		return err
	}

	if err := ch.QueueBind(UnreconciledDLQ, EventChargeUnreconciled, DLXName, false, nil); err != nil {
		return err
	}

	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		return err
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName,
		"x-dead-letter-routing-key": EventChargeUnreconciled,
	}

	if _, err := ch.QueueDeclare(UnreconciledQueue, true, false, false, false, args); err != nil {
		return err
	}

	return ch.QueueBind(UnreconciledQueue, EventChargeUnreconciled, ExchangeName, false, nil)
}

func (r *RabbitMQ) Close() {
	if r.Ch != nil {
		r.Ch.Close()
	}
	if r.Conn != nil {
		r.Conn.Close()
	}
}
