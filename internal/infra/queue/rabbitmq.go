package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName  = "ex.whatsapp"
	DLXName       = "ex.whatsapp.dlx" // Dead Letter Exchange
	OutboundQueue = "q.whatsapp.outbound"
	OutboundDLQ   = "q.whatsapp.outbound.dlq"
	DeliveryQueue = "q.whatsapp.deliveries"

	OutboundRoutingKey = "k.outbound"
	DeliveryRoutingKey = "k.delivery"
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
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func (r *RabbitMQ) Close() {
	if r.Ch != nil {
		r.Ch.Close()
	}
	if r.Conn != nil {
		r.Conn.Close()
	}
}

// channel is the subset of *amqp.Channel used to declare the topology.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
}

func setupTopology(ch channel) error {
	if err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(OutboundDLQ, true, false, false, false, nil); err != nil {
		return err
	}
	if err := ch.QueueBind(OutboundDLQ, OutboundRoutingKey, DLXName, false, nil); err != nil {
		return err
	}

	if err := ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil); err != nil {
		return err
	}

	// Nack sem requeue manda o comando para a DLQ
	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName,
		"x-dead-letter-routing-key": OutboundRoutingKey,
	}
	if _, err := ch.QueueDeclare(OutboundQueue, true, false, false, false, args); err != nil {
		return err
	}
	if err := ch.QueueBind(OutboundQueue, OutboundRoutingKey, ExchangeName, false, nil); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(DeliveryQueue, true, false, false, false, nil); err != nil {
		return err
	}
	return ch.QueueBind(DeliveryQueue, DeliveryRoutingKey, ExchangeName, false, nil)
}
