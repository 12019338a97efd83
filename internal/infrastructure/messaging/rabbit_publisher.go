package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/event"
)

// RabbitPublisher wraps an AMQP channel and queue for publishing employee events.
type RabbitPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "amqp dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "amqp channel")
	}
	if err := DeclareQueue(ch, queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &RabbitPublisher{conn: conn, ch: ch, Queue: queue}, nil
}

// DeclareQueue declares the durable events queue shared by publisher and worker.
func DeclareQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	return errors.Wrapf(err, "declare queue %s", queue)
}

func (p *RabbitPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Publish sends evt as a persistent JSON message on the default exchange.
func (p *RabbitPublisher) Publish(ctx context.Context, evt event.EmployeeEvent) error {
	msg, err := NewMessage(evt)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		msg,
	)
}

// NewMessage encodes evt the way the event worker expects it.
func NewMessage(evt event.EmployeeEvent) (amqp.Publishing, error) {
	b, err := json.Marshal(evt)
	if err != nil {
		return amqp.Publishing{}, errors.Wrap(err, "encode employee event")
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(evt.Type),
		Timestamp:    time.Now().UTC(),
		Body:         b,
	}, nil
}

// DecodeEvent is the inverse of NewMessage.
func DecodeEvent(body []byte) (event.EmployeeEvent, error) {
	var evt event.EmployeeEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return evt, errors.Wrap(err, "decode employee event")
	}
	if evt.Type == "" || evt.EmployeeID == 0 {
		return evt, errors.New("employee event missing type or id")
	}
	return evt, nil
}
