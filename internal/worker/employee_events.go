package worker

import (
	"context"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/event"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/messaging"
	mailtpl "github.com/oksasatya/go-ddd-employee-service/pkg/mailer/templates"
)

const handleTimeout = 15 * time.Second

// Indexer keeps the employee search index in sync.
type Indexer interface {
	Index(ctx context.Context, e entity.Employee) error
	Delete(ctx context.Context, id int64) error
}

// Mailer sends a rendered email.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// EmployeeEventHandler applies employee events to the search index and sends welcome mail.
// Indexer and Mailer are optional.
type EmployeeEventHandler struct {
	Indexer     Indexer
	Mailer      Mailer
	CompanyName string
	Logger      *logrus.Logger
}

func (h *EmployeeEventHandler) Handle(ctx context.Context, evt event.EmployeeEvent) error {
	switch evt.Type {
	case event.EmployeeCreated, event.EmployeeUpdated:
		if evt.Employee == nil {
			return errors.Errorf("%s event for %d has no employee", evt.Type, evt.EmployeeID)
		}
		if h.Indexer != nil {
			if err := h.Indexer.Index(ctx, *evt.Employee); err != nil {
				return err
			}
		}
		if evt.Type == event.EmployeeCreated && h.Mailer != nil {
			return h.sendWelcome(ctx, evt)
		}
		return nil
	case event.EmployeeDeleted:
		if h.Indexer != nil {
			return h.Indexer.Delete(ctx, evt.EmployeeID)
		}
		return nil
	default:
		if h.Logger != nil {
			h.Logger.WithField("event", evt.Type).Warn("unknown employee event ignored")
		}
		return nil
	}
}

func (h *EmployeeEventHandler) sendWelcome(ctx context.Context, evt event.EmployeeEvent) error {
	e := evt.Employee
	subject, text, html, err := mailtpl.Render(mailtpl.Welcome, mailtpl.WelcomeData{
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		CompanyName: h.CompanyName,
		JoinedAt:    evt.OccurredAt,
	})
	if err != nil {
		return errors.Wrap(err, "render welcome email")
	}
	return errors.Wrapf(h.Mailer.Send(ctx, e.Email, subject, text, html), "send welcome email to %s", e.Email)
}

// Consume handles deliveries until msgs is closed or ctx is done. Undecodable messages
// are dropped, handler failures are requeued once.
func (h *EmployeeEventHandler) Consume(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		var msg amqp.Delivery
		select {
		case <-ctx.Done():
			return
		case m, ok := <-msgs:
			if !ok {
				return
			}
			msg = m
		}

		evt, err := messaging.DecodeEvent(msg.Body)
		if err != nil {
			h.logWarn(err, "bad message")
			_ = msg.Nack(false, false)
			continue
		}

		c, cancel := context.WithTimeout(ctx, handleTimeout)
		err = h.Handle(c, evt)
		cancel()
		if err != nil {
			h.logWarn(err, "handle employee event failed")
			_ = msg.Nack(false, !msg.Redelivered)
			continue
		}
		_ = msg.Ack(false)
	}
}

func (h *EmployeeEventHandler) logWarn(err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).Warn(msg)
	}
}
