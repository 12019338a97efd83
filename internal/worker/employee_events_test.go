package worker

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/event"
	"github.com/oksasatya/go-ddd-employee-service/internal/infrastructure/messaging"
	"github.com/oksasatya/go-ddd-employee-service/pkg/helpers"
)

type fakeIndexer struct {
	indexed []entity.Employee
	deleted []int64
	err     error
}

func (f *fakeIndexer) Index(_ context.Context, e entity.Employee) error {
	f.indexed = append(f.indexed, e)
	return f.err
}

func (f *fakeIndexer) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type sentMail struct {
	To, Subject, Text, HTML string
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) Send(_ context.Context, to, subject, text, html string) error {
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Text: text, HTML: html})
	return nil
}

type ackRecorder struct {
	acks     []uint64
	nacks    []uint64
	requeued []bool
}

func (a *ackRecorder) Ack(tag uint64, _ bool) error {
	a.acks = append(a.acks, tag)
	return nil
}

func (a *ackRecorder) Nack(tag uint64, _ bool, requeue bool) error {
	a.nacks = append(a.nacks, tag)
	a.requeued = append(a.requeued, requeue)
	return nil
}

func (a *ackRecorder) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func devang() *entity.Employee {
	return &entity.Employee{ID: 1, FirstName: "Devang", LastName: "Chauhan", Email: "devang@gmail.com"}
}

func newHandler() (*EmployeeEventHandler, *fakeIndexer, *fakeMailer) {
	idx := &fakeIndexer{}
	mail := &fakeMailer{}
	return &EmployeeEventHandler{
		Indexer:     idx,
		Mailer:      mail,
		CompanyName: "Acme",
		Logger:      helpers.NewDiscardLogger(),
	}, idx, mail
}

func TestEmployeeEventHandler_Created(t *testing.T) {
	h, idx, mail := newHandler()

	err := h.Handle(context.Background(), event.New(event.EmployeeCreated, 1, devang()))
	require.NoError(t, err)

	require.Len(t, idx.indexed, 1)
	assert.Equal(t, "devang@gmail.com", idx.indexed[0].Email)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "devang@gmail.com", mail.sent[0].To)
	assert.Equal(t, "Welcome to Acme, Devang!", mail.sent[0].Subject)
}

func TestEmployeeEventHandler_UpdatedSendsNoMail(t *testing.T) {
	h, idx, mail := newHandler()

	require.NoError(t, h.Handle(context.Background(), event.New(event.EmployeeUpdated, 1, devang())))

	assert.Len(t, idx.indexed, 1)
	assert.Empty(t, mail.sent)
}

func TestEmployeeEventHandler_Deleted(t *testing.T) {
	h, idx, _ := newHandler()

	require.NoError(t, h.Handle(context.Background(), event.New(event.EmployeeDeleted, 4, nil)))

	assert.Equal(t, []int64{4}, idx.deleted)
}

func TestEmployeeEventHandler_MailDisabled(t *testing.T) {
	h, idx, _ := newHandler()
	h.Mailer = nil

	require.NoError(t, h.Handle(context.Background(), event.New(event.EmployeeCreated, 1, devang())))
	assert.Len(t, idx.indexed, 1)
}

func TestEmployeeEventHandler_CreatedWithoutEmployee(t *testing.T) {
	h, _, _ := newHandler()

	err := h.Handle(context.Background(), event.New(event.EmployeeCreated, 1, nil))
	assert.Error(t, err)
}

func TestEmployeeEventHandler_Consume(t *testing.T) {
	h, idx, _ := newHandler()
	acks := &ackRecorder{}

	good, err := messaging.NewMessage(event.New(event.EmployeeUpdated, 1, devang()))
	require.NoError(t, err)

	msgs := make(chan amqp.Delivery, 2)
	msgs <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 1, Body: good.Body}
	msgs <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 2, Body: []byte("garbage")}
	close(msgs)

	done := make(chan struct{})
	go func() {
		h.Consume(context.Background(), msgs)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consume did not return")
	}

	assert.Equal(t, []uint64{1}, acks.acks)
	assert.Equal(t, []uint64{2}, acks.nacks)
	assert.Equal(t, []bool{false}, acks.requeued)
	assert.Len(t, idx.indexed, 1)
}

func TestEmployeeEventHandler_Consume_RequeuesOnce(t *testing.T) {
	h, idx, _ := newHandler()
	idx.err = errors.New("es unavailable")
	acks := &ackRecorder{}

	msg, err := messaging.NewMessage(event.New(event.EmployeeDeleted, 2, nil))
	require.NoError(t, err)

	msgs := make(chan amqp.Delivery, 2)
	msgs <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 1, Body: msg.Body}
	msgs <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 2, Body: msg.Body, Redelivered: true}
	close(msgs)

	h.Consume(context.Background(), msgs)

	assert.Empty(t, acks.acks)
	assert.Equal(t, []bool{true, false}, acks.requeued)
}

func TestEmployeeEventHandler_Consume_StopsOnCancel(t *testing.T) {
	h, _, _ := newHandler()
	ctx, cancel := context.WithCancel(context.Background())
	msgs := make(chan amqp.Delivery)

	done := make(chan struct{})
	go func() {
		h.Consume(ctx, msgs)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consume ignored cancellation")
	}
}
