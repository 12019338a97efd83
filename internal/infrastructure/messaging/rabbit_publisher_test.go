package messaging

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/event"
)

func TestNewMessage(t *testing.T) {
	e := &entity.Employee{ID: 3, FirstName: "Devang", LastName: "Chauhan", Email: "devang@gmail.com"}
	msg, err := NewMessage(event.New(event.EmployeeCreated, e.ID, e))
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "employee.created", msg.Type)

	got, err := DecodeEvent(msg.Body)
	require.NoError(t, err)
	assert.Equal(t, event.EmployeeCreated, got.Type)
	assert.Equal(t, e, got.Employee)
}

func TestDecodeEvent_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":   `{`,
		"no type":    `{"employee_id":1}`,
		"no id":      `{"type":"employee.deleted"}`,
		"empty body": `{}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEvent([]byte(body))
			assert.Error(t, err)
		})
	}
}
