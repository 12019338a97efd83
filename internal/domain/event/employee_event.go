package event

import (
	"time"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
)

// Type names an employee lifecycle change.
type Type string

const (
	EmployeeCreated Type = "employee.created"
	EmployeeUpdated Type = "employee.updated"
	EmployeeDeleted Type = "employee.deleted"
)

// EmployeeEvent is the JSON payload put on the RabbitMQ events queue.
// Employee is nil for deletions; EmployeeID is always set.
type EmployeeEvent struct {
	Type       Type             `json:"type"`
	EmployeeID int64            `json:"employee_id"`
	Employee   *entity.Employee `json:"employee,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func New(t Type, id int64, e *entity.Employee) EmployeeEvent {
	return EmployeeEvent{Type: t, EmployeeID: id, Employee: e, OccurredAt: time.Now().UTC()}
}
