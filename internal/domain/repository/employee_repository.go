package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
)

var (
	// ErrNotFound is returned by finders when no employee matches.
	ErrNotFound = errors.New("employee not found")
	// ErrDuplicateEmail is returned when the store rejects a second record with the same email.
	ErrDuplicateEmail = errors.New("duplicate employee email")
)

// EmployeeRepository defines the interface for employee-related database operations.
type EmployeeRepository interface {
	// Save inserts e when it has no ID yet and fills e.ID, otherwise replaces the stored record.
	Save(ctx context.Context, e *entity.Employee) error
	FindAll(ctx context.Context) ([]entity.Employee, error)
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)
	// FindByFirstAndLastName uses positional query parameters.
	FindByFirstAndLastName(ctx context.Context, firstName, lastName string) (*entity.Employee, error)
	// FindByFirstAndLastNameNamed uses named query parameters.
	FindByFirstAndLastNameNamed(ctx context.Context, firstName, lastName string) (*entity.Employee, error)
	// DeleteByID is a no-op for unknown ids.
	DeleteByID(ctx context.Context, id int64) error
}
