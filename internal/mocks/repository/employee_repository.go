// Package repository holds testify mocks for the domain repositories.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	domainrepo "github.com/oksasatya/go-ddd-employee-service/internal/domain/repository"
)

type MockEmployeeRepository struct {
	mock.Mock
}

// NewMockEmployeeRepository registers AssertExpectations on test cleanup.
func NewMockEmployeeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEmployeeRepository {
	m := &MockEmployeeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEmployeeRepository) Save(ctx context.Context, e *entity.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context) ([]entity.Employee, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entity.Employee)
	return list, args.Error(1)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*entity.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	args := m.Called(ctx, email)
	e, _ := args.Get(0).(*entity.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) FindByFirstAndLastName(ctx context.Context, firstName, lastName string) (*entity.Employee, error) {
	args := m.Called(ctx, firstName, lastName)
	e, _ := args.Get(0).(*entity.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) FindByFirstAndLastNameNamed(ctx context.Context, firstName, lastName string) (*entity.Employee, error) {
	args := m.Called(ctx, firstName, lastName)
	e, _ := args.Get(0).(*entity.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ domainrepo.EmployeeRepository = (*MockEmployeeRepository)(nil)
