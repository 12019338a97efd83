package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/event"
	repo "github.com/oksasatya/go-ddd-employee-service/internal/domain/repository"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee already exists with given email")
)

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

// EventPublisher delivers employee lifecycle events to other processes.
type EventPublisher interface {
	Publish(ctx context.Context, evt event.EmployeeEvent) error
}

// EmployeeSearcher answers free-text queries over employees.
type EmployeeSearcher interface {
	Search(ctx context.Context, q string, size int) ([]entity.Employee, error)
}

type Service struct {
	Repo      repo.EmployeeRepository
	Publisher EventPublisher
	Searcher  EmployeeSearcher
	Logger    *logrus.Logger
}

// NewService wires the employee service. publisher and searcher may be nil.
func NewService(repo repo.EmployeeRepository, publisher EventPublisher, searcher EmployeeSearcher, logger *logrus.Logger) *Service {
	return &Service{
		Repo:      repo,
		Publisher: publisher,
		Searcher:  searcher,
		Logger:    logger,
	}
}

// SaveEmployee creates e after checking that no employee uses its email yet.
// The check is read-then-write; the store's unique constraint catches concurrent creates.
func (s *Service) SaveEmployee(ctx context.Context, e *entity.Employee) (*entity.Employee, error) {
	_, err := s.Repo.FindByEmail(ctx, e.Email)
	switch {
	case err == nil:
		return nil, conflict(e.Email)
	case !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	if err := s.Repo.Save(ctx, e); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, conflict(e.Email)
		}
		return nil, err
	}
	s.publish(ctx, event.New(event.EmployeeCreated, e.ID, e))
	return e, nil
}

func (s *Service) GetAllEmployees(ctx context.Context) ([]entity.Employee, error) {
	list, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.Employee{}
	}
	return list, nil
}

// GetEmployeeByID returns ErrEmployeeNotFound when no employee has the id.
func (s *Service) GetEmployeeByID(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

// UpdateEmployee saves e as is. Callers check existence and carry the id over.
func (s *Service) UpdateEmployee(ctx context.Context, e *entity.Employee) (*entity.Employee, error) {
	if err := s.Repo.Save(ctx, e); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, conflict(e.Email)
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	s.publish(ctx, event.New(event.EmployeeUpdated, e.ID, e))
	return e, nil
}

// DeleteEmployee removes the employee if present; unknown ids are not an error.
func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, event.New(event.EmployeeDeleted, id, nil))
	return nil
}

// SearchEmployees queries the search index; without one it returns no results.
func (s *Service) SearchEmployees(ctx context.Context, q string, size int) ([]entity.Employee, error) {
	if s.Searcher == nil {
		return []entity.Employee{}, nil
	}
	if size <= 0 || size > maxSearchSize {
		size = defaultSearchSize
	}
	return s.Searcher.Search(ctx, q, size)
}

func (s *Service) publish(ctx context.Context, evt event.EmployeeEvent) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, evt); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{
			"event":       evt.Type,
			"employee_id": evt.EmployeeID,
		}).Warn("publish employee event failed")
	}
}

func conflict(email string) error {
	return fmt.Errorf("%w: %s", ErrEmployeeExists, email)
}
