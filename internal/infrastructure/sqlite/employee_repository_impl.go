package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/repository"
)

const employeeColumns = `id, first_name, last_name, email`

// EmployeeRepository stores employees in an embedded SQLite database.
type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Save(ctx context.Context, e *entity.Employee) error {
	if e.IsNew() {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO employees (first_name, last_name, email) VALUES (?, ?, ?)`,
			e.FirstName, e.LastName, e.Email)
		if err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrDuplicateEmail
			}
			return errors.Wrap(err, "insert employee")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return errors.Wrap(err, "last insert id")
		}
		e.ID = id
		return nil
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET first_name = ?, last_name = ?, email = ? WHERE id = ?`,
		e.FirstName, e.LastName, e.Email, e.ID)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return errors.Wrapf(err, "update employee %d", e.ID)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]entity.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "select employees")
	}
	defer func() { _ = rows.Close() }()

	out := make([]entity.Employee, 0)
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
			return nil, errors.Wrap(err, "scan employee")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate employees")
	}
	return out, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = ?`, email)
}

func (r *EmployeeRepository) FindByFirstAndLastName(ctx context.Context, firstName, lastName string) (*entity.Employee, error) {
	return r.findOne(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE first_name = ?1 AND last_name = ?2
		ORDER BY id
		LIMIT 1
	`, firstName, lastName)
}

func (r *EmployeeRepository) FindByFirstAndLastNameNamed(ctx context.Context, firstName, lastName string) (*entity.Employee, error) {
	return r.findOne(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE first_name = :firstName AND last_name = :lastName
		ORDER BY id
		LIMIT 1
	`, sql.Named("firstName", firstName), sql.Named("lastName", lastName))
}

func (r *EmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id); err != nil {
		return errors.Wrapf(err, "delete employee %d", id)
	}
	return nil
}

func (r *EmployeeRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Employee, error) {
	e := &entity.Employee{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "select employee")
	}
	return e, nil
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
