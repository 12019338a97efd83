package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-employee-service/internal/domain/repository"
)

const employeeColumns = `id, first_name, last_name, email`

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func (r *EmployeeRepository) Save(ctx context.Context, e *entity.Employee) error {
	if e.IsNew() {
		return r.insert(ctx, e)
	}
	return r.update(ctx, e)
}

func (r *EmployeeRepository) insert(ctx context.Context, e *entity.Employee) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO employees (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`, e.FirstName, e.LastName, e.Email)

	if err := row.Scan(&e.ID); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return errors.Wrap(err, "insert employee")
	}
	return nil
}

func (r *EmployeeRepository) update(ctx context.Context, e *entity.Employee) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3
		WHERE id = $4
	`, e.FirstName, e.LastName, e.Email, e.ID)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return errors.Wrapf(err, "update employee %d", e.ID)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]entity.Employee, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "select employees")
	}
	defer rows.Close()

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
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email)
}

func (r *EmployeeRepository) FindByFirstAndLastName(ctx context.Context, firstName, lastName string) (*entity.Employee, error) {
	return r.findOne(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE first_name = $1 AND last_name = $2
		ORDER BY id
		LIMIT 1
	`, firstName, lastName)
}

func (r *EmployeeRepository) FindByFirstAndLastNameNamed(ctx context.Context, firstName, lastName string) (*entity.Employee, error) {
	return r.findOne(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE first_name = @firstName AND last_name = @lastName
		ORDER BY id
		LIMIT 1
	`, pgx.NamedArgs{"firstName": firstName, "lastName": lastName})
}

func (r *EmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return errors.Wrapf(err, "delete employee %d", id)
	}
	return nil
}

func (r *EmployeeRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Employee, error) {
	e := &entity.Employee{}
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "select employee")
	}
	return e, nil
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
