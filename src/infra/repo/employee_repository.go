package repo

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"employeeapi/src/core/domain"
	"employeeapi/src/core/ports"
	"employeeapi/src/infra/db"
)

// EmployeeRepository implements ports.EmployeeRepository on PostgreSQL.
type EmployeeRepository struct {
	pg   *db.Postgres
	pool *pgxpool.Pool
	orm  *gorm.DB
	log  *slog.Logger
}

var _ ports.EmployeeRepository = (*EmployeeRepository)(nil)

// NewEmployeeRepository constructs a repository backed by Postgres.
func NewEmployeeRepository(pg *db.Postgres, log *slog.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		pg:   pg,
		pool: pg.Pool,
		orm:  pg.ORM(),
		log:  log,
	}
}

// employeeRecord is the gorm mapping of the employees table.
type employeeRecord struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	FirstName string `gorm:"column:first_name;not null"`
	LastName  string `gorm:"column:last_name;not null"`
	Email     string `gorm:"column:email;not null"`
}

func (employeeRecord) TableName() string { return "employees" }

func (r employeeRecord) toDomain() domain.Employee {
	return domain.Employee{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName, Email: r.Email}
}

func (r *EmployeeRepository) Health(ctx context.Context) error {
	return r.pg.Health(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func (r *EmployeeRepository) Save(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	if e.IsNew() {
		return r.insert(ctx, e)
	}
	return r.update(ctx, e)
}

func (r *EmployeeRepository) insert(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	const q = `
		INSERT INTO employees (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, q, e.FirstName, e.LastName, e.Email).Scan(&e.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.Employee{}, domain.NewConflictError(domain.MsgEmployeeEmailTaken)
		}
		return domain.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeRepository) update(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	const q = `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4
		WHERE id = $1
		RETURNING id, first_name, last_name, email
	`
	var out domain.Employee
	err := r.pool.QueryRow(ctx, q, e.ID, e.FirstName, e.LastName, e.Email).
		Scan(&out.ID, &out.FirstName, &out.LastName, &out.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, domain.NewNotFoundError("employee")
		}
		if isUniqueViolation(err) {
			return domain.Employee{}, domain.NewConflictError(domain.MsgEmployeeEmailTaken)
		}
		return domain.Employee{}, err
	}
	return out, nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	const q = `SELECT id, first_name, last_name, email FROM employees`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (domain.Employee, bool, error) {
	const q = `
		SELECT id, first_name, last_name, email
		FROM employees
		WHERE id = $1
	`
	return r.queryOne(ctx, q, id)
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (domain.Employee, bool, error) {
	const q = `
		SELECT id, first_name, last_name, email
		FROM employees
		WHERE email = $1
		ORDER BY id
		LIMIT 1
	`
	return r.queryOne(ctx, q, email)
}

func (r *EmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		r.log.Debug("delete of missing employee ignored", "employee_id", id)
	}
	return nil
}

// FindByNames looks an employee up by first and last name.
func (r *EmployeeRepository) FindByNames(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error) {
	return r.FindByNativeSQLNamed(ctx, firstName, lastName)
}

// The four lookups below return the same row for the same names. They
// differ only in how the query is written and how arguments are bound.

const (
	findByNamesSQL = `
		SELECT id, first_name, last_name, email
		FROM employees e
		WHERE e.first_name = $1 AND e.last_name = $2
		ORDER BY id
		LIMIT 1
	`
	findByNamesNamedSQL = `
		SELECT id, first_name, last_name, email
		FROM employees e
		WHERE e.first_name = @firstName AND e.last_name = @lastName
		ORDER BY id
		LIMIT 1
	`
)

func namesWhere(tx *gorm.DB, firstName, lastName string) *gorm.DB {
	return tx.Where("first_name = ? AND last_name = ?", firstName, lastName)
}

func namesWhereNamed(tx *gorm.DB, firstName, lastName string) *gorm.DB {
	return tx.Where("first_name = @firstName AND last_name = @lastName",
		sql.Named("firstName", firstName),
		sql.Named("lastName", lastName),
	)
}

func namesArgs(firstName, lastName string) pgx.NamedArgs {
	return pgx.NamedArgs{
		"firstName": firstName,
		"lastName":  lastName,
	}
}

// FindByQuery uses gorm's query language with positional arguments.
func (r *EmployeeRepository) FindByQuery(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error) {
	return r.ormFirst(namesWhere(r.orm.WithContext(ctx), firstName, lastName))
}

// FindByQueryNamed uses gorm's query language with named arguments.
func (r *EmployeeRepository) FindByQueryNamed(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error) {
	return r.ormFirst(namesWhereNamed(r.orm.WithContext(ctx), firstName, lastName))
}

// FindByNativeSQL uses plain SQL with positional arguments.
func (r *EmployeeRepository) FindByNativeSQL(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error) {
	return r.queryOne(ctx, findByNamesSQL, firstName, lastName)
}

// FindByNativeSQLNamed uses plain SQL with named arguments.
func (r *EmployeeRepository) FindByNativeSQLNamed(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error) {
	return r.queryOne(ctx, findByNamesNamedSQL, namesArgs(firstName, lastName))
}

func (r *EmployeeRepository) queryOne(ctx context.Context, q string, args ...any) (domain.Employee, bool, error) {
	var e domain.Employee
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, false, nil
		}
		return domain.Employee{}, false, err
	}
	return e, true, nil
}

func firstByID(tx *gorm.DB, rec *employeeRecord) *gorm.DB {
	return tx.Order("id").First(rec)
}

func (r *EmployeeRepository) ormFirst(tx *gorm.DB) (domain.Employee, bool, error) {
	var rec employeeRecord
	if err := firstByID(tx, &rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Employee{}, false, nil
		}
		return domain.Employee{}, false, err
	}
	return rec.toDomain(), true, nil
}
