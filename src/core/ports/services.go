package ports

import (
	"context"

	"employeeapi/src/core/domain"
)

// EmployeeService is the use case surface the HTTP layer talks to.
type EmployeeService interface {
	SaveEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)
	GetAllEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, bool, error)
	FindEmployeeByNames(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error)
	UpdateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
