// Package usecase holds the application services that sit between the HTTP
// layer and the repositories.
package usecase

import (
	"context"
	"log/slog"

	"employeeapi/src/core/domain"
	"employeeapi/src/core/ports"
)

// EmployeeService enforces email uniqueness on create and otherwise passes
// through to the repository.
type EmployeeService struct {
	repo ports.EmployeeRepository
	log  *slog.Logger
}

var _ ports.EmployeeService = (*EmployeeService)(nil)

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo ports.EmployeeRepository, log *slog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, log: log}
}

// SaveEmployee creates e unless another employee already uses its email.
// The check and the insert are not atomic; two concurrent creates with the
// same email can both succeed.
func (s *EmployeeService) SaveEmployee(ctx context.Context, in domain.Employee) (domain.Employee, error) {
	e, err := domain.NewEmployee(in.FirstName, in.LastName, in.Email)
	if err != nil {
		return domain.Employee{}, err
	}
	if _, found, err := s.repo.FindByEmail(ctx, e.Email); err != nil {
		return domain.Employee{}, err
	} else if found {
		s.log.Warn("employee email already taken", "email", e.Email)
		return domain.Employee{}, domain.NewConflictError(domain.MsgEmployeeEmailTaken)
	}

	saved, err := s.repo.Save(ctx, e)
	if err != nil {
		return domain.Employee{}, err
	}
	s.log.Info("employee created", "employee_id", saved.ID)
	return saved, nil
}

// GetAllEmployees returns every employee, or an empty slice.
func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Employee{}
	}
	return list, nil
}

func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, bool, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) FindEmployeeByNames(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error) {
	return s.repo.FindByNames(ctx, firstName, lastName)
}

// UpdateEmployee persists a previously loaded and modified employee.
// Email uniqueness is not checked again here.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	if e.IsNew() {
		return domain.Employee{}, domain.NewValidationError("id", "employee must be loaded before update")
	}
	updated, err := s.repo.Save(ctx, e)
	if err != nil {
		return domain.Employee{}, err
	}
	s.log.Info("employee updated", "employee_id", updated.ID)
	return updated, nil
}

// DeleteEmployee removes the employee if present. Missing ids are not an error.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info("employee deleted", "employee_id", id)
	return nil
}
