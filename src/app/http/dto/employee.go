package dto

import "employeeapi/src/core/domain"

// CreateEmployeeRequest is the body of POST /api/employees. Any id sent by
// the client is ignored.
type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

// ToDomain converts the request into an unsaved employee.
func (r CreateEmployeeRequest) ToDomain() (domain.Employee, error) {
	return domain.NewEmployee(r.FirstName, r.LastName, r.Email)
}

// UpdateEmployeeRequest is the body of PUT /api/employees/:id. Omitted
// fields keep their stored value.
type UpdateEmployeeRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1"`
	Email     *string `json:"email" binding:"omitempty,min=1"`
}

// ToChanges converts the request into domain changes.
func (r UpdateEmployeeRequest) ToChanges() domain.EmployeeChanges {
	return domain.EmployeeChanges{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// EmployeeResponse is the JSON shape of an employee.
type EmployeeResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// EmployeeFromDomain maps an employee for output.
func EmployeeFromDomain(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
}

// EmployeesFromDomain maps a list for output. The result is never nil so
// an empty list encodes as [].
func EmployeesFromDomain(list []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, EmployeeFromDomain(e))
	}
	return out
}
