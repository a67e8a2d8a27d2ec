package domain

import "strings"

// MsgEmployeeEmailTaken is the conflict message returned when creating an
// employee whose email is already on file.
const MsgEmployeeEmailTaken = "Employee already exists with the given email"

// Employee is a member of staff. ID is assigned by the store on insert and
// never changes afterwards.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// EmployeeChanges carries the mutable fields of an update. Nil fields are
// left untouched.
type EmployeeChanges struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// NewEmployee builds an unsaved employee and checks that every field is set.
func NewEmployee(firstName, lastName, email string) (Employee, error) {
	e := Employee{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
	}
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}
	return e, nil
}

// Validate reports the first required field that is empty.
func (e Employee) Validate() error {
	switch {
	case e.FirstName == "":
		return NewValidationError("firstName", "cannot be empty")
	case e.LastName == "":
		return NewValidationError("lastName", "cannot be empty")
	case e.Email == "":
		return NewValidationError("email", "cannot be empty")
	}
	return nil
}

// Apply merges changes onto e. The ID is kept as is.
func (e *Employee) Apply(c EmployeeChanges) error {
	next := *e
	if c.FirstName != nil {
		next.FirstName = strings.TrimSpace(*c.FirstName)
	}
	if c.LastName != nil {
		next.LastName = strings.TrimSpace(*c.LastName)
	}
	if c.Email != nil {
		next.Email = strings.TrimSpace(*c.Email)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*e = next
	return nil
}

// IsNew reports whether the employee has not been persisted yet.
func (e Employee) IsNew() bool {
	return e.ID == 0
}
