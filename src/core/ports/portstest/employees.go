// Package portstest provides in-memory implementations of the ports for tests.
package portstest

import (
	"context"
	"sort"
	"sync"

	"employeeapi/src/core/domain"
	"employeeapi/src/core/ports"
)

// EmployeeRepository is an in-memory ports.EmployeeRepository.
type EmployeeRepository struct {
	mu     sync.Mutex
	rows   map[int64]domain.Employee
	nextID int64

	// Err, when set, is returned by every call.
	Err error
	// Saves counts calls to Save.
	Saves int
}

var _ ports.EmployeeRepository = (*EmployeeRepository)(nil)

// NewEmployeeRepository returns an empty repository seeded with rows.
func NewEmployeeRepository(rows ...domain.Employee) *EmployeeRepository {
	r := &EmployeeRepository{rows: make(map[int64]domain.Employee)}
	for _, e := range rows {
		if e.ID == 0 {
			r.nextID++
			e.ID = r.nextID
		} else if e.ID > r.nextID {
			r.nextID = e.ID
		}
		r.rows[e.ID] = e
	}
	return r
}

func (r *EmployeeRepository) Health(context.Context) error { return r.Err }

func (r *EmployeeRepository) Save(_ context.Context, e domain.Employee) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return domain.Employee{}, r.Err
	}
	r.Saves++
	if e.ID == 0 {
		r.nextID++
		e.ID = r.nextID
	} else if _, ok := r.rows[e.ID]; !ok {
		return domain.Employee{}, domain.NewNotFoundError("employee")
	}
	r.rows[e.ID] = e
	return e, nil
}

func (r *EmployeeRepository) FindAll(context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Employee, 0, len(r.rows))
	for _, e := range r.rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *EmployeeRepository) FindByID(_ context.Context, id int64) (domain.Employee, bool, error) {
	return r.find(func(e domain.Employee) bool { return e.ID == id })
}

func (r *EmployeeRepository) FindByEmail(_ context.Context, email string) (domain.Employee, bool, error) {
	return r.find(func(e domain.Employee) bool { return e.Email == email })
}

func (r *EmployeeRepository) FindByNames(_ context.Context, firstName, lastName string) (domain.Employee, bool, error) {
	return r.find(func(e domain.Employee) bool {
		return e.FirstName == firstName && e.LastName == lastName
	})
}

func (r *EmployeeRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.rows, id)
	return nil
}

// Len returns the number of stored rows.
func (r *EmployeeRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *EmployeeRepository) find(match func(domain.Employee) bool) (domain.Employee, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return domain.Employee{}, false, r.Err
	}
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if e := r.rows[id]; match(e) {
			return e, true, nil
		}
	}
	return domain.Employee{}, false, nil
}
