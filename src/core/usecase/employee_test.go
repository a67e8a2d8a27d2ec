package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employeeapi/src/core/domain"
	"employeeapi/src/core/ports/portstest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func michael() domain.Employee {
	return domain.Employee{FirstName: "Michael", LastName: "Royf", Email: "michael@gmail.com"}
}

func TestSaveEmployeeThenGetByID(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(portstest.NewEmployeeRepository(), discardLogger())

	saved, err := svc.SaveEmployee(ctx, michael())
	require.NoError(t, err)
	require.Greater(t, saved.ID, int64(0))

	got, found, err := svc.GetEmployeeByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, found)

	want := michael()
	want.ID = saved.ID
	assert.Equal(t, want, got)
}

func TestSaveEmployeeRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := portstest.NewEmployeeRepository()
	svc := NewEmployeeService(repo, discardLogger())

	first, err := svc.SaveEmployee(ctx, michael())
	require.NoError(t, err)

	dup := domain.Employee{FirstName: "Mike", LastName: "Other", Email: "michael@gmail.com"}
	_, err = svc.SaveEmployee(ctx, dup)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), domain.MsgEmployeeEmailTaken)

	assert.Equal(t, 1, repo.Saves)
	assert.Equal(t, 1, repo.Len())
	all, err := svc.GetAllEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, first, all[0])
}

func TestSaveEmployeeValidatesFields(t *testing.T) {
	repo := portstest.NewEmployeeRepository()
	svc := NewEmployeeService(repo, discardLogger())

	_, err := svc.SaveEmployee(context.Background(), domain.Employee{FirstName: "Michael", Email: "m@x.io"})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Zero(t, repo.Saves)
}

func TestGetAllEmployeesEmptyStore(t *testing.T) {
	svc := NewEmployeeService(portstest.NewEmployeeRepository(), discardLogger())

	all, err := svc.GetAllEmployees(context.Background())
	require.NoError(t, err)
	require.NotNil(t, all)
	assert.Empty(t, all)
}

func TestGetAllEmployeesReturnsEveryRow(t *testing.T) {
	repo := portstest.NewEmployeeRepository(
		michael(),
		domain.Employee{FirstName: "Tony", LastName: "Stark", Email: "tony@gmail.com"},
	)
	svc := NewEmployeeService(repo, discardLogger())

	all, err := svc.GetAllEmployees(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetEmployeeByIDMissing(t *testing.T) {
	svc := NewEmployeeService(portstest.NewEmployeeRepository(), discardLogger())

	_, found, err := svc.GetEmployeeByID(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateEmployeeKeepsID(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(portstest.NewEmployeeRepository(), discardLogger())

	saved, err := svc.SaveEmployee(ctx, michael())
	require.NoError(t, err)

	saved.FirstName = "MICHAEL"
	saved.Email = "MICHAEL@gmail.com"
	updated, err := svc.UpdateEmployee(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	got, found, err := svc.GetEmployeeByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "MICHAEL", got.FirstName)
	assert.Equal(t, "MICHAEL@gmail.com", got.Email)
}

func TestUpdateEmployeeAllowsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(portstest.NewEmployeeRepository(), discardLogger())

	_, err := svc.SaveEmployee(ctx, michael())
	require.NoError(t, err)
	anna, err := svc.SaveEmployee(ctx, domain.Employee{FirstName: "Anna", LastName: "Vanyan", Email: "anna@gmail.com"})
	require.NoError(t, err)

	anna.Email = "michael@gmail.com"
	_, err = svc.UpdateEmployee(ctx, anna)
	require.NoError(t, err)
}

func TestUpdateEmployeeRequiresID(t *testing.T) {
	svc := NewEmployeeService(portstest.NewEmployeeRepository(), discardLogger())

	_, err := svc.UpdateEmployee(context.Background(), michael())
	assert.True(t, domain.IsValidationError(err))
}

func TestDeleteEmployeeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := portstest.NewEmployeeRepository(michael())
	svc := NewEmployeeService(repo, discardLogger())

	require.NoError(t, svc.DeleteEmployee(ctx, 1))
	require.NoError(t, svc.DeleteEmployee(ctx, 1))
	assert.Zero(t, repo.Len())

	_, found, err := svc.GetEmployeeByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStorageErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	repo := portstest.NewEmployeeRepository()
	repo.Err = boom
	svc := NewEmployeeService(repo, discardLogger())

	_, err := svc.SaveEmployee(ctx, michael())
	assert.ErrorIs(t, err, boom)
	_, err = svc.GetAllEmployees(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, 1), boom)
}

func TestSaveEmployeeTrimsFields(t *testing.T) {
	ctx := context.Background()
	repo := portstest.NewEmployeeRepository()
	svc := NewEmployeeService(repo, discardLogger())

	_, err := svc.SaveEmployee(ctx, domain.Employee{FirstName: "  ", LastName: "Royf", Email: "michael@gmail.com"})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Zero(t, repo.Saves)

	saved, err := svc.SaveEmployee(ctx, domain.Employee{FirstName: " Michael ", LastName: "Royf", Email: " michael@gmail.com"})
	require.NoError(t, err)
	assert.Equal(t, "Michael", saved.FirstName)
	assert.Equal(t, "michael@gmail.com", saved.Email)

	_, err = svc.SaveEmployee(ctx, domain.Employee{FirstName: "Mike", LastName: "Royf", Email: "michael@gmail.com  "})
	assert.True(t, domain.IsConflict(err))
}
