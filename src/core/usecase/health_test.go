package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"employeeapi/src/core/ports/portstest"
)

func TestHealthCheckHealthyDatabase(t *testing.T) {
	svc := NewHealthService(portstest.NewEmployeeRepository(), discardLogger())

	status := svc.Check(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "healthy", status.Components["database"].Status)
}

func TestHealthCheckDegradedDatabase(t *testing.T) {
	repo := portstest.NewEmployeeRepository()
	repo.Err = errors.New("dial tcp: connection refused")
	svc := NewHealthService(repo, discardLogger())

	status := svc.Check(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "unhealthy", status.Components["database"].Status)
	assert.Contains(t, status.Components["database"].Message, "connection refused")
}

func TestHealthCheckWithoutDatabase(t *testing.T) {
	status := NewHealthService(nil, discardLogger()).Check(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Empty(t, status.Components)
}
