package application

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-employee-service/internal/domain/entity"
)

func TestExportObjectPath(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.FixedZone("WIB", 7*3600))
	assert.Equal(t, "exports/employees-20240309T070507Z.json", ExportObjectPath(ts))
}

func TestEmployeeService_ExportEmployees(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()
	fx.repo.On("FindAll", ctx).Return([]entity.Employee{
		{ID: 1, FirstName: "Devang", LastName: "Chauhan", Email: "devang@gmail.com"},
	}, nil)

	var buf bytes.Buffer
	n, err := fx.service.ExportEmployees(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.JSONEq(t, `[{"id":1,"firstName":"Devang","lastName":"Chauhan","email":"devang@gmail.com"}]`, buf.String())
}

func TestEmployeeService_ExportEmployees_Empty(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()
	fx.repo.On("FindAll", ctx).Return(nil, nil)

	var buf bytes.Buffer
	n, err := fx.service.ExportEmployees(ctx, &buf)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.JSONEq(t, `[]`, buf.String())
}
