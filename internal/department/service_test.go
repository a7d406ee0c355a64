package department_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamsched/scheduler-backend/internal/department"
	"github.com/teamsched/scheduler-backend/internal/storage/memory"
)

func TestDepartmentService(t *testing.T) {
	svc := department.NewService(memory.New().Departments())
	ctx := context.Background()

	eng, err := svc.Create(ctx, " Engineering ")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", eng.Name)

	_, err = svc.Create(ctx, "Design")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Engineering")
	assert.ErrorIs(t, err, department.ErrDuplicateName)

	_, err = svc.Create(ctx, "  ")
	assert.ErrorIs(t, err, department.ErrNameRequired)

	got, err := svc.GetByID(ctx, eng.ID)
	require.NoError(t, err)
	assert.Equal(t, eng.ID, got.ID)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, department.ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Design", list[0].Name)
	assert.Equal(t, "Engineering", list[1].Name)
}
