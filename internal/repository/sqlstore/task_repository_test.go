package sqlstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tareas-api/internal/domain"
	"tareas-api/internal/repository"
)

func seedUser(t *testing.T, db *DB) int64 {
	t.Helper()
	id, err := NewUserRepository(db).Create(context.Background(),
		&domain.User{Name: "Ana", Email: "ana@x.com", Password: "p1"})
	require.NoError(t, err)
	return id
}

func ptr(s string) *string { return &s }

func TestTaskRepository_CreateDefaultsStatus(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	owner := seedUser(t, db)
	repo := NewTaskRepository(db)

	task := &domain.Task{Title: "T1", OwnerID: owner}
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "T1", got.Title)
	assert.Nil(t, got.Description)
	assert.Equal(t, owner, got.OwnerID)
	assert.Equal(t, domain.TaskStatusPending, got.Status)
}

func TestTaskRepository_Description(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	owner := seedUser(t, db)
	repo := NewTaskRepository(db)

	id, err := repo.Create(ctx, &domain.Task{Title: "T1", Description: ptr("detalle"), OwnerID: owner})
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "detalle", *got.Description)
}

func TestTaskRepository_CreateUnknownOwner(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewTaskRepository(db)

	_, err := repo.Create(ctx, &domain.Task{Title: "T1", OwnerID: 42})
	assert.ErrorIs(t, err, repository.ErrForeignKey)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepository_List(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	owner := seedUser(t, db)
	repo := NewTaskRepository(db)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	for _, title := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, &domain.Task{Title: title, OwnerID: owner})
		require.NoError(t, err)
	}

	tasks, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "a", tasks[0].Title)
	assert.Equal(t, "c", tasks[2].Title)
}

func TestTaskRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	owner := seedUser(t, db)
	repo := NewTaskRepository(db)

	id, err := repo.Create(ctx, &domain.Task{Title: "T1", OwnerID: owner})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, id, domain.TaskStatusCompleted))
	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, got.Status)

	err = repo.UpdateStatus(ctx, 999, domain.TaskStatusCompleted)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	owner := seedUser(t, db)
	repo := NewTaskRepository(db)

	id, err := repo.Create(ctx, &domain.Task{Title: "T1", OwnerID: owner})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), repository.ErrNotFound)

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
