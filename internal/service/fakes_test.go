package service

import (
	"context"
	"fmt"

	"tareas-api/internal/domain"
	"tareas-api/internal/repository"
)

type fakeUserRepo struct {
	users     []domain.User
	createErr error
	getErr    error
	existsErr error
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return 0, fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
	}
	u.ID = int64(len(f.users) + 1)
	f.users = append(f.users, *u)
	return u.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := f.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u.Password != password {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeTaskRepo struct {
	tasks     map[int64]*domain.Task
	nextID    int64
	createErr error
	getErr    error
	updateErr error
	creates   int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]*domain.Task{}}
}

func (f *fakeTaskRepo) Create(_ context.Context, t *domain.Task) (int64, error) {
	f.creates++
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	t.ID = f.nextID
	stored := *t
	stored.Status = domain.TaskStatusPending
	f.tasks[t.ID] = &stored
	return t.ID, nil
}

func (f *fakeTaskRepo) Get(_ context.Context, id int64) (*domain.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	t, ok := f.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task: %w", repository.ErrNotFound)
	}
	c := *t
	return &c, nil
}

func (f *fakeTaskRepo) List(context.Context) ([]domain.Task, error) {
	out := []domain.Task{}
	for id := int64(1); id <= f.nextID; id++ {
		if t, ok := f.tasks[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, id int64, status domain.TaskStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	t, ok := f.tasks[id]
	if !ok {
		return fmt.Errorf("task %d: %w", id, repository.ErrNotFound)
	}
	t.Status = status
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.tasks[id]; !ok {
		return fmt.Errorf("task %d: %w", id, repository.ErrNotFound)
	}
	delete(f.tasks, id)
	return nil
}
