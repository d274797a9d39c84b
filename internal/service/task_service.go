package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tareas-api/internal/domain"
	"tareas-api/internal/repository"
)

// TaskService coordinates task level operations backed by repositories.
type TaskService interface {
	CreateTask(ctx context.Context, title string, description *string, ownerID int64) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type taskService struct {
	tasks repository.TaskRepository
	users repository.UserRepository
}

func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository) TaskService {
	return &taskService{
		tasks: tasks,
		users: users,
	}
}

// CreateTask checks the owner before inserting. The foreign key on id_usuario
// covers an owner removed between the check and the insert.
func (s *taskService) CreateTask(ctx context.Context, title string, description *string, ownerID int64) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: titulo is required", ErrInvalidInput)
	}

	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOwnerNotFound
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}
	if _, err := s.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

// UpdateStatus does not roll back when the follow-up read fails; the new status stays applied.
func (s *taskService) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error) {
	if strings.TrimSpace(string(status)) == "" {
		return nil, fmt.Errorf("%w: estado is required", ErrInvalidInput)
	}

	if err := s.tasks.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFound(err)
	}

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload task %d: %w", id, err)
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
