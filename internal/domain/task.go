package domain

import "time"

type TaskStatus string

// Wire values stored in the estado column. Tasks start as pending via the column default.
const (
	TaskStatusPending    TaskStatus = "pendiente"
	TaskStatusInProgress TaskStatus = "en progreso"
	TaskStatusCompleted  TaskStatus = "completado"
)

// Task is a unit of work owned by a User.
type Task struct {
	ID          int64
	Title       string
	Description *string
	OwnerID     int64
	Status      TaskStatus
	CreatedAt   time.Time
}
