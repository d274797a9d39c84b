package http

import (
	"time"

	"tareas-api/internal/domain"
)

type registerUserRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Email    string `json:"correo" binding:"required"`
	Password string `json:"contraseña" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"correo" binding:"required"`
	Password string `json:"contraseña" binding:"required"`
}

type createTaskRequest struct {
	Title       string  `json:"titulo" binding:"required"`
	Description *string `json:"descripcion"`
	OwnerID     int64   `json:"id_usuario" binding:"required"`
}

type updateStatusRequest struct {
	Status domain.TaskStatus `json:"estado" binding:"required"`
}

// CreatedResponse acknowledges a created resource.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"mensaje"`
}

type MessageResponse struct {
	Message string `json:"mensaje"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"correo"`
}

type TaskResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"titulo"`
	Description *string           `json:"descripcion"`
	OwnerID     int64             `json:"id_usuario"`
	Status      domain.TaskStatus `json:"estado"`
	CreatedAt   string            `json:"fecha_creacion"`
}

type UpdatedTaskResponse struct {
	Message string       `json:"mensaje"`
	Task    TaskResponse `json:"tarea"`
}

func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		OwnerID:     task.OwnerID,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
	}
}
