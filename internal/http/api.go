package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"tareas-api/internal/service"
)

const invalidBody = "Datos inválidos"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users         service.UserService
	tasks         service.TaskService
	store         Pinger
	logger        *logrus.Logger
	allowedOrigin string
}

func NewHandler(users service.UserService, tasks service.TaskService, store Pinger, logger *logrus.Logger, allowedOrigin string) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:         users,
		tasks:         tasks,
		store:         store,
		logger:        logger,
		allowedOrigin: allowedOrigin,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware(), loggingMiddleware(h.logger), corsMiddleware(h.allowedOrigin))

	router.POST("/usuarios", h.registerUser)
	router.POST("/usuarios/login", h.login)

	router.POST("/tareas", h.createTask)
	router.GET("/tareas", h.listTasks)
	router.GET("/tareas/:id", h.getTask)
	router.PUT("/tareas/:id", h.updateTaskStatus)
	router.DELETE("/tareas/:id", h.deleteTask)

	router.GET("/health", h.health)
	router.GET("/api-docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json"))))
}

// registerUser godoc
// @Summary      Registrar un nuevo usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        usuario  body      registerUserRequest  true  "Datos del usuario"
// @Success      201      {object}  CreatedResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /usuarios [post]
func (h *Handler) registerUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBody})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "El correo ya está registrado"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBody})
		default:
			h.storageFailure(c, err, "Error al crear el usuario")
		}
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: user.ID, Message: "Usuario creado exitosamente"})
}

// login godoc
// @Summary      Iniciar sesión de usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        credenciales  body      loginRequest  true  "Correo y contraseña"
// @Success      200           {object}  UserResponse
// @Failure      401           {object}  ErrorResponse
// @Failure      500           {object}  ErrorResponse
// @Router       /usuarios/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBody})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Credenciales inválidas"})
			return
		}
		h.storageFailure(c, err, "Error en el servidor")
		return
	}

	c.JSON(http.StatusOK, UserResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// createTask godoc
// @Summary      Crear una nueva tarea
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Param        tarea  body      createTaskRequest  true  "Tarea a crear"
// @Success      201    {object}  CreatedResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /tareas [post]
func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBody})
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), req.Title, req.Description, req.OwnerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOwnerNotFound):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "El usuario especificado no existe"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBody})
		default:
			h.storageFailure(c, err, "Error al crear la tarea")
		}
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: task.ID, Message: "Tarea creada exitosamente"})
}

// listTasks godoc
// @Summary      Obtener todas las tareas
// @Tags         tareas
// @Produce      json
// @Success      200  {array}   TaskResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tareas [get]
func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		h.storageFailure(c, err, "Error al obtener las tareas")
		return
	}

	resp := make([]TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getTask godoc
// @Summary      Obtener una tarea específica
// @Tags         tareas
// @Produce      json
// @Param        id   path      int  true  "ID de la tarea"
// @Success      200  {object}  TaskResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tareas/{id} [get]
func (h *Handler) getTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tarea no encontrada"})
			return
		}
		h.storageFailure(c, err, "Error al obtener la tarea")
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

// updateTaskStatus godoc
// @Summary      Actualizar el estado de una tarea
// @Description  estado admite pendiente, en progreso o completado
// @Tags         tareas
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "ID de la tarea"
// @Param        estado  body      updateStatusRequest  true  "Nuevo estado"
// @Success      200     {object}  UpdatedTaskResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /tareas/{id} [put]
func (h *Handler) updateTaskStatus(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBody})
		return
	}

	task, err := h.tasks.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tarea no encontrada"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidBody})
		default:
			h.storageFailure(c, err, "Error al actualizar la tarea")
		}
		return
	}

	c.JSON(http.StatusOK, UpdatedTaskResponse{
		Message: "Tarea actualizada exitosamente",
		Task:    taskToResponse(*task),
	})
}

// deleteTask godoc
// @Summary      Eliminar una tarea
// @Tags         tareas
// @Produce      json
// @Param        id   path      int  true  "ID de la tarea"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tareas/{id} [delete]
func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Tarea no encontrada"})
			return
		}
		h.storageFailure(c, err, "Error al eliminar la tarea")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Tarea eliminada exitosamente"})
}

func (h *Handler) health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			h.logger.WithError(err).Warn("health check failed")
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": "ok"})
}

// storageFailure logs the cause and answers with a generic 500.
func (h *Handler) storageFailure(c *gin.Context, err error, message string) {
	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"path":       c.Request.URL.Path,
	}).WithError(err).Error(message)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Identificador de tarea inválido"})
		return 0, false
	}
	return id, true
}
