package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tarefalabs/tarefas-api/internal/api/middleware"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskRequest struct {
	Titulo    string `json:"titulo" validate:"required"`
	Descricao string `json:"descricao"`
	Status    string `json:"status" validate:"omitempty,oneof=pendente em_andamento concluida"`
}

type updateTaskRequest struct {
	Titulo    *string `json:"titulo"`
	Descricao *string `json:"descricao"`
	Status    *string `json:"status"`
}

type taskResponse struct {
	ID        string `json:"id"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao,omitempty"`
	Status    string `json:"status"`
	UsuarioID string `json:"usuarioId"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:        t.ID,
		Titulo:    t.Title,
		Descricao: t.Description,
		Status:    string(t.Status),
		UsuarioID: t.OwnerID,
	}
}

// List returns tasks. Pass ?minhas=true to see only your own.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        minhas  query     bool  false  "Only the caller's own tasks"
// @Success      200     {array}   taskResponse
// @Failure      403     {object}  map[string]string
// @Router       /tarefas [get]
func (h *TaskHandler) List(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	onlyMine := c.QueryParam("minhas") == "true"
	tasks, err := h.taskService.List(c.Request().Context(), claims, onlyMine)
	if err != nil {
		return err
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toTaskResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single task.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  map[string]string
// @Router       /tarefas/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Create stores a new task owned by the caller. Admin and Manager only.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /tarefas [post]
func (h *TaskHandler) Create(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	task, err := h.taskService.Create(c.Request().Context(), claims, ports.CreateTaskInput{
		Title:       req.Titulo,
		Description: req.Descricao,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update mutates a task. Admin may touch any task, a Manager only their own.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tarefas/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	task, err := h.taskService.Update(c.Request().Context(), claims, c.Param("id"), ports.UpdateTaskInput{
		Title:       req.Titulo,
		Description: req.Descricao,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete removes a task. Admin only.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tarefas/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	claims, err := middleware.ClaimsFrom(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Tarefa deletada com sucesso"})
}
