package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

// TaskService implements task CRUD. Role gates come from the access table;
// the ownership layer underneath (a Manager may only touch their own tasks)
// lives here, since ownership is resource-specific.
type TaskService struct {
	tasks  ports.TaskRepository
	authz  ports.AuthService
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, authz ports.AuthService, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, authz: authz, logger: logger}
}

// List returns all tasks, or only the caller's own when onlyMine is set.
// Every role may read every task; "my tasks" is a filter, not a scope.
func (s *TaskService) List(ctx context.Context, claims *auth.Claims, onlyMine bool) ([]*domain.Task, error) {
	op := auth.OpTaskListAll
	if onlyMine {
		op = auth.OpTaskListOwn
	}
	if err := s.authz.Authorize(claims, op, ""); err != nil {
		return nil, err
	}
	if onlyMine {
		return s.tasks.ListByOwner(ctx, claims.Subject)
	}
	return s.tasks.List(ctx)
}

// Get returns a single task. Read access follows the list rules.
func (s *TaskService) Get(ctx context.Context, claims *auth.Claims, id string) (*domain.Task, error) {
	if err := s.authz.Authorize(claims, auth.OpTaskListAll, ""); err != nil {
		return nil, err
	}
	return s.tasks.FindByID(ctx, id)
}

// Create stores a new task owned by the caller.
func (s *TaskService) Create(ctx context.Context, claims *auth.Claims, input ports.CreateTaskInput) (*domain.Task, error) {
	if err := s.authz.Authorize(claims, auth.OpTaskCreate, ""); err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, domain.ErrValidation
	}
	status, err := domain.ParseTaskStatus(input.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.tasks.Create(ctx, &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		OwnerID:     claims.Subject,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("owner_id", created.OwnerID).Msg("task created")
	return created, nil
}

// Update mutates a task. Admin may update any task; a Manager only their
// own.
func (s *TaskService) Update(ctx context.Context, claims *auth.Claims, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	if err := s.authz.Authorize(claims, auth.OpTaskUpdate, ""); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if claims.Role != domain.RoleAdmin && task.OwnerID != claims.Subject {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		status, err := domain.ParseTaskStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}
	task.UpdatedAt = time.Now().UTC()

	return s.tasks.Update(ctx, task)
}

// Delete removes a task. Admin only per the access table.
func (s *TaskService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	if err := s.authz.Authorize(claims, auth.OpTaskDelete, ""); err != nil {
		return err
	}
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}
