package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository keyed by generated ids.
type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	next  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.next++
	copy := cloneUser(user)
	copy.ID = "user-" + strconv.Itoa(r.next)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if u.Username == user.Username && id != user.ID {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubTaskRepo is an in-memory ports.TaskRepository.
type stubTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*domain.Task
	next  int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	copy := cloneTask(task)
	copy.ID = "task-" + strconv.Itoa(r.next)
	r.tasks[copy.ID] = cloneTask(copy)
	return cloneTask(copy), nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[id]; ok {
		return cloneTask(t), nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) List(_ context.Context) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r *stubTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.OwnerID == ownerID {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	r.tasks[task.ID] = cloneTask(task)
	return cloneTask(task), nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) DeleteByOwner(_ context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tasks {
		if t.OwnerID == ownerID {
			delete(r.tasks, id)
		}
	}
	return nil
}

// stubLimiter implements ports.LoginLimiter in memory.
type stubLimiter struct {
	mu       sync.Mutex
	failures map[string]int
	max      int
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{failures: make(map[string]int), max: max}
}

func (l *stubLimiter) Blocked(_ context.Context, username string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failures[username] >= l.max, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, username string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[username]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, username string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, username)
	return nil
}

// recordingAudit captures audit events synchronously for assertions.
type recordingAudit struct {
	mu     sync.Mutex
	events []ports.AuditEvent
}

func (a *recordingAudit) Record(event ports.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *recordingAudit) kinds() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Kind)
	}
	return out
}

func claimsFor(user *domain.User) *auth.Claims {
	return &auth.Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID,
		},
	}
}
