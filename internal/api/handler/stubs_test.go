package handler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tarefalabs/tarefas-api/internal/core/domain"
)

// memUserRepo is an in-memory UserRepository for handler tests.
type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, copyUser(u))
	}
	return out, nil
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	stored := copyUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.seq)
	stored.CreatedAt = time.Now()
	r.users[stored.ID] = stored
	return copyUser(stored), nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	stored := copyUser(user)
	stored.UpdatedAt = time.Now()
	r.users[stored.ID] = stored
	return copyUser(stored), nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// memTaskRepo is the task counterpart.
type memTaskRepo struct {
	mu    sync.Mutex
	seq   int
	tasks map[string]*domain.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[string]*domain.Task)}
}

func copyTask(t *domain.Task) *domain.Task {
	c := *t
	return &c
}

func (r *memTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return copyTask(t), nil
}

func (r *memTaskRepo) List(_ context.Context) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, copyTask(t))
	}
	return out, nil
}

func (r *memTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.OwnerID == ownerID {
			out = append(out, copyTask(t))
		}
	}
	return out, nil
}

func (r *memTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	stored := copyTask(task)
	stored.ID = fmt.Sprintf("task-%d", r.seq)
	stored.CreatedAt = time.Now()
	r.tasks[stored.ID] = stored
	return copyTask(stored), nil
}

func (r *memTaskRepo) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	stored := copyTask(task)
	stored.UpdatedAt = time.Now()
	r.tasks[stored.ID] = stored
	return copyTask(stored), nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) DeleteByOwner(_ context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tasks {
		if t.OwnerID == ownerID {
			delete(r.tasks, id)
		}
	}
	return nil
}
