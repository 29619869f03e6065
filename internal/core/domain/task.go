package domain

import (
	"strings"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pendente"
	StatusInProgress TaskStatus = "em_andamento"
	StatusDone       TaskStatus = "concluida"
)

// ParseTaskStatus normalizes a wire status value. An empty string maps to
// the default StatusPending.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return StatusPending, nil
	case StatusPending:
		return StatusPending, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusDone:
		return StatusDone, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Task is a unit of work owned by a user. OwnerID references the owning
// User.ID and drives both the "my tasks" filter and ownership checks.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"titulo"`
	Description string     `json:"descricao,omitempty"`
	Status      TaskStatus `json:"status"`
	OwnerID     string     `json:"usuarioId"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}
