package tasks

import (
	"context"
	"time"
)

type TaskType string

const (
	TaskTypeGenerateSite  TaskType = "generate_site"
	TaskTypePruneMetrics  TaskType = "prune_metrics"
	TaskTypeReconcileSite TaskType = "reconcile_site"
)

// TaskInterface is one batch job. Tasks run once, synchronously; there are
// no retries and no background execution.
type TaskInterface interface {
	Execute(ctx context.Context) error
	GetType() TaskType
	Start()
	GetDuration() time.Duration
}

type Task struct {
	Type      TaskType
	StartedAt *time.Time
}

func (t *Task) GetType() TaskType {
	return t.Type
}

func (t *Task) Start() {
	now := time.Now()
	t.StartedAt = &now
}

func (t *Task) GetDuration() time.Duration {
	if t.StartedAt == nil {
		return 0
	}
	return time.Since(*t.StartedAt)
}

func NewTask(taskType TaskType) Task {
	return Task{Type: taskType}
}
