package taskqueue

import "context"

//go:generate mockgen -source=task_queue.go -destination=mock.go -package=taskqueue

type TaskQueue interface {
	RegisterNotification(ctx context.Context, task *NotificationTask) (*TaskResponse, error)
	// DeleteTask removes a pending task by the name RegisterNotification
	// returned. A task that no longer exists is not an error.
	DeleteTask(ctx context.Context, taskName string) error
}
