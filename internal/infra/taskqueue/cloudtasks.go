//go:build gcloud

package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/tracing"
)

type CloudTasksClient struct {
	client     *cloudtasks.Client
	queuePath  string
	targetURL  string
	maxRetries int
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &CloudTasksClient{
		client:     client,
		queuePath:  fmt.Sprintf("projects/%s/locations/%s/queues/%s", cfg.ProjectID, cfg.LocationID, cfg.QueueID),
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
	}, nil
}

func (c *CloudTasksClient) taskPath(taskName string) string {
	if strings.HasPrefix(taskName, "projects/") {
		return taskName
	}
	return c.queuePath + "/tasks/" + taskName
}

func (c *CloudTasksClient) RegisterNotification(ctx context.Context, task *NotificationTask) (*TaskResponse, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification task: %w", err)
	}

	cloudTask := &taskspb.Task{
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
	}
	if task.TaskName != "" {
		cloudTask.Name = c.taskPath(task.TaskName)
	}
	if !task.ScheduleAt.IsZero() {
		cloudTask.ScheduleTime = timestamppb.New(task.ScheduleAt)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: c.queuePath,
		Task:   cloudTask,
	}

	var resp *TaskResponse
	err = withRetry(ctx, c.maxRetries, "task registration", task.TaskName, func(ctx context.Context) error {
		var createErr error
		resp, createErr = c.createTask(ctx, req, task.NotificationID)
		return createErr
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *CloudTasksClient) createTask(ctx context.Context, req *taskspb.CreateTaskRequest, notificationID string) (*TaskResponse, error) {
	ctx, span := tracing.StartExternalAPISpan(ctx, "create_cloud_task", req.Parent)
	defer span.End()

	slog.DebugContext(ctx, "registering notification to Cloud Tasks",
		slog.String("queue_path", req.Parent),
		slog.String("notification_id", notificationID),
	)

	createdTask, err := c.client.CreateTask(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "failed to create cloud task",
			slog.String("notification_id", notificationID),
			slog.String("error", err.Error()),
		)
		tracing.RecordError(span, err)
		if code := status.Code(err); code == codes.AlreadyExists || code == codes.InvalidArgument {
			return nil, fmt.Errorf("%w: failed to create cloud task: %w", errPermanent, err)
		}
		return nil, fmt.Errorf("failed to create cloud task: %w", err)
	}

	slog.InfoContext(ctx, "notification task registered to Cloud Tasks",
		slog.String("task_name", createdTask.Name),
		slog.String("notification_id", notificationID),
	)
	tracing.RecordError(span, nil)

	var scheduleTime, createTime time.Time
	if createdTask.ScheduleTime != nil {
		scheduleTime = createdTask.ScheduleTime.AsTime()
	}
	if createdTask.CreateTime != nil {
		createTime = createdTask.CreateTime.AsTime()
	}

	return &TaskResponse{
		Name:         createdTask.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}

func (c *CloudTasksClient) DeleteTask(ctx context.Context, taskName string) error {
	taskPath := c.taskPath(taskName)

	return withRetry(ctx, c.maxRetries, "task deletion", taskName, func(ctx context.Context) error {
		return c.deleteTask(ctx, taskPath)
	})
}

func (c *CloudTasksClient) deleteTask(ctx context.Context, taskPath string) error {
	ctx, span := tracing.StartExternalAPISpan(ctx, "delete_cloud_task", taskPath)
	defer span.End()

	err := c.client.DeleteTask(ctx, &taskspb.DeleteTaskRequest{Name: taskPath})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			slog.InfoContext(ctx, "task not found in Cloud Tasks (may have been processed)",
				slog.String("task_path", taskPath),
			)
			tracing.RecordError(span, nil)
			return nil
		}

		slog.WarnContext(ctx, "failed to delete cloud task",
			slog.String("task_path", taskPath),
			slog.String("error", err.Error()),
		)
		tracing.RecordError(span, err)
		return fmt.Errorf("failed to delete cloud task: %w", err)
	}

	slog.DebugContext(ctx, "task deleted from Cloud Tasks",
		slog.String("task_path", taskPath),
	)
	tracing.RecordError(span, nil)
	return nil
}
