package taskqueue

import (
	"regexp"
	"time"
)

// NotificationTask is the body the delivery callback receives at fire time.
type NotificationTask struct {
	TaskName   string    `json:"-"`
	ScheduleAt time.Time `json:"-"`

	NotificationID string            `json:"notification_id"`
	Category       string            `json:"category"`
	Offset         string            `json:"offset"`
	SourceID       string            `json:"source_id"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	FireAt         time.Time         `json:"fire_at"`
	Payload        map[string]string `json:"payload,omitempty"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	Name         string             `json:"name,omitempty"`
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}

var invalidTaskNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeTaskName maps an arbitrary id onto the [A-Za-z0-9_-] alphabet task
// queues accept, e.g. "trip:c-42:before" -> "trip_c-42_before".
func SanitizeTaskName(id string) string {
	name := invalidTaskNameChars.ReplaceAllString(id, "_")
	if len(name) > 400 {
		name = name[:400]
	}
	return name
}
