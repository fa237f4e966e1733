package domain

import "context"

//go:generate mockgen -source=push_sender.go -destination=push_sender_mock.go -package=domain

type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult reports a multicast send. InvalidTokens lists tokens the push
// service rejected as no longer registered.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

type PushSender interface {
	Send(ctx context.Context, tokens []string, msg PushMessage) (*PushResult, error)
}
