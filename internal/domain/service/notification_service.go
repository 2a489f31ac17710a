package service

import (
	"context"
)

// PushMessage is a rendered shipment notification. Data travels to the app
// untouched and carries the shipment identifiers.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult is the outcome of one multicast send.
// InvalidTokens lists devices the provider reported as gone.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// NotificationService pushes shipment messages to sender devices.
type NotificationService interface {
	SendBatchNotification(ctx context.Context, tokens []string, message PushMessage) (*PushResult, error)
	SendSingleNotification(ctx context.Context, token string, message PushMessage) error
}
