package notification

import (
	"context"
	"log/slog"

	"boxtrack/config"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the FCM limit for one multicast request.
const MaxMulticastTokens = 500

// messagingClient is the part of *messaging.Client the service needs
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseService creates the FCM sender. Without credentials it falls back to a
// service that only logs, so local setups work without a Firebase project.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials not configured, push notifications are logged only")

		return &logOnlyService{logger: logger}, nil
	}

	var fbConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendSingleNotification pushes message to one device.
func (s *firebaseService) SendSingleNotification(ctx context.Context, token string, message service.PushMessage) error {
	if _, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: message.Title, Body: message.Body},
		Data:         message.Data,
	}); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification pushes to up to MaxMulticastTokens devices. Tokens FCM
// reports as invalid or unregistered are returned so callers can retire them.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, message service.PushMessage) (*service.PushResult, error) {
	if len(tokens) == 0 {
		return &service.PushResult{}, nil
	}
	if len(tokens) > MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: message.Title, Body: message.Body},
		Data:         message.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		} else {
			s.logger.Debug("FCM send failed", slog.Int("index", idx), slog.Any("error", sendResponse.Error))
		}
	}

	return result, nil
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendSingleNotification(_ context.Context, token string, message service.PushMessage) error {
	s.logger.Info("Push notification",
		slog.String("token", token),
		slog.String("title", message.Title),
		slog.String("body", message.Body),
		slog.Any("data", message.Data),
	)

	return nil
}

func (s *logOnlyService) SendBatchNotification(_ context.Context, tokens []string, message service.PushMessage) (*service.PushResult, error) {
	s.logger.Info("Push notification batch",
		slog.Int("tokens", len(tokens)),
		slog.String("title", message.Title),
		slog.String("body", message.Body),
		slog.Any("data", message.Data),
	)

	return &service.PushResult{SuccessCount: len(tokens)}, nil
}
