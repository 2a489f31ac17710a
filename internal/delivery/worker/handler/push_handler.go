// Package handler serves Pub/Sub push deliveries for the notifier.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"boxtrack/config"
	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks an OIDC token for an audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying shipment events
type PushHandler struct {
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
	Validator      TokenValidator `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler.
// Push requests are verified only when a push audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	validate := params.Validator
	if validate == nil {
		validate = idtoken.Validate
	}

	return &PushHandler{
		audience:       audience,
		validateToken:  validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush answers 503 for retryable failures so Pub/Sub redelivers,
// and 200 for everything else so poison messages are dropped.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ShipmentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse shipment event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := ResolveRequestID(ctx, pushMsg.Message.Attributes, &event)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing shipment event",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.String("shipment_id", event.ShipmentID),
	)

	if err := h.notificationUC.HandleShipmentEvent(ctx, &event); err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to handle shipment event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// ResolveRequestID picks the tracing ID for an event.
// Priority: message attributes > event field > existing context > new UUID.
func ResolveRequestID(ctx context.Context, attributes map[string]string, event *service.ShipmentEvent) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken validates the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing or malformed authorization header")
	}

	payload, err := h.validateToken(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
