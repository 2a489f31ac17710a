package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boxtrack/config"
	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/service"
	mockUsecase "boxtrack/internal/mocks/usecase"
	"boxtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func pushBody(t *testing.T, event *service.ShipmentEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = event.EventID
	msg.Subscription = "projects/local/subscriptions/shipment-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushHandler(t *testing.T, cfg *config.Config, validator TokenValidator) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.DiscardHandler),
		NotificationUC: notifications,
		Validator:      validator,
	}), notifications
}

func servePush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_Outcomes(t *testing.T) {
	event := &service.ShipmentEvent{
		EventID:    "evt-1",
		Type:       service.EventShipmentStatusChanged,
		ShipmentID: "3f5e7c8a-0000-0000-0000-000000000001",
		Status:     "IN_TRANSIT",
	}

	tests := []struct {
		name       string
		handleErr  error
		wantStatus int
	}{
		{name: "delivered", wantStatus: http.StatusOK},
		{name: "retryable failure asks for redelivery", handleErr: usecase.Retryable(errors.New("fcm unavailable")), wantStatus: http.StatusServiceUnavailable},
		{name: "permanent failure is acknowledged", handleErr: errors.New("sender has no devices"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newPushHandler(t, &config.Config{}, nil)
			notifications.EXPECT().HandleShipmentEvent(mock.Anything, mock.MatchedBy(func(got *service.ShipmentEvent) bool {
				return got.EventID == "evt-1" && got.Status == "IN_TRANSIT"
			})).Return(tt.handleErr)

			rec := servePush(h, pushBody(t, event, event.Attributes()), "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedInput(t *testing.T) {
	h, _ := newPushHandler(t, &config.Config{}, nil)

	rec := servePush(h, `{"message":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, `{"message":{"data":"%%%"}}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	rec = servePush(h, `{"message":{"data":"`+notJSON+`"}}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_RequestIDReachesUsecase(t *testing.T) {
	h, notifications := newPushHandler(t, &config.Config{}, nil)
	event := &service.ShipmentEvent{EventID: "evt-2", RequestID: "from-event"}

	notifications.EXPECT().HandleShipmentEvent(mock.MatchedBy(func(ctx context.Context) bool {
		return deliverycontext.GetRequestIDFromContext(ctx) == "from-attributes"
	}), mock.Anything).Return(nil)

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "from-attributes"}), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveRequestID(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "from-context")

	assert.Equal(t, "from-attributes",
		ResolveRequestID(ctx, map[string]string{"request_id": "from-attributes"}, &service.ShipmentEvent{RequestID: "from-event"}))
	assert.Equal(t, "from-event", ResolveRequestID(ctx, nil, &service.ShipmentEvent{RequestID: "from-event"}))
	assert.Equal(t, "from-context", ResolveRequestID(ctx, map[string]string{}, &service.ShipmentEvent{}))
	assert.Len(t, ResolveRequestID(context.Background(), nil, &service.ShipmentEvent{}), 36)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{PushAudience: "https://notifier.example.com/push"}}
	event := &service.ShipmentEvent{EventID: "evt-3"}

	validator := func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if audience != "https://notifier.example.com/push" {
			return nil, errors.New("audience mismatch")
		}
		switch token {
		case "google":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		case "unverified":
			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}, nil
		case "foreign":
			return &idtoken.Payload{Issuer: "https://issuer.example.com"}, nil
		default:
			return nil, errors.New("signature mismatch")
		}
	}

	h, notifications := newPushHandler(t, cfg, validator)
	notifications.EXPECT().HandleShipmentEvent(mock.Anything, mock.Anything).Return(nil).Once()

	body := pushBody(t, event, nil)
	assert.Equal(t, http.StatusOK, servePush(h, body, "Bearer google").Code)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, "Bearer forged").Code)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, "Bearer unverified").Code)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, "Bearer foreign").Code)
}
