package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"boxtrack/config"
	"boxtrack/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent      []*messaging.Message
	multicast []*messaging.MulticastMessage
	response  *messaging.BatchResponse
	err       error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return "projects/test/messages/1", f.err
}

func (f *fakeMessagingClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = append(f.multicast, message)
	if f.err != nil {
		return nil, f.err
	}

	return f.response, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendBatchNotification(t *testing.T) {
	client := &fakeMessagingClient{
		response: &messaging.BatchResponse{
			SuccessCount: 2,
			FailureCount: 0,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "a"},
				{Success: true, MessageID: "b"},
			},
		},
	}
	svc := &firebaseService{client: client, logger: discardLogger()}

	result, err := svc.SendBatchNotification(t.Context(), []string{"t1", "t2"},
		service.PushMessage{Title: "title", Body: "body", Data: map[string]string{"k": "v"}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)
	require.Len(t, client.multicast, 1)
	assert.Equal(t, []string{"t1", "t2"}, client.multicast[0].Tokens)
	assert.Equal(t, "title", client.multicast[0].Notification.Title)
}

func TestSendBatchNotification_Limits(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client, logger: discardLogger()}

	result, err := svc.SendBatchNotification(t.Context(), nil, service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.Nil(t, result.InvalidTokens)

	_, err = svc.SendBatchNotification(t.Context(), make([]string, MaxMulticastTokens+1), service.PushMessage{Title: "t"})
	assert.Error(t, err)
	assert.Empty(t, client.multicast)
}

func TestSendBatchNotification_ClientError(t *testing.T) {
	cause := errors.New("unavailable")
	svc := &firebaseService{client: &fakeMessagingClient{err: cause}, logger: discardLogger()}

	_, err := svc.SendBatchNotification(t.Context(), []string{"t1"}, service.PushMessage{Title: "t"})
	assert.ErrorIs(t, err, cause)
}

func TestSendSingleNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client, logger: discardLogger()}

	require.NoError(t, svc.SendSingleNotification(t.Context(), "tok", service.PushMessage{Title: "title", Body: "body"}))
	require.Len(t, client.sent, 1)
	assert.Equal(t, "tok", client.sent[0].Token)
}

func TestNewFirebaseService_WithoutCredentials(t *testing.T) {
	svc, err := NewFirebaseService(t.Context(), &config.Config{}, discardLogger())
	require.NoError(t, err)

	result, err := svc.SendBatchNotification(t.Context(), []string{"a", "b"}, service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)
}
