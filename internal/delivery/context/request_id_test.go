package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_EchoContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := WithRequestScope(context.Background(), base, "req-42")
	logger.Info("hello")

	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Same(t, base, GetLoggerOrDefault(context.Background(), base))
}
