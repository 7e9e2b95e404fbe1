package status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(context.Context) error {
	return f.err
}

func createTestLogData() *logging.LogData {
	logger := logging.SetupLogging()
	return logging.NewLogData(logger)
}

func TestHandler_GoodMethod(t *testing.T) {
	statusHandler := NewHandler(fakePinger{})
	req := httptest.NewRequest(http.MethodGet, "/status", nil)

	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.NoError(t, err)

	res := w.Result()
	assert.Equal(t, 200, res.StatusCode)
}

func TestHandler_NoDatabase(t *testing.T) {
	statusHandler := NewHandler(nil)
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()

	assert.NoError(t, statusHandler.Handler(w, req, createTestLogData()))
	assert.Equal(t, 200, w.Result().StatusCode)
}

func TestHandler_BadMethod(t *testing.T) {
	statusHandler := NewHandler(fakePinger{})
	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.Error(t, err)

	res := w.Result()
	assert.Equal(t, 400, res.StatusCode)
}

func TestHandler_DatabaseDown(t *testing.T) {
	statusHandler := NewHandler(fakePinger{err: errors.New("connection refused")})
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.ErrorContains(t, err, "connection refused")
	assert.Equal(t, http.StatusServiceUnavailable, w.Result().StatusCode)
}
