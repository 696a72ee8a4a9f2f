package amqp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(action, message, requestID string, details map[string]interface{})  {}
func (nopLogger) Debug(action, message, requestID string, details map[string]interface{}) {}
func (nopLogger) Warn(action, message, requestID string, details map[string]interface{})  {}
func (nopLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
}

type recordingService struct {
	orderIDs []int
	err      error
}

func (s *recordingService) Start(ctx context.Context) error    { return nil }
func (s *recordingService) Shutdown(ctx context.Context) error { return nil }
func (s *recordingService) ProcessOrder(ctx context.Context, orderID int) error {
	s.orderIDs = append(s.orderIDs, orderID)
	return s.err
}

func TestHandleJob(t *testing.T) {
	svc := &recordingService{}
	h := NewFulfillmentHandler(svc, nopLogger{})

	err := h.HandleJob(context.Background(), []byte(`{"order_id": 42}`))
	require.NoError(t, err)
	assert.Equal(t, []int{42}, svc.orderIDs)
}

func TestHandleJobMalformedMessage(t *testing.T) {
	svc := &recordingService{}
	h := NewFulfillmentHandler(svc, nopLogger{})

	err := h.HandleJob(context.Background(), []byte("not json"))
	require.Error(t, err)
	assert.Empty(t, svc.orderIDs, "a malformed message must never reach the scheduler")
}
