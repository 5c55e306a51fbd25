package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/commonmodel/sync-engine/internal/infra/http/handlers"
	"github.com/commonmodel/sync-engine/internal/usecase"
)

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishSyncEvent(ctx context.Context, event usecase.TriggerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestWebhookEnqueuesEvent(t *testing.T) {
	producer := new(MockQueueProducer)
	producer.On("PublishSyncEvent", mock.Anything, mock.MatchedBy(func(e usecase.TriggerEvent) bool {
		return e.Object == "User" && e.ProviderName == "salesforce" && e.RunID == "run-42"
	})).Return(nil)

	h := handlers.NewWebhookHandler(producer)

	body := `{
		"type": "object",
		"object_type": "standard",
		"object": "User",
		"webhook_event_type": "sync.complete",
		"run_id": "run-42",
		"customer_id": "cust-1",
		"provider_name": "salesforce",
		"result": "SUCCESS"
	}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/supaglue", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	producer.AssertExpectations(t)
}

func TestWebhookBackfillsRunID(t *testing.T) {
	producer := new(MockQueueProducer)
	producer.On("PublishSyncEvent", mock.Anything, mock.MatchedBy(func(e usecase.TriggerEvent) bool {
		return e.RunID != ""
	})).Return(nil)

	h := handlers.NewWebhookHandler(producer)

	body := `{"type": "object", "object": "Account", "provider_name": "salesforce"}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/supaglue", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["run_id"])
}

func TestWebhookRejectsBadJSON(t *testing.T) {
	producer := new(MockQueueProducer)
	h := handlers.NewWebhookHandler(producer)

	req := httptest.NewRequest(http.MethodPost, "/webhook/supaglue", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	producer.AssertNotCalled(t, "PublishSyncEvent", mock.Anything, mock.Anything)
}
