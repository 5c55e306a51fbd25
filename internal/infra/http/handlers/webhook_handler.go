package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/commonmodel/sync-engine/internal/infra/http/middleware"
	"github.com/commonmodel/sync-engine/internal/infra/queue"
	"github.com/commonmodel/sync-engine/internal/usecase"
)

// WebhookHandler is the trigger ingress. It acknowledges fast and hands the
// event to the queue; classification (skip vs run) happens in the worker so
// skip reasons show up in run metrics instead of dying at the edge.
type WebhookHandler struct {
	Producer queue.QueueProducerInterface
}

func NewWebhookHandler(producer queue.QueueProducerInterface) *WebhookHandler {
	return &WebhookHandler{Producer: producer}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var event usecase.TriggerEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad JSON", 400)
		return
	}

	// Some senders omit run_id; checkpointing needs one per delivery.
	if event.RunID == "" {
		event.RunID = uuid.New().String()
	}

	if err := h.Producer.PublishSyncEvent(r.Context(), event); err != nil {
		log.Printf("❌ Failed to enqueue sync event %s: %v", event.RunID, err)
		w.WriteHeader(500)
		return
	}

	middleware.RecordEventAccepted(event.ProviderName, event.Object)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"run_id": event.RunID})
}
