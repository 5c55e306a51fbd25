package usecase

import (
	"time"

	"github.com/commonmodel/sync-engine/internal/entity"
)

// TriggerEvent is the sync-completion notification delivered by the
// provider's webhook. Field names follow the wire payload.
type TriggerEvent struct {
	Type             string `json:"type"`
	ObjectType       string `json:"object_type"`
	Object           string `json:"object"`
	WebhookEventType string `json:"webhook_event_type"`
	RunID            string `json:"run_id"`
	ConnectionID     string `json:"connection_id"`
	CustomerID       string `json:"customer_id"`
	ProviderName     string `json:"provider_name"`
	Result           string `json:"result"`
	NumRecordsSynced int    `json:"num_records_synced,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"`
}

// Scope resolves the watermark scope this event addresses.
func (e TriggerEvent) Scope() entity.SyncScope {
	return entity.SyncScope{
		Type:         e.Type,
		ObjectType:   e.ObjectType,
		Object:       e.Object,
		ProviderName: e.ProviderName,
		CustomerID:   e.CustomerID,
	}
}

// TransformOutput is what a finished run reports: either a skip with its
// reason, or the applied row count plus the watermark committed (nil when
// the batch was empty or did not advance it).
type TransformOutput struct {
	Skipped      bool       `json:"skipped"`
	Reason       string     `json:"reason,omitempty"`
	Object       string     `json:"object,omitempty"`
	RowsAffected int        `json:"rows_affected"`
	NewWatermark *time.Time `json:"new_watermark,omitempty"`
}
