package entity

import "time"

// SyncScope keys one independent sync stream and its watermark.
type SyncScope struct {
	Type         string
	ObjectType   string
	Object       string
	ProviderName string
	CustomerID   string
}

// Watermark is the max _supaglue_last_modified_at successfully processed
// for a scope. Absence (no row) means "never synced"; it is not the epoch.
type Watermark struct {
	Scope             SyncScope
	MaxLastModifiedAt time.Time
}
