package entity

import "time"

// RawRow is one staged record as the ingestion process wrote it. The engine
// only ever reads these.
type RawRow struct {
	Fields         map[string]string
	IsDeleted      bool
	LastModifiedAt time.Time
}

// Field returns the raw provider field, "" when absent or null.
func (r RawRow) Field(name string) string {
	return r.Fields[name]
}

// MappedRow is the output of a row mapper: either a tombstone for Key or a
// fully materialized Record ready for upsert.
type MappedRow struct {
	Deleted        bool
	Kind           string
	Key            NaturalKey
	Record         Record // nil when Deleted
	LastModifiedAt time.Time
}

// RowMapper projects one raw staged row into a normalized outcome for the
// given tenant/provider pairing. Mappers are pure; coercion failures are the
// only errors they return.
type RowMapper func(row RawRow, customerID, providerName string) (MappedRow, error)
