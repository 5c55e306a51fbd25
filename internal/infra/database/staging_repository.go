package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/commonmodel/sync-engine/internal/entity"
)

// Staging tables live in their own schema, one per (provider, object),
// e.g. supaglue.salesforce_user. The ingestion process owns them; we only
// read.
const stagingSchema = "supaglue"

var identPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

type StagingRepository struct {
	DB *sql.DB
}

func NewStagingRepository(db *sql.DB) *StagingRepository {
	return &StagingRepository{DB: db}
}

// FetchNewerThan reads the scope's staged rows in ascending last-modified
// order. since == nil means first run: the whole table.
func (r *StagingRepository) FetchNewerThan(ctx context.Context, providerName, object string, since *time.Time) ([]entity.RawRow, error) {
	table, err := stagingTable(providerName, object)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT _supaglue_raw_data, _supaglue_is_deleted, _supaglue_last_modified_at
		FROM %s
		ORDER BY _supaglue_last_modified_at ASC`, table)

	var rows *sql.Rows
	if since != nil {
		query = fmt.Sprintf(`
		SELECT _supaglue_raw_data, _supaglue_is_deleted, _supaglue_last_modified_at
		FROM %s
		WHERE _supaglue_last_modified_at > $1
		ORDER BY _supaglue_last_modified_at ASC`, table)
		rows, err = r.DB.QueryContext(ctx, query, *since)
	} else {
		rows, err = r.DB.QueryContext(ctx, query)
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "42P01" { // undefined_table
			return nil, fmt.Errorf("no staging table %s: %w", table, err)
		}
		return nil, err
	}
	defer rows.Close()

	var out []entity.RawRow
	for rows.Next() {
		var raw []byte
		var isDeleted bool
		var lastModified time.Time

		if err := rows.Scan(&raw, &isDeleted, &lastModified); err != nil {
			return nil, err
		}

		fields, err := rawFields(raw)
		if err != nil {
			return nil, fmt.Errorf("decode staged row in %s: %w", table, err)
		}

		out = append(out, entity.RawRow{
			Fields:         fields,
			IsDeleted:      isDeleted,
			LastModifiedAt: lastModified.UTC(),
		})
	}
	return out, rows.Err()
}

// Identifiers come from the webhook payload; validate them before they go
// anywhere near a query string.
func stagingTable(providerName, object string) (string, error) {
	provider := strings.ToLower(providerName)
	obj := strings.ToLower(object)
	if !identPattern.MatchString(provider) || !identPattern.MatchString(obj) {
		return "", fmt.Errorf("invalid staging identifier %q/%q", providerName, object)
	}
	return fmt.Sprintf("%s.%s_%s", stagingSchema, provider, obj), nil
}

// rawFields flattens the staged jsonb document to the text values the
// mappers consume, the same projection ->> would give. Nulls are dropped.
func rawFields(raw []byte) (map[string]string, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(doc))
	for k, v := range doc {
		switch t := v.(type) {
		case nil:
			// absent
		case string:
			fields[k] = t
		case bool:
			fields[k] = strconv.FormatBool(t)
		case float64:
			fields[k] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			b, err := json.Marshal(t)
			if err != nil {
				return nil, err
			}
			fields[k] = string(b)
		}
	}
	return fields, nil
}
