package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/commonmodel/sync-engine/internal/entity"
)

// Store dispatches normalized upserts and deletes to the per-entity
// repositories. Deletes of absent keys are no-ops at the SQL level, which
// is what makes redelivered tombstones safe.
type Store struct {
	Users         *UserRepository
	Accounts      *AccountRepository
	Contacts      *ContactRepository
	Leads         *LeadRepository
	Opportunities *OpportunityRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		Users:         NewUserRepository(db),
		Accounts:      NewAccountRepository(db),
		Contacts:      NewContactRepository(db),
		Leads:         NewLeadRepository(db),
		Opportunities: NewOpportunityRepository(db),
	}
}

func (s *Store) Upsert(ctx context.Context, rec entity.Record) error {
	switch r := rec.(type) {
	case *entity.User:
		return s.Users.Upsert(ctx, r)
	case *entity.Account:
		return s.Accounts.Upsert(ctx, r)
	case *entity.Contact:
		return s.Contacts.Upsert(ctx, r)
	case *entity.Lead:
		return s.Leads.Upsert(ctx, r)
	case *entity.Opportunity:
		return s.Opportunities.Upsert(ctx, r)
	default:
		return fmt.Errorf("no repository for entity kind %q", rec.Kind())
	}
}

func (s *Store) Delete(ctx context.Context, kind string, key entity.NaturalKey) error {
	switch kind {
	case entity.KindUser:
		return s.Users.Delete(ctx, key)
	case entity.KindAccount:
		return s.Accounts.Delete(ctx, key)
	case entity.KindContact:
		return s.Contacts.Delete(ctx, key)
	case entity.KindLead:
		return s.Leads.Delete(ctx, key)
	case entity.KindOpportunity:
		return s.Opportunities.Delete(ctx, key)
	default:
		return fmt.Errorf("no repository for entity kind %q", kind)
	}
}

// listJSON renders a sub-collection for a jsonb column. A nil slice becomes
// [] so the stored document is always an array.
func listJSON[T any](list []T) ([]byte, error) {
	if list == nil {
		list = []T{}
	}
	return json.Marshal(list)
}
