package lexicon

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/lingvodoc-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

// LinkedGroup calls the linked_group procedure for the entry entryID
// through the linking field fieldID. Each result row is returned as its
// ordered column values.
func (s *Store) LinkedGroup(ctx context.Context, fieldID, entryID domain.CompositeID) (domain.CognateGroup, error) {
	rows, err := postgres.QuerierFromCtx(ctx, s.db).Query(ctx,
		"SELECT * FROM linked_group($1, $2, $3, $4)",
		fieldID.ClientID, fieldID.ObjectID, entryID.ClientID, entryID.ObjectID)
	if err != nil {
		return nil, postgres.MapError(err, "linked group of entry", entryID)
	}
	defer rows.Close()

	group := domain.CognateGroup{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, postgres.MapError(fmt.Errorf("scan: %w", err), "linked group of entry", entryID)
		}
		group = append(group, values)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "linked group of entry", entryID)
	}
	return group, nil
}

// linkedGroupSignature is the regprocedure of the function LinkedGroup calls.
const linkedGroupSignature = "linked_group(bigint,bigint,bigint,bigint)"

// CheckSchema reports an error when the linked_group function is missing.
func (s *Store) CheckSchema(ctx context.Context) error {
	var present bool
	err := postgres.QuerierFromCtx(ctx, s.db).
		QueryRow(ctx, "SELECT to_regprocedure($1) IS NOT NULL", linkedGroupSignature).
		Scan(&present)
	if err != nil {
		return fmt.Errorf("check schema: %w", err)
	}
	if !present {
		return fmt.Errorf("check schema: function %s is not defined", linkedGroupSignature)
	}
	return nil
}
