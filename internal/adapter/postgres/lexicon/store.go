// Package lexicon implements the read side of the lingvodoc schema used by
// the cognate report: the language forest, dictionaries, perspectives, their
// fields, published entities and the linked_group procedure.
//
// Queries are built with squirrel and scanned with pgxscan. Large row sets
// (fields, entities) are streamed through server-side cursors and therefore
// must be read inside a transaction.
package lexicon

import (
	"fmt"
	"sync/atomic"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/lingvodoc-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

// Store provides lexicon reads backed by PostgreSQL.
type Store struct {
	db  postgres.Querier
	seq atomic.Uint64
}

// New creates a new lexicon store.
func New(db postgres.Querier) *Store {
	return &Store{db: db}
}

// cursorName returns a name unique within this store's lifetime.
func (s *Store) cursorName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, s.seq.Add(1))
}

// ---------------------------------------------------------------------------
// Query building helpers
// ---------------------------------------------------------------------------

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// titleAgg aggregates the localized title of a row in a stable order.
const titleAgg = "array_agg(a.content ORDER BY a.locale_id, a.client_id, a.object_id) AS title"

// joinTitle joins the translation gist of the table aliased alias and its
// live, non-empty atoms (aliased g and a).
func joinTitle(b squirrel.SelectBuilder, alias string) squirrel.SelectBuilder {
	return b.
		Join(fmt.Sprintf(
			"translationgist g ON g.client_id = %[1]s.translation_gist_client_id AND g.object_id = %[1]s.translation_gist_object_id",
			alias)).
		Join("translationatom a ON a.parent_client_id = g.client_id AND a.parent_object_id = g.object_id").
		Where("g.marked_for_deletion = false").
		Where("a.marked_for_deletion = false").
		Where("length(a.content) > 0")
}

// pairIn matches the composite column pair (cidCol, oidCol) against ids,
// passed as two parallel bigint arrays.
func pairIn(cidCol, oidCol string, ids []domain.CompositeID) squirrel.Sqlizer {
	cids, oids := domain.SplitIDs(ids)
	return squirrel.Expr(
		fmt.Sprintf("(%s, %s) IN (SELECT * FROM unnest(?::bigint[], ?::bigint[]))", cidCol, oidCol),
		cids, oids,
	)
}

func toSQL(b squirrel.Sqlizer, what string) (string, []any, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build %s query: %w", what, err)
	}
	return sql, args, nil
}

// titledRow is the common shape of id + aggregated title rows.
type titledRow struct {
	ClientID int64    `db:"client_id"`
	ObjectID int64    `db:"object_id"`
	Title    []string `db:"title"`
}
