package lexicon

import (
	"context"

	postgres "github.com/heartmarshall/lingvodoc-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
	"github.com/heartmarshall/lingvodoc-backend/pkg/stream"
)

type fieldRow struct {
	PerspectiveClientID int64    `db:"perspective_client_id"`
	PerspectiveObjectID int64    `db:"perspective_object_id"`
	FieldClientID       int64    `db:"field_client_id"`
	FieldObjectID       int64    `db:"field_object_id"`
	Title               []string `db:"title"`
	Position            int      `db:"position"`
}

// Fields streams the fields of the given perspectives. Rows come grouped by
// perspective, in the order the perspectives are passed, and carry the level
// of their perspective. Titles are lower-cased variants from locales up to
// localeLimit.
//
// The cursor must be read inside a transaction.
func (s *Store) Fields(
	ctx context.Context,
	perspectives []domain.Perspective,
	localeLimit int,
	fetchSize int,
) (stream.Cursor[domain.FieldRow], error) {
	if len(perspectives) == 0 {
		return stream.FromSlice[domain.FieldRow](nil), nil
	}

	ids := make([]domain.CompositeID, len(perspectives))
	levels := make(map[domain.CompositeID]int, len(perspectives))
	for i, p := range perspectives {
		ids[i] = p.ID
		levels[p.ID] = p.Level
	}
	cids, oids := domain.SplitIDs(ids)

	b := joinTitle(
		psql.Select(
			"pf.parent_client_id AS perspective_client_id",
			"pf.parent_object_id AS perspective_object_id",
			"f.client_id AS field_client_id",
			"f.object_id AS field_object_id",
			"array_agg(lower(a.content) ORDER BY a.locale_id, a.client_id, a.object_id) AS title",
			"min(pf.position) AS position",
		).
			From("dictionaryperspectivetofield pf").
			JoinClause(
				"JOIN unnest(?::bigint[], ?::bigint[]) WITH ORDINALITY AS p(client_id, object_id, ord) "+
					"ON p.client_id = pf.parent_client_id AND p.object_id = pf.parent_object_id",
				cids, oids).
			Join("field f ON f.client_id = pf.field_client_id AND f.object_id = pf.field_object_id"),
		"f",
	).
		Where("pf.marked_for_deletion = false").
		Where("f.marked_for_deletion = false").
		Where("a.locale_id <= ?", localeLimit).
		GroupBy("p.ord", "pf.parent_client_id", "pf.parent_object_id", "f.client_id", "f.object_id").
		OrderBy("p.ord", "f.client_id", "f.object_id")

	sql, args, err := toSQL(b, "fields")
	if err != nil {
		return nil, err
	}

	convert := func(r fieldRow) domain.FieldRow {
		pid := domain.NewCompositeID(r.PerspectiveClientID, r.PerspectiveObjectID)
		return domain.FieldRow{
			PerspectiveID: pid,
			FieldID:       domain.NewCompositeID(r.FieldClientID, r.FieldObjectID),
			Title:         r.Title,
			Position:      r.Position,
			Level:         levels[pid],
		}
	}

	cur, err := postgres.OpenCursor(ctx, postgres.QuerierFromCtx(ctx, s.db), s.cursorName("fields"), fetchSize, convert, sql, args...)
	if err != nil {
		return nil, err
	}
	return cur, nil
}
