package lexicon

import (
	"context"

	postgres "github.com/heartmarshall/lingvodoc-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
	"github.com/heartmarshall/lingvodoc-backend/pkg/stream"
)

type entityRow struct {
	EntryClientID int64   `db:"entry_client_id"`
	EntryObjectID int64   `db:"entry_object_id"`
	FieldClientID int64   `db:"field_client_id"`
	FieldObjectID int64   `db:"field_object_id"`
	Content       *string `db:"content"`
}

func (r entityRow) toDomain() domain.EntityRow {
	return domain.EntityRow{
		EntryID: domain.NewCompositeID(r.EntryClientID, r.EntryObjectID),
		FieldID: domain.NewCompositeID(r.FieldClientID, r.FieldObjectID),
		Content: r.Content,
	}
}

// Entities streams the live, published and accepted entities of the lexical
// entries of perspectiveID that fill one of fieldIDs, ordered by entry, then
// field, then entity id.
//
// The cursor must be read inside a transaction.
func (s *Store) Entities(
	ctx context.Context,
	perspectiveID domain.CompositeID,
	fieldIDs []domain.CompositeID,
	fetchSize int,
) (stream.Cursor[domain.EntityRow], error) {
	if len(fieldIDs) == 0 {
		return stream.FromSlice[domain.EntityRow](nil), nil
	}

	b := psql.
		Select(
			"le.client_id AS entry_client_id",
			"le.object_id AS entry_object_id",
			"e.field_client_id",
			"e.field_object_id",
			"e.content",
		).
		From("lexicalentry le").
		Join("entity e ON e.parent_client_id = le.client_id AND e.parent_object_id = le.object_id").
		Join("publishingentity pe ON pe.client_id = e.client_id AND pe.object_id = e.object_id").
		Where("le.parent_client_id = ? AND le.parent_object_id = ?", perspectiveID.ClientID, perspectiveID.ObjectID).
		Where(pairIn("e.field_client_id", "e.field_object_id", fieldIDs)).
		Where("e.marked_for_deletion = false").
		Where("pe.published = true AND pe.accepted = true").
		OrderBy(
			"le.client_id", "le.object_id",
			"e.field_client_id", "e.field_object_id",
			"e.client_id", "e.object_id",
		)

	sql, args, err := toSQL(b, "entities")
	if err != nil {
		return nil, err
	}

	cur, err := postgres.OpenCursor(ctx, postgres.QuerierFromCtx(ctx, s.db), s.cursorName("entities"), fetchSize, entityRow.toDomain, sql, args...)
	if err != nil {
		return nil, err
	}
	return cur, nil
}
