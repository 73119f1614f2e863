package lexicon

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/lingvodoc-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

// childRow is a titled row together with its parent id.
type childRow struct {
	ParentClientID int64    `db:"parent_client_id"`
	ParentObjectID int64    `db:"parent_object_id"`
	ClientID       int64    `db:"client_id"`
	ObjectID       int64    `db:"object_id"`
	Title          []string `db:"title"`
}

// selectChildren loads live, titled rows of table whose parent is in parents.
func (s *Store) selectChildren(ctx context.Context, table string, parents []domain.CompositeID) ([]childRow, error) {
	b := joinTitle(
		psql.Select("t.parent_client_id", "t.parent_object_id", "t.client_id", "t.object_id", titleAgg).
			From(table+" t"),
		"t",
	).
		Where("t.marked_for_deletion = false").
		Where(pairIn("t.parent_client_id", "t.parent_object_id", parents)).
		GroupBy("t.parent_client_id", "t.parent_object_id", "t.client_id", "t.object_id").
		OrderBy("t.client_id", "t.object_id")

	sql, args, err := toSQL(b, table)
	if err != nil {
		return nil, err
	}

	var rows []childRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, s.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return rows, nil
}

// Dictionaries returns the live, titled dictionaries of the given languages
// ordered by id. Level is left for the caller to fill in.
func (s *Store) Dictionaries(ctx context.Context, languageIDs []domain.CompositeID) ([]domain.Dictionary, error) {
	if len(languageIDs) == 0 {
		return []domain.Dictionary{}, nil
	}

	rows, err := s.selectChildren(ctx, "dictionary", languageIDs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Dictionary, len(rows))
	for i, r := range rows {
		out[i] = domain.Dictionary{
			ID:         domain.NewCompositeID(r.ClientID, r.ObjectID),
			LanguageID: domain.NewCompositeID(r.ParentClientID, r.ParentObjectID),
			Title:      r.Title,
		}
	}
	return out, nil
}

// Perspectives returns the live, titled perspectives of the given
// dictionaries ordered by id. Level is left for the caller to fill in.
func (s *Store) Perspectives(ctx context.Context, dictionaryIDs []domain.CompositeID) ([]domain.Perspective, error) {
	if len(dictionaryIDs) == 0 {
		return []domain.Perspective{}, nil
	}

	rows, err := s.selectChildren(ctx, "dictionaryperspective", dictionaryIDs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Perspective, len(rows))
	for i, r := range rows {
		out[i] = domain.Perspective{
			ID:           domain.NewCompositeID(r.ClientID, r.ObjectID),
			DictionaryID: domain.NewCompositeID(r.ParentClientID, r.ParentObjectID),
			Title:        r.Title,
		}
	}
	return out, nil
}
