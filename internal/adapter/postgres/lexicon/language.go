package lexicon

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/lingvodoc-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

type languageRow struct {
	ClientID       int64  `db:"client_id"`
	ObjectID       int64  `db:"object_id"`
	ParentClientID *int64 `db:"parent_client_id"`
	ParentObjectID *int64 `db:"parent_object_id"`
}

func (r languageRow) toDomain() domain.LanguageNode {
	n := domain.LanguageNode{ID: domain.NewCompositeID(r.ClientID, r.ObjectID)}
	if r.ParentClientID != nil && r.ParentObjectID != nil {
		n.ParentID = domain.NewCompositeID(*r.ParentClientID, *r.ParentObjectID)
	}
	return n
}

// LanguageIDsByTitle returns the ids of languages having a title variant
// equal to title, compared case-insensitively.
func (s *Store) LanguageIDsByTitle(ctx context.Context, title string) ([]domain.CompositeID, error) {
	b := joinTitle(
		psql.Select("l.client_id", "l.object_id").Distinct().From("language l"),
		"l",
	).
		Where("lower(a.content) = lower(?)", title).
		OrderBy("l.client_id", "l.object_id")

	sql, args, err := toSQL(b, "language ids by title")
	if err != nil {
		return nil, err
	}

	var rows []languageRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, s.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("language ids by title %q: %w", title, err)
	}

	ids := make([]domain.CompositeID, len(rows))
	for i, r := range rows {
		ids[i] = domain.NewCompositeID(r.ClientID, r.ObjectID)
	}
	return ids, nil
}

// Languages returns non-deleted languages matching filter, ordered by id.
func (s *Store) Languages(ctx context.Context, filter domain.LanguageFilter) ([]domain.LanguageNode, error) {
	if (filter.ParentIn != nil && len(filter.ParentIn) == 0) || (filter.IDIn != nil && len(filter.IDIn) == 0) {
		return []domain.LanguageNode{}, nil
	}

	b := psql.
		Select("l.client_id", "l.object_id", "l.parent_client_id", "l.parent_object_id").
		From("language l").
		Where("l.marked_for_deletion = false").
		OrderBy("l.client_id", "l.object_id")

	if filter.Parentless {
		b = b.Where("l.parent_client_id IS NULL AND l.parent_object_id IS NULL")
	}
	if filter.ParentIn != nil {
		b = b.Where(pairIn("l.parent_client_id", "l.parent_object_id", filter.ParentIn))
	}
	if filter.IDIn != nil {
		b = b.Where(pairIn("l.client_id", "l.object_id", filter.IDIn))
	}

	sql, args, err := toSQL(b, "languages")
	if err != nil {
		return nil, err
	}

	var rows []languageRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, s.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select languages: %w", err)
	}

	nodes := make([]domain.LanguageNode, len(rows))
	for i, r := range rows {
		nodes[i] = r.toDomain()
	}
	return nodes, nil
}

// LanguageTitles returns the aggregated titles of the given languages.
// Languages without a live title are absent from the result; with onlyInTOC
// so are languages not marked for the table of contents.
func (s *Store) LanguageTitles(ctx context.Context, ids []domain.CompositeID, onlyInTOC bool) (map[domain.CompositeID][]string, error) {
	titles := make(map[domain.CompositeID][]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	b := joinTitle(
		psql.Select("l.client_id", "l.object_id", titleAgg).From("language l"),
		"l",
	).
		Where(pairIn("l.client_id", "l.object_id", ids)).
		GroupBy("l.client_id", "l.object_id").
		OrderBy("l.client_id", "l.object_id")

	if onlyInTOC {
		b = b.Where("l.additional_metadata -> 'toc_mark' = 'true'::jsonb")
	}

	sql, args, err := toSQL(b, "language titles")
	if err != nil {
		return nil, err
	}

	var rows []titledRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, s.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select language titles: %w", err)
	}

	for _, r := range rows {
		titles[domain.NewCompositeID(r.ClientID, r.ObjectID)] = r.Title
	}
	return titles, nil
}
