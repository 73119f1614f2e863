package cognates

//go:generate moq -out lexicon_store_mock_test.go -pkg cognates . lexiconStore
//go:generate moq -out tx_manager_mock_test.go -pkg cognates . txManager
//go:generate moq -out report_metrics_mock_test.go -pkg cognates . reportMetrics

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/heartmarshall/lingvodoc-backend/internal/config"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
	"github.com/heartmarshall/lingvodoc-backend/pkg/stream"
)

func id(cid, oid int64) domain.CompositeID { return domain.NewCompositeID(cid, oid) }

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// In-memory lexicon
// ---------------------------------------------------------------------------

type fakeLanguage struct {
	id      domain.CompositeID
	parent  domain.CompositeID
	title   []string
	toc     bool
	deleted bool
}

type fakeDictionary struct {
	id       domain.CompositeID
	language domain.CompositeID
	title    []string
}

type fakePerspective struct {
	id         domain.CompositeID
	dictionary domain.CompositeID
	title      []string
}

type fakeField struct {
	perspective domain.CompositeID
	field       domain.CompositeID
	title       []string
	position    int
}

type fakeEntity struct {
	perspective domain.CompositeID
	entry       domain.CompositeID
	field       domain.CompositeID
	content     *string
}

// fakeLexicon mimics the filtering and ordering of the postgres store.
type fakeLexicon struct {
	languages    []fakeLanguage
	dictionaries []fakeDictionary
	perspectives []fakePerspective
	fields       []fakeField
	entities     []fakeEntity
	groups       map[domain.CompositeID]domain.CognateGroup

	fieldCursors  []*stream.SliceCursor[domain.FieldRow]
	entityCursors []*stream.SliceCursor[domain.EntityRow]
}

func idLess(a, b domain.CompositeID) bool {
	if a.ClientID != b.ClientID {
		return a.ClientID < b.ClientID
	}
	return a.ObjectID < b.ObjectID
}

func idSet(ids []domain.CompositeID) map[domain.CompositeID]bool {
	set := make(map[domain.CompositeID]bool, len(ids))
	for _, i := range ids {
		set[i] = true
	}
	return set
}

func (f *fakeLexicon) mock() *lexiconStoreMock {
	return &lexiconStoreMock{
		LanguageIDsByTitleFunc: func(_ context.Context, title string) ([]domain.CompositeID, error) {
			var ids []domain.CompositeID
			for _, l := range f.languages {
				for _, t := range l.title {
					if strings.ToLower(t) == strings.ToLower(title) {
						ids = append(ids, l.id)
						break
					}
				}
			}
			sort.Slice(ids, func(i, j int) bool { return idLess(ids[i], ids[j]) })
			return ids, nil
		},
		LanguagesFunc: func(_ context.Context, filter domain.LanguageFilter) ([]domain.LanguageNode, error) {
			parents, ids := idSet(filter.ParentIn), idSet(filter.IDIn)
			out := []domain.LanguageNode{}
			for _, l := range f.languages {
				switch {
				case l.deleted:
				case filter.Parentless && !l.parent.IsZero():
				case filter.ParentIn != nil && !parents[l.parent]:
				case filter.IDIn != nil && !ids[l.id]:
				default:
					out = append(out, domain.LanguageNode{ID: l.id, ParentID: l.parent})
				}
			}
			sort.Slice(out, func(i, j int) bool { return idLess(out[i].ID, out[j].ID) })
			return out, nil
		},
		LanguageTitlesFunc: func(_ context.Context, ids []domain.CompositeID, onlyInTOC bool) (map[domain.CompositeID][]string, error) {
			set := idSet(ids)
			out := make(map[domain.CompositeID][]string)
			for _, l := range f.languages {
				if set[l.id] && len(l.title) > 0 && (!onlyInTOC || l.toc) {
					out[l.id] = l.title
				}
			}
			return out, nil
		},
		DictionariesFunc: func(_ context.Context, languageIDs []domain.CompositeID) ([]domain.Dictionary, error) {
			set := idSet(languageIDs)
			out := []domain.Dictionary{}
			for _, d := range f.dictionaries {
				if set[d.language] {
					out = append(out, domain.Dictionary{ID: d.id, LanguageID: d.language, Title: d.title})
				}
			}
			sort.Slice(out, func(i, j int) bool { return idLess(out[i].ID, out[j].ID) })
			return out, nil
		},
		PerspectivesFunc: func(_ context.Context, dictionaryIDs []domain.CompositeID) ([]domain.Perspective, error) {
			set := idSet(dictionaryIDs)
			out := []domain.Perspective{}
			for _, p := range f.perspectives {
				if set[p.dictionary] {
					out = append(out, domain.Perspective{ID: p.id, DictionaryID: p.dictionary, Title: p.title})
				}
			}
			sort.Slice(out, func(i, j int) bool { return idLess(out[i].ID, out[j].ID) })
			return out, nil
		},
		FieldsFunc: func(_ context.Context, perspectives []domain.Perspective, _, _ int) (stream.Cursor[domain.FieldRow], error) {
			var rows []domain.FieldRow
			for _, p := range perspectives {
				var group []domain.FieldRow
				for _, fl := range f.fields {
					if fl.perspective == p.ID {
						group = append(group, domain.FieldRow{
							PerspectiveID: p.ID,
							FieldID:       fl.field,
							Title:         fl.title,
							Position:      fl.position,
							Level:         p.Level,
						})
					}
				}
				sort.SliceStable(group, func(i, j int) bool { return idLess(group[i].FieldID, group[j].FieldID) })
				rows = append(rows, group...)
			}
			cur := stream.FromSlice(rows)
			f.fieldCursors = append(f.fieldCursors, cur)
			return cur, nil
		},
		EntitiesFunc: func(_ context.Context, perspectiveID domain.CompositeID, fieldIDs []domain.CompositeID, _ int) (stream.Cursor[domain.EntityRow], error) {
			set := idSet(fieldIDs)
			var rows []domain.EntityRow
			for _, e := range f.entities {
				if e.perspective == perspectiveID && set[e.field] {
					rows = append(rows, domain.EntityRow{EntryID: e.entry, FieldID: e.field, Content: e.content})
				}
			}
			sort.SliceStable(rows, func(i, j int) bool {
				if rows[i].EntryID != rows[j].EntryID {
					return idLess(rows[i].EntryID, rows[j].EntryID)
				}
				return idLess(rows[i].FieldID, rows[j].FieldID)
			})
			cur := stream.FromSlice(rows)
			f.entityCursors = append(f.entityCursors, cur)
			return cur, nil
		},
		LinkedGroupFunc: func(_ context.Context, _, entryID domain.CompositeID) (domain.CognateGroup, error) {
			if g, ok := f.groups[entryID]; ok {
				return g, nil
			}
			return domain.CognateGroup{}, nil
		},
	}
}

// ---------------------------------------------------------------------------
// Service wiring
// ---------------------------------------------------------------------------

func defaultClassifierConfig() config.ClassifierConfig {
	return config.ClassifierConfig{
		TranscriptionKeywords: []string{"transcription", "word", "транскрипция", "слово", "лексема", "праформа"},
		TranslationKeywords:   []string{"translation", "meaning", "перевод", "значение"},
		ExcludeKeywords:       []string{"affix"},
		CognateFieldClientID:  66,
		CognateFieldObjectID:  25,
	}
}

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(defaultClassifierConfig())
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return c
}

var testReportConfig = config.ReportConfig{FetchSize: 100, DefaultLimit: 10, LocaleLimit: 2}

func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInSnapshotFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func defaultMetricsMock() *reportMetricsMock {
	return &reportMetricsMock{
		ReportFinishedFunc:        func(string, time.Duration) {},
		PerspectiveClassifiedFunc: func(bool) {},
		EntriesEmittedFunc:        func(int) {},
	}
}

func newTestService(t *testing.T, store lexiconStore, metrics *reportMetricsMock) *Service {
	t.Helper()
	if metrics == nil {
		metrics = defaultMetricsMock()
	}
	return NewService(
		slog.Default(),
		store,
		defaultTxMock(),
		metrics,
		newTestClassifier(t),
		testReportConfig,
	)
}

// cognateFields gives perspective p a word / translation / cognates field set.
func cognateFields(p domain.CompositeID, wordField, translationField domain.CompositeID) []fakeField {
	return []fakeField{
		{perspective: p, field: wordField, title: []string{"слово", "word"}, position: 1},
		{perspective: p, field: translationField, title: []string{"перевод", "translation"}, position: 2},
		{perspective: p, field: id(66, 25), title: []string{"cognates"}, position: 3},
	}
}
