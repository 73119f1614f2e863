// Package cognates builds the cognate report: it resolves the language
// forest, classifies the fields of every perspective, streams the entries of
// qualifying perspectives together with their cognate groups and assembles
// the nested JSON document.
package cognates

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/lingvodoc-backend/internal/config"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
	"github.com/heartmarshall/lingvodoc-backend/pkg/stream"
)

type lexiconStore interface {
	LanguageIDsByTitle(ctx context.Context, title string) ([]domain.CompositeID, error)
	Languages(ctx context.Context, filter domain.LanguageFilter) ([]domain.LanguageNode, error)
	LanguageTitles(ctx context.Context, ids []domain.CompositeID, onlyInTOC bool) (map[domain.CompositeID][]string, error)
	Dictionaries(ctx context.Context, languageIDs []domain.CompositeID) ([]domain.Dictionary, error)
	Perspectives(ctx context.Context, dictionaryIDs []domain.CompositeID) ([]domain.Perspective, error)

	// Streams
	Fields(ctx context.Context, perspectives []domain.Perspective, localeLimit, fetchSize int) (stream.Cursor[domain.FieldRow], error)
	Entities(ctx context.Context, perspectiveID domain.CompositeID, fieldIDs []domain.CompositeID, fetchSize int) (stream.Cursor[domain.EntityRow], error)

	LinkedGroup(ctx context.Context, fieldID, entryID domain.CompositeID) (domain.CognateGroup, error)
}

type txManager interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

type reportMetrics interface {
	ReportFinished(outcome string, elapsed time.Duration)
	PerspectiveClassified(emitted bool)
	EntriesEmitted(n int)
}

// Report outcomes passed to reportMetrics.
const (
	OutcomeOK         = "ok"
	OutcomeResolution = "resolution_error"
	OutcomeInvalid    = "invalid"
	OutcomeFailed     = "failed"
)

// Service builds cognate reports.
type Service struct {
	store      lexiconStore
	tx         txManager
	metrics    reportMetrics
	classifier *Classifier
	cfg        config.ReportConfig
	log        *slog.Logger
}

// NewService creates a new cognates service.
func NewService(
	log *slog.Logger,
	store lexiconStore,
	tx txManager,
	metrics reportMetrics,
	classifier *Classifier,
	cfg config.ReportConfig,
) *Service {
	return &Service{
		store:      store,
		tx:         tx,
		metrics:    metrics,
		classifier: classifier,
		cfg:        cfg,
		log:        log.With("service", "cognates"),
	}
}
