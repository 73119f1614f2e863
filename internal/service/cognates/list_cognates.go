package cognates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
	"github.com/heartmarshall/lingvodoc-backend/pkg/stream"
)

// ListCognates builds the cognate report for in. The whole run reads one
// snapshot; any store error or unresolvable filter aborts it without output.
func (s *Service) ListCognates(ctx context.Context, in ListInput) (*Report, error) {
	start := time.Now()

	if err := in.Validate(); err != nil {
		s.metrics.ReportFinished(OutcomeInvalid, time.Since(start))
		return nil, err
	}

	limit := in.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	var report *Report
	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.build(ctx, in, limit)
		return err
	})

	elapsed := time.Since(start)
	switch {
	case err == nil:
		s.metrics.ReportFinished(OutcomeOK, elapsed)
	case errors.Is(err, domain.ErrResolution):
		s.metrics.ReportFinished(OutcomeResolution, elapsed)
		s.log.InfoContext(ctx, "cognate report not resolved", "reason", err.Error())
		return nil, err
	default:
		s.metrics.ReportFinished(OutcomeFailed, elapsed)
		return nil, fmt.Errorf("cognate report: %w", err)
	}

	report.Stats.Elapsed = elapsed
	s.log.InfoContext(ctx, "cognate report built",
		"languages", len(report.Languages),
		"perspectives_scanned", report.Stats.PerspectivesScanned,
		"perspectives_emitted", report.Stats.PerspectivesEmitted,
		"entries", report.Stats.Entries,
		"bytes", len(report.JSON),
		"elapsed", elapsed,
	)
	return report, nil
}

func perspectiveKey(row domain.FieldRow) domain.CompositeID { return row.PerspectiveID }

func (s *Service) build(ctx context.Context, in ListInput, limit int) (_ *Report, err error) {
	h, err := s.resolve(ctx, in, limit)
	if err != nil {
		return nil, err
	}

	stats := Stats{
		Languages:            len(h.languages),
		Dictionaries:         len(h.dictionaries),
		PerspectivesResolved: len(h.perspectives),
	}

	fields, err := s.store.Fields(ctx, h.scan, s.cfg.LocaleLimit, s.cfg.FetchSize)
	if err != nil {
		return nil, fmt.Errorf("fields: %w", err)
	}
	defer func() {
		if cerr := fields.Close(ctx); cerr != nil && err == nil {
			err = fmt.Errorf("close fields: %w", cerr)
		}
	}()

	asm := newAssembler()
	groups := stream.GroupBy[domain.FieldRow, domain.CompositeID](fields, perspectiveKey, stream.Strict())

	for {
		pid, rows, ok, err := groups.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("fields: %w", err)
		}
		if !ok {
			break
		}
		stats.PerspectivesScanned++

		c, qualifies := s.classifier.Classify(rows)
		s.metrics.PerspectiveClassified(qualifies)
		if !qualifies {
			if in.Debug {
				s.log.DebugContext(ctx, "perspective skipped", "perspective", pid.String(), "fields", len(rows))
			}
			continue
		}

		n, err := s.emitPerspective(ctx, h, asm, c, in.Debug)
		if err != nil {
			return nil, err
		}
		stats.PerspectivesEmitted++
		stats.Entries += n
	}

	data, languages, err := asm.result()
	if err != nil {
		return nil, err
	}

	return &Report{JSON: data, Languages: languages, Stats: stats}, nil
}

// emitPerspective opens the blocks of a qualifying perspective and streams
// its entries into them. It returns the number of entries written.
func (s *Service) emitPerspective(ctx context.Context, h *hierarchy, asm *assembler, c Classification, debug bool) (n int, err error) {
	p, ok := h.perspective(c.PerspectiveID)
	if !ok {
		return 0, fmt.Errorf("perspective %s: %w", c.PerspectiveID, domain.ErrNotFound)
	}
	d, ok := h.dictionary(p.DictionaryID)
	if !ok {
		return 0, fmt.Errorf("dictionary %s: %w", p.DictionaryID, domain.ErrNotFound)
	}
	l, ok := h.language(d.LanguageID)
	if !ok {
		return 0, fmt.Errorf("language %s: %w", d.LanguageID, domain.ErrNotFound)
	}

	newLanguage, newDictionary := asm.enter(l, d, p, c)
	if debug {
		if newLanguage {
			s.log.DebugContext(ctx, "language", "id", l.ID.String(), "title", domain.JoinTitle(l.Title), "level", l.Level)
		}
		if newDictionary {
			s.log.DebugContext(ctx, "dictionary", "id", d.ID.String(), "title", domain.JoinTitle(d.Title))
		}
		s.log.DebugContext(ctx, "perspective", "id", p.ID.String(), "title", domain.JoinTitle(p.Title),
			"transcription", c.Transcription.Title, "translation", c.Translation.Title)
	}

	entries, err := s.openEntries(ctx, c)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := entries.Close(ctx); cerr != nil && err == nil {
			err = fmt.Errorf("close entities of %s: %w", c.PerspectiveID, cerr)
		}
	}()

	for {
		e, ok, err := entries.Next(ctx)
		if err != nil {
			return n, err
		}
		if !ok {
			break
		}
		if err := asm.add(e); err != nil {
			return n, err
		}
		n++

		if debug {
			s.log.DebugContext(ctx, "entry", "id", e.ID.String(),
				"transcription", texts(e.Transcription), "translation", texts(e.Translation), "cognates", len(e.Group))
		}
	}

	s.metrics.EntriesEmitted(n)
	return n, nil
}

// texts renders entity contents for logging.
func texts(values []*string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}
