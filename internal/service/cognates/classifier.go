package cognates

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/heartmarshall/lingvodoc-backend/internal/config"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

// Word boundaries are Unicode-aware: RE2's \b only knows ASCII word
// characters and would never match a Cyrillic keyword.
const (
	boundaryBefore = `(?:^|[^\p{L}\p{N}_])`
	boundaryAfter  = `(?:$|[^\p{L}\p{N}_])`
)

// FieldRef is a chosen field: its id and joined title. It serializes as
// [[cid, oid], "title"].
type FieldRef struct {
	ID    domain.CompositeID
	Title string
}

func (f FieldRef) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{f.ID, f.Title})
}

// Classification is the outcome for a qualifying perspective.
type Classification struct {
	PerspectiveID domain.CompositeID
	Transcription FieldRef
	Translation   FieldRef
}

// FieldIDs returns the transcription and translation field ids.
func (c Classification) FieldIDs() []domain.CompositeID {
	return []domain.CompositeID{c.Transcription.ID, c.Translation.ID}
}

// Classifier picks the transcription and translation fields of a
// perspective by whole-word keyword matches on the field titles.
type Classifier struct {
	transcription []*regexp.Regexp
	translation   []*regexp.Regexp
	exclude       []*regexp.Regexp
	cognateField  domain.CompositeID
}

// NewClassifier compiles the keyword lists of cfg.
func NewClassifier(cfg config.ClassifierConfig) (*Classifier, error) {
	transcription, err := compileKeywords(cfg.TranscriptionKeywords)
	if err != nil {
		return nil, fmt.Errorf("transcription keywords: %w", err)
	}
	translation, err := compileKeywords(cfg.TranslationKeywords)
	if err != nil {
		return nil, fmt.Errorf("translation keywords: %w", err)
	}
	exclude, err := compileKeywords(cfg.ExcludeKeywords)
	if err != nil {
		return nil, fmt.Errorf("exclude keywords: %w", err)
	}

	return &Classifier{
		transcription: transcription,
		translation:   translation,
		exclude:       exclude,
		cognateField:  domain.NewCompositeID(cfg.CognateFieldClientID, cfg.CognateFieldObjectID),
	}, nil
}

func compileKeywords(keywords []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		kw = domain.NormalizeTitle(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		re, err := regexp.Compile(boundaryBefore + regexp.QuoteMeta(kw) + boundaryAfter)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", kw, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// CognateField returns the id of the field linking entries into cognate groups.
func (c *Classifier) CognateField() domain.CompositeID {
	return c.cognateField
}

// Classify scans the fields of one perspective in position order. The first
// matching field wins per category and the scan stops as soon as both fields
// are chosen and the cognate field was seen. The perspective qualifies only
// if all three hold.
func (c *Classifier) Classify(fields []domain.FieldRow) (Classification, bool) {
	var out Classification
	if len(fields) == 0 {
		return out, false
	}
	out.PerspectiveID = fields[0].PerspectiveID

	sorted := make([]domain.FieldRow, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	var haveTranscription, haveTranslation, withCognates bool

	for _, f := range sorted {
		title := domain.JoinTitle(f.Title)
		normalized := domain.NormalizeTitle(title)
		excluded := matchesAny(c.exclude, normalized)

		if !haveTranscription && !excluded && matchesAny(c.transcription, normalized) {
			out.Transcription = FieldRef{ID: f.FieldID, Title: title}
			haveTranscription = true
		}
		if !haveTranslation && !excluded && matchesAny(c.translation, normalized) {
			out.Translation = FieldRef{ID: f.FieldID, Title: title}
			haveTranslation = true
		}
		if f.FieldID == c.cognateField {
			withCognates = true
		}

		if haveTranscription && haveTranslation && withCognates {
			break
		}
	}

	return out, haveTranscription && haveTranslation && withCognates
}
