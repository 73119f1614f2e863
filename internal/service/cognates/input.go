package cognates

import (
	"strings"

	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

// ListInput holds the parameters of one cognate report.
type ListInput struct {
	// OnlyInTOC keeps only languages marked for the table of contents.
	OnlyInTOC bool
	// LanguageGroup selects the children of the languages with this title.
	LanguageGroup *string
	// LanguageTitle selects the languages with this title.
	LanguageTitle *string
	// Offset and Limit page over the resolved perspectives. Limit 0 means
	// the configured default, never an empty page; Limit is ignored when
	// PerspectiveID is set.
	Offset int
	Limit  int
	// PerspectiveID restricts the report to one perspective.
	PerspectiveID *domain.CompositeID
	// Debug logs every block and entry at debug level.
	Debug bool
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.LanguageGroup != nil && strings.TrimSpace(*i.LanguageGroup) == "" {
		errs = append(errs, domain.FieldError{Field: "language_group", Message: "must not be empty"})
	}
	if i.LanguageTitle != nil && strings.TrimSpace(*i.LanguageTitle) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "must not be empty"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.PerspectiveID != nil && i.PerspectiveID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "perspective", Message: "must not be zero"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
