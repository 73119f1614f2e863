package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
	"github.com/heartmarshall/lingvodoc-backend/internal/service/cognates"
	"github.com/heartmarshall/lingvodoc-backend/pkg/ctxutil"
)

// cognateLister is the service the handler drives.
type cognateLister interface {
	ListCognates(ctx context.Context, in cognates.ListInput) (*cognates.Report, error)
}

// Response headers carrying report statistics.
const (
	HeaderLanguages    = "X-Report-Languages"
	HeaderPerspectives = "X-Report-Perspectives"
	HeaderEntries      = "X-Report-Entries"
)

// CognatesHandler serves the cognate report.
type CognatesHandler struct {
	svc cognateLister
	log *slog.Logger
}

// NewCognatesHandler creates a CognatesHandler.
func NewCognatesHandler(svc cognateLister, logger *slog.Logger) *CognatesHandler {
	return &CognatesHandler{svc: svc, log: logger}
}

// List handles GET /api/v1/cognates. The body is the report document as
// produced by the service; statistics travel in X-Report-* headers.
func (h *CognatesHandler) List(w http.ResponseWriter, r *http.Request) {
	in, err := parseListInput(r.URL.Query())
	if err != nil {
		writeValidationError(w, err)
		return
	}

	report, err := h.svc.ListCognates(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeaderLanguages, strconv.Itoa(len(report.Languages)))
	w.Header().Set(HeaderPerspectives, strconv.Itoa(report.Stats.PerspectivesEmitted))
	w.Header().Set(HeaderEntries, strconv.Itoa(report.Stats.Entries))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report.JSON); err != nil {
		ctxutil.LoggerFromCtx(r.Context(), h.log).WarnContext(r.Context(), "write report", slog.String("error", err.Error()))
	}
}

func (h *CognatesHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrResolution):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "report timed out")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the response.
	default:
		ctxutil.LoggerFromCtx(r.Context(), h.log).ErrorContext(r.Context(), "cognate report failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseListInput reads the report parameters from the query string. Only
// syntax is checked here; ListInput.Validate owns the value rules.
func parseListInput(q url.Values) (cognates.ListInput, error) {
	var (
		in   cognates.ListInput
		errs []domain.FieldError
	)

	parseBool := func(name string, dst *bool) {
		if !q.Has(name) {
			return
		}
		v, err := strconv.ParseBool(q.Get(name))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: name, Message: "must be a boolean"})
			return
		}
		*dst = v
	}
	parseInt := func(name string, dst *int) {
		if !q.Has(name) {
			return
		}
		v, err := strconv.Atoi(q.Get(name))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: name, Message: "must be an integer"})
			return
		}
		*dst = v
	}

	parseBool("only_in_toc", &in.OnlyInTOC)
	parseBool("debug", &in.Debug)
	parseInt("offset", &in.Offset)
	parseInt("limit", &in.Limit)
	if v, err := strconv.Atoi(q.Get("limit")); q.Has("limit") && err == nil && v == 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive; omit it for the default"})
	}

	if q.Has("language_group") {
		v := q.Get("language_group")
		in.LanguageGroup = &v
	}
	if q.Has("language") {
		v := q.Get("language")
		in.LanguageTitle = &v
	}
	if q.Has("perspective") {
		id, err := domain.ParseCompositeID(q.Get("perspective"))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "perspective", Message: "must be client_id,object_id"})
		} else {
			in.PerspectiveID = &id
		}
	}

	if len(errs) > 0 {
		return cognates.ListInput{}, domain.NewValidationErrors(errs)
	}
	return in, nil
}
