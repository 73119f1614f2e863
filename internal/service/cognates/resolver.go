package cognates

import (
	"context"
	"fmt"
	"sort"

	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

// hierarchy is the resolved part of the language forest a report covers.
type hierarchy struct {
	languages    []domain.Language
	languageByID map[domain.CompositeID]int

	dictionaries   []domain.Dictionary
	dictionaryByID map[domain.CompositeID]int

	// perspectives is the paged, level-then-id ordered list.
	perspectives    []domain.Perspective
	perspectiveByID map[domain.CompositeID]int

	// scan is the list of perspectives whose fields are classified.
	scan []domain.Perspective
}

func (h *hierarchy) language(id domain.CompositeID) (domain.Language, bool) {
	i, ok := h.languageByID[id]
	if !ok {
		return domain.Language{}, false
	}
	return h.languages[i], true
}

func (h *hierarchy) dictionary(id domain.CompositeID) (domain.Dictionary, bool) {
	i, ok := h.dictionaryByID[id]
	if !ok {
		return domain.Dictionary{}, false
	}
	return h.dictionaries[i], true
}

func (h *hierarchy) perspective(id domain.CompositeID) (domain.Perspective, bool) {
	i, ok := h.perspectiveByID[id]
	if !ok {
		return domain.Perspective{}, false
	}
	return h.perspectives[i], true
}

// forestNode is one arena slot of the breadth-first traversal.
type forestNode struct {
	id    domain.CompositeID
	level int
}

// resolve computes the root set, descends the forest and loads the
// dictionaries and perspectives below it.
func (s *Service) resolve(ctx context.Context, in ListInput, limit int) (*hierarchy, error) {
	roots, err := s.rootFilter(ctx, in)
	if err != nil {
		return nil, err
	}

	forest, err := s.descend(ctx, roots)
	if err != nil {
		return nil, err
	}

	h := &hierarchy{
		languageByID:    make(map[domain.CompositeID]int),
		dictionaryByID:  make(map[domain.CompositeID]int),
		perspectiveByID: make(map[domain.CompositeID]int),
	}

	if err := s.loadLanguages(ctx, h, forest, in.OnlyInTOC); err != nil {
		return nil, err
	}
	if err := s.loadDictionaries(ctx, h); err != nil {
		return nil, err
	}
	if err := s.loadPerspectives(ctx, h, in, limit); err != nil {
		return nil, err
	}

	return h, nil
}

// rootFilter turns the group and title filters into the filter selecting
// the roots of the traversal.
func (s *Service) rootFilter(ctx context.Context, in ListInput) (domain.LanguageFilter, error) {
	if in.LanguageGroup == nil && in.LanguageTitle == nil {
		return domain.LanguageFilter{Parentless: true}, nil
	}

	var filter domain.LanguageFilter

	if in.LanguageGroup != nil {
		ids, err := s.store.LanguageIDsByTitle(ctx, *in.LanguageGroup)
		if err != nil {
			return filter, fmt.Errorf("resolve language group: %w", err)
		}
		if len(ids) == 0 {
			return filter, domain.NewResolutionError(domain.MsgNoLanguageGroup)
		}
		filter.ParentIn = ids
	}

	if in.LanguageTitle != nil {
		ids, err := s.store.LanguageIDsByTitle(ctx, *in.LanguageTitle)
		if err != nil {
			return filter, fmt.Errorf("resolve language title: %w", err)
		}
		if len(ids) == 0 {
			return filter, domain.NewResolutionError(domain.MsgNoLanguage)
		}
		filter.IDIn = ids
	}

	return filter, nil
}

// descend walks the forest breadth-first from the roots. Each round asks for
// the children of the previous round's discoveries; a language keeps the
// level of the round that found it first.
func (s *Service) descend(ctx context.Context, roots domain.LanguageFilter) ([]forestNode, error) {
	rootRows, err := s.store.Languages(ctx, roots)
	if err != nil {
		return nil, fmt.Errorf("root languages: %w", err)
	}

	var arena []forestNode
	index := make(map[domain.CompositeID]int)

	discover := func(rows []domain.LanguageNode, level int) []domain.CompositeID {
		var found []domain.CompositeID
		for _, row := range rows {
			if _, seen := index[row.ID]; seen {
				continue
			}
			index[row.ID] = len(arena)
			arena = append(arena, forestNode{id: row.ID, level: level})
			found = append(found, row.ID)
		}
		return found
	}

	frontier := discover(rootRows, 0)
	for level := 1; len(frontier) > 0; level++ {
		children, err := s.store.Languages(ctx, domain.LanguageFilter{ParentIn: frontier})
		if err != nil {
			return nil, fmt.Errorf("child languages at level %d: %w", level, err)
		}
		frontier = discover(children, level)
	}

	return arena, nil
}

// loadLanguages keeps the forest nodes that have a title (and a TOC mark if
// requested), in traversal order.
func (s *Service) loadLanguages(ctx context.Context, h *hierarchy, forest []forestNode, onlyInTOC bool) error {
	ids := make([]domain.CompositeID, len(forest))
	for i, n := range forest {
		ids[i] = n.id
	}

	titles, err := s.store.LanguageTitles(ctx, ids, onlyInTOC)
	if err != nil {
		return fmt.Errorf("language titles: %w", err)
	}

	for _, n := range forest {
		title, ok := titles[n.id]
		if !ok {
			continue
		}
		h.languageByID[n.id] = len(h.languages)
		h.languages = append(h.languages, domain.Language{ID: n.id, Title: title, Level: n.level})
	}
	return nil
}

func (s *Service) loadDictionaries(ctx context.Context, h *hierarchy) error {
	ids := make([]domain.CompositeID, len(h.languages))
	for i, l := range h.languages {
		ids[i] = l.ID
	}

	dictionaries, err := s.store.Dictionaries(ctx, ids)
	if err != nil {
		return fmt.Errorf("dictionaries: %w", err)
	}

	for _, d := range dictionaries {
		lang, ok := h.language(d.LanguageID)
		if !ok {
			continue
		}
		d.Level = lang.Level
		h.dictionaryByID[d.ID] = len(h.dictionaries)
		h.dictionaries = append(h.dictionaries, d)
	}
	return nil
}

// loadPerspectives orders the perspectives by level then id and applies the
// page. A single requested perspective disables the limit and must be on
// the page.
func (s *Service) loadPerspectives(ctx context.Context, h *hierarchy, in ListInput, limit int) error {
	ids := make([]domain.CompositeID, len(h.dictionaries))
	for i, d := range h.dictionaries {
		ids[i] = d.ID
	}

	perspectives, err := s.store.Perspectives(ctx, ids)
	if err != nil {
		return fmt.Errorf("perspectives: %w", err)
	}

	all := make([]domain.Perspective, 0, len(perspectives))
	for _, p := range perspectives {
		dict, ok := h.dictionary(p.DictionaryID)
		if !ok {
			continue
		}
		p.Level = dict.Level
		all = append(all, p)
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		if a.ID.ClientID != b.ID.ClientID {
			return a.ID.ClientID < b.ID.ClientID
		}
		return a.ID.ObjectID < b.ID.ObjectID
	})

	if in.Offset >= len(all) {
		all = all[:0]
	} else {
		all = all[in.Offset:]
	}
	if in.PerspectiveID == nil && len(all) > limit {
		all = all[:limit]
	}

	h.perspectives = all
	for i, p := range all {
		h.perspectiveByID[p.ID] = i
	}

	if in.PerspectiveID == nil {
		h.scan = all
		return nil
	}

	p, ok := h.perspective(*in.PerspectiveID)
	if !ok {
		return domain.NewResolutionError(domain.MsgNoPerspective)
	}
	h.scan = []domain.Perspective{p}
	return nil
}
