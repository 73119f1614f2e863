package cognates

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

const (
	keyTitle    = "title"
	keyFields   = "fields"
	keyEntities = "entities"
)

// assembler builds the report document from perspectives that arrive in
// resolved order. A block is looked up again only when the id at its level
// changes; a revisited id reuses its block.
type assembler struct {
	root      *object
	languages []string

	curLanguage    *domain.CompositeID
	curDictionary  *domain.CompositeID
	curPerspective *domain.CompositeID

	language    *object
	dictionary  *object
	perspective *object
	entities    *object
}

func newAssembler() *assembler {
	return &assembler{root: newObject()}
}

// enter opens the block of perspective p under its dictionary d and
// language l. It returns which levels were freshly created.
func (a *assembler) enter(l domain.Language, d domain.Dictionary, p domain.Perspective, c Classification) (newLanguage, newDictionary bool) {
	languageChanged := a.curLanguage == nil || *a.curLanguage != l.ID
	if languageChanged {
		var created bool
		a.language, created = a.root.child(l.ID.String())
		if created {
			a.language.set(keyTitle, l.Title)
			a.languages = append(a.languages, domain.JoinTitle(l.Title))
			newLanguage = true
		}
		a.curLanguage = &l.ID
	}

	dictionaryChanged := languageChanged || a.curDictionary == nil || *a.curDictionary != d.ID
	if dictionaryChanged {
		var created bool
		a.dictionary, created = a.language.child(d.ID.String())
		if created {
			a.dictionary.set(keyTitle, d.Title)
			newDictionary = true
		}
		a.curDictionary = &d.ID
	}

	if dictionaryChanged || a.curPerspective == nil || *a.curPerspective != p.ID {
		var created bool
		a.perspective, created = a.dictionary.child(p.ID.String())
		if created {
			a.perspective.set(keyTitle, p.Title)
			a.perspective.set(keyFields, [2]FieldRef{c.Transcription, c.Translation})
			a.perspective.set(keyEntities, newObject())
		}
		a.entities, _ = a.perspective.values[keyEntities].(*object)
		a.curPerspective = &p.ID
	}

	return newLanguage, newDictionary
}

// add puts an entry into the current perspective block.
func (a *assembler) add(e Entry) error {
	if a.entities == nil {
		return fmt.Errorf("entry %s outside of a perspective block", e.ID)
	}
	a.entities.set(e.ID.String(), e)
	return nil
}

// result serializes the document.
func (a *assembler) result() ([]byte, []string, error) {
	data, err := json.Marshal(a.root)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal report: %w", err)
	}
	languages := a.languages
	if languages == nil {
		languages = []string{}
	}
	return data, languages, nil
}
