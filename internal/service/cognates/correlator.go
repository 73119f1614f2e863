package cognates

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
	"github.com/heartmarshall/lingvodoc-backend/pkg/stream"
)

// Entry is one lexical entry of a qualifying perspective. A nil text list
// means the entry has no entity in that field.
type Entry struct {
	ID            domain.CompositeID
	Transcription []*string
	Translation   []*string
	Group         domain.CognateGroup
}

// MarshalJSON encodes the entry as [transcription, translation, group].
func (e Entry) MarshalJSON() ([]byte, error) {
	group := e.Group
	if group == nil {
		group = domain.CognateGroup{}
	}
	return json.Marshal([3]any{e.Transcription, e.Translation, group})
}

// entryCursor yields the entries of one perspective. The cognate group of an
// entry is looked up only when the entry is pulled.
type entryCursor struct {
	store        lexiconStore
	cognateField domain.CompositeID
	fields       Classification

	entities stream.Cursor[domain.EntityRow]
	groups   *stream.Grouper[domain.EntityRow, domain.CompositeID]
}

func entryKey(row domain.EntityRow) domain.CompositeID { return row.EntryID }

// openEntries starts streaming the entities of the classified perspective.
func (s *Service) openEntries(ctx context.Context, c Classification) (*entryCursor, error) {
	entities, err := s.store.Entities(ctx, c.PerspectiveID, c.FieldIDs(), s.cfg.FetchSize)
	if err != nil {
		return nil, fmt.Errorf("entities of %s: %w", c.PerspectiveID, err)
	}

	return &entryCursor{
		store:        s.store,
		cognateField: s.classifier.CognateField(),
		fields:       c,
		entities:     entities,
		groups:       stream.GroupBy[domain.EntityRow, domain.CompositeID](entities, entryKey),
	}, nil
}

// Next returns the next entry; false once the perspective is exhausted.
func (c *entryCursor) Next(ctx context.Context) (Entry, bool, error) {
	id, rows, ok, err := c.groups.Next(ctx)
	if err != nil {
		return Entry{}, false, fmt.Errorf("entities of %s: %w", c.fields.PerspectiveID, err)
	}
	if !ok {
		return Entry{}, false, nil
	}

	group, err := c.store.LinkedGroup(ctx, c.cognateField, id)
	if err != nil {
		return Entry{}, false, fmt.Errorf("cognate group of %s: %w", id, err)
	}

	entry := Entry{ID: id, Group: group}
	for _, row := range rows {
		switch row.FieldID {
		case c.fields.Transcription.ID:
			entry.Transcription = append(entry.Transcription, row.Content)
		case c.fields.Translation.ID:
			entry.Translation = append(entry.Translation, row.Content)
		}
	}
	return entry, true, nil
}

// Close releases the underlying entity cursor.
func (c *entryCursor) Close(ctx context.Context) error {
	return c.entities.Close(ctx)
}
