package testhelper

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
)

// seedClientID owns every row the seeders create.
const seedClientID = 900

var objectSeq atomic.Int64

func nextID() domain.CompositeID {
	return domain.NewCompositeID(seedClientID, objectSeq.Add(1))
}

// UniqueTitle returns prefix with a short unique suffix. Title lookups are
// global, so tests sharing the container must not reuse titles.
func UniqueTitle(prefix string) string {
	return prefix + " " + uuid.New().String()[:8]
}

// Lexicon inserts lingvodoc rows for integration tests.
type Lexicon struct {
	t    *testing.T
	pool *pgxpool.Pool
}

// NewLexicon creates a seeder bound to t.
func NewLexicon(t *testing.T, pool *pgxpool.Pool) *Lexicon {
	return &Lexicon{t: t, pool: pool}
}

func (l *Lexicon) exec(what, sql string, args ...any) {
	l.t.Helper()
	if _, err := l.pool.Exec(context.Background(), sql, args...); err != nil {
		l.t.Fatalf("testhelper: seed %s: %v", what, err)
	}
}

// Gist creates a translation gist with one atom per title; the i-th title
// gets locale i+1.
func (l *Lexicon) Gist(titles ...string) domain.CompositeID {
	l.t.Helper()

	id := nextID()
	l.exec("translationgist",
		`INSERT INTO translationgist (client_id, object_id, type) VALUES ($1, $2, 'Test')`,
		id.ClientID, id.ObjectID)

	for i, title := range titles {
		atom := nextID()
		l.exec("translationatom",
			`INSERT INTO translationatom (client_id, object_id, parent_client_id, parent_object_id, locale_id, content)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			atom.ClientID, atom.ObjectID, id.ClientID, id.ObjectID, i+1, title)
	}
	return id
}

// Language creates a language under parent (nil for a root).
func (l *Lexicon) Language(parent *domain.CompositeID, title string, inTOC bool) domain.CompositeID {
	l.t.Helper()

	id, gist := nextID(), l.Gist(title)
	var pcid, poid *int64
	if parent != nil {
		pcid, poid = &parent.ClientID, &parent.ObjectID
	}
	metadata := `{}`
	if inTOC {
		metadata = `{"toc_mark": true}`
	}

	l.exec("language",
		`INSERT INTO language (client_id, object_id, parent_client_id, parent_object_id,
		     translation_gist_client_id, translation_gist_object_id, additional_metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)`,
		id.ClientID, id.ObjectID, pcid, poid, gist.ClientID, gist.ObjectID, metadata)
	return id
}

// Dictionary creates a dictionary of language.
func (l *Lexicon) Dictionary(language domain.CompositeID, title string) domain.CompositeID {
	l.t.Helper()
	return l.child("dictionary", language, title)
}

// Perspective creates a perspective of dictionary.
func (l *Lexicon) Perspective(dictionary domain.CompositeID, title string) domain.CompositeID {
	l.t.Helper()
	return l.child("dictionaryperspective", dictionary, title)
}

func (l *Lexicon) child(table string, parent domain.CompositeID, title string) domain.CompositeID {
	l.t.Helper()

	id, gist := nextID(), l.Gist(title)
	l.exec(table,
		`INSERT INTO `+table+` (client_id, object_id, parent_client_id, parent_object_id,
		     translation_gist_client_id, translation_gist_object_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id.ClientID, id.ObjectID, parent.ClientID, parent.ObjectID, gist.ClientID, gist.ObjectID)
	return id
}

// Field creates a field with the given localized titles.
func (l *Lexicon) Field(titles ...string) domain.CompositeID {
	l.t.Helper()

	id := nextID()
	l.insertField(id, titles...)
	return id
}

// EnsureField creates the field id unless it already exists. Use it for
// fixed ids such as the cognate-link field.
func (l *Lexicon) EnsureField(id domain.CompositeID, title string) {
	l.t.Helper()

	var exists bool
	err := l.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM field WHERE client_id = $1 AND object_id = $2)`,
		id.ClientID, id.ObjectID).Scan(&exists)
	if err != nil {
		l.t.Fatalf("testhelper: check field %s: %v", id, err)
	}
	if !exists {
		l.insertField(id, title)
	}
}

func (l *Lexicon) insertField(id domain.CompositeID, titles ...string) {
	l.t.Helper()

	gist := l.Gist(titles...)
	l.exec("field",
		`INSERT INTO field (client_id, object_id, translation_gist_client_id, translation_gist_object_id)
		 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		id.ClientID, id.ObjectID, gist.ClientID, gist.ObjectID)
}

// Attach adds field to perspective at position.
func (l *Lexicon) Attach(perspective, field domain.CompositeID, position int) {
	l.t.Helper()

	id := nextID()
	l.exec("dictionaryperspectivetofield",
		`INSERT INTO dictionaryperspectivetofield (client_id, object_id, parent_client_id, parent_object_id,
		     field_client_id, field_object_id, position)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id.ClientID, id.ObjectID, perspective.ClientID, perspective.ObjectID, field.ClientID, field.ObjectID, position)
}

// Entry creates a lexical entry of perspective.
func (l *Lexicon) Entry(perspective domain.CompositeID) domain.CompositeID {
	l.t.Helper()

	id := nextID()
	l.exec("lexicalentry",
		`INSERT INTO lexicalentry (client_id, object_id, parent_client_id, parent_object_id)
		 VALUES ($1, $2, $3, $4)`,
		id.ClientID, id.ObjectID, perspective.ClientID, perspective.ObjectID)
	return id
}

// Entity adds a published, accepted text entity to entry.
func (l *Lexicon) Entity(entry, field domain.CompositeID, content string) domain.CompositeID {
	l.t.Helper()
	return l.entity(entry, field, &content, nil, true)
}

// Draft adds an unpublished text entity to entry.
func (l *Lexicon) Draft(entry, field domain.CompositeID, content string) domain.CompositeID {
	l.t.Helper()
	return l.entity(entry, field, &content, nil, false)
}

// Link connects entry to target through the link field.
func (l *Lexicon) Link(entry, field, target domain.CompositeID) domain.CompositeID {
	l.t.Helper()
	return l.entity(entry, field, nil, &target, true)
}

func (l *Lexicon) entity(entry, field domain.CompositeID, content *string, link *domain.CompositeID, published bool) domain.CompositeID {
	l.t.Helper()

	id := nextID()
	var lcid, loid *int64
	if link != nil {
		lcid, loid = &link.ClientID, &link.ObjectID
	}

	l.exec("entity",
		`INSERT INTO entity (client_id, object_id, parent_client_id, parent_object_id,
		     field_client_id, field_object_id, link_client_id, link_object_id, locale_id, content)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 2, $9)`,
		id.ClientID, id.ObjectID, entry.ClientID, entry.ObjectID, field.ClientID, field.ObjectID, lcid, loid, content)
	l.exec("publishingentity",
		`INSERT INTO publishingentity (client_id, object_id, published, accepted) VALUES ($1, $2, $3, $3)`,
		id.ClientID, id.ObjectID, published)
	return id
}

// MarkDeleted soft-deletes the row id of table.
func (l *Lexicon) MarkDeleted(table string, id domain.CompositeID) {
	l.t.Helper()
	l.exec(table+" deletion",
		`UPDATE `+table+` SET marked_for_deletion = true WHERE client_id = $1 AND object_id = $2`,
		id.ClientID, id.ObjectID)
}
