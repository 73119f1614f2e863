package domain

import "strings"

// TitleSeparator joins the localized variants of a title.
const TitleSeparator = "; "

// JoinTitle joins the localized variants of a title into one string.
func JoinTitle(title []string) string {
	return strings.Join(title, TitleSeparator)
}

// LanguageNode is one row of the language forest as seen by the traversal:
// the language and the parent it hangs off (zero for roots).
type LanguageNode struct {
	ID       CompositeID
	ParentID CompositeID
}

// Language is a language reached by descending the forest. Level is the
// length of the shortest parent chain from a root of the traversal.
type Language struct {
	ID    CompositeID
	Title []string
	Level int
}

// Dictionary belongs to exactly one language and inherits its level.
type Dictionary struct {
	ID         CompositeID
	LanguageID CompositeID
	Title      []string
	Level      int
}

// Perspective belongs to exactly one dictionary and inherits its level.
type Perspective struct {
	ID           CompositeID
	DictionaryID CompositeID
	Title        []string
	Level        int
}

// FieldRow is one field of a perspective. Title holds the lower-cased
// localized variants; Position is the display order inside the perspective.
type FieldRow struct {
	PerspectiveID CompositeID
	FieldID       CompositeID
	Title         []string
	Position      int
	Level         int
}

// EntityRow is one published and accepted entity of a lexical entry,
// restricted to the fields a report asks for.
type EntityRow struct {
	EntryID CompositeID
	FieldID CompositeID
	Content *string
}

// CognateGroup is the result of the linked_group procedure for one lexical
// entry: an ordered list of rows, each a flat tuple of scalars.
type CognateGroup [][]any

// LanguageFilter selects non-deleted languages. Conditions combine with AND;
// an empty ParentIn or IDIn slice is treated as "no language matches".
type LanguageFilter struct {
	// Parentless restricts to the roots of the forest.
	Parentless bool
	// ParentIn restricts to children of the given languages (nil: no restriction).
	ParentIn []CompositeID
	// IDIn restricts to the given languages (nil: no restriction).
	IDIn []CompositeID
}
