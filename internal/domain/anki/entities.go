package anki

import "sort"

const (
	// DeckSeparator splits hierarchical deck names like "Math::Algebra".
	DeckSeparator = "::"

	// FallbackCategory groups decks that have no parent hierarchy.
	FallbackCategory = "uncategorized"
)

// NoteField is one named content slot of a note. Order is the position of the
// field in the note type, as reported by the collection.
type NoteField struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// Note is the content record underlying one or more cards.
type Note struct {
	ID     int64                `json:"noteId"`
	Model  string               `json:"modelName"`
	Fields map[string]NoteField `json:"fields"`
	Tags   []string             `json:"tags"`
}

// FieldValues returns the note's field values in the order the note type
// defines them, ties broken by field name.
func (n Note) FieldValues() []string {
	names := make([]string, 0, len(n.Fields))
	for name := range n.Fields {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := n.Fields[names[i]], n.Fields[names[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return names[i] < names[j]
	})

	values := make([]string, len(names))
	for i, name := range names {
		values[i] = n.Fields[name].Value
	}
	return values
}
