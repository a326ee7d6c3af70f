package models

// Item represents a single to-do entry.
// The JSON form is what the frontend consumes: {"id", "text", "isMarked"}.
type Item struct {
	// ID is the unique identifier assigned by the store on creation.
	// MongoDB uses hex ObjectIDs, SQLite uses UUIDs. Immutable once set.
	ID string `json:"id"`

	// Text is the content of the entry. Never empty for a persisted item.
	Text string `json:"text"`

	// IsMarked reports whether the entry is completed.
	// Nil means the flag was never supplied and is omitted from responses.
	IsMarked *bool `json:"isMarked,omitempty"`
}

// Marked reports the completion state, treating an absent flag as false.
func (i Item) Marked() bool {
	return i.IsMarked != nil && *i.IsMarked
}

// NewItem is the input for creating an Item.
type NewItem struct {
	Text     string `json:"text" validate:"required"`
	IsMarked *bool  `json:"isMarked"`
}

// Item converts the input into an Item without an ID.
func (n NewItem) Item() *Item {
	return &Item{Text: n.Text, IsMarked: n.IsMarked}
}
