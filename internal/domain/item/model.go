package item

// IDField is the table key attribute. It is the only field with any schema:
// every stored item carries a caller-supplied or generated string id.
const IDField = "id"

// Item represents a single stored record. Fields are open-ended JSON values
// keyed by name; nothing beyond the id is validated or typed.
type Item map[string]any

// ID returns the item's id field, or "" if absent or not a string
func (i Item) ID() string {
	id, _ := i[IDField].(string)
	return id
}

// ListResult represents the result of listing items
type ListResult struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}
