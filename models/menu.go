package models

// MenuEntry is one row of the menu table. Dish is the identity key; ID is
// assigned by the store.
type MenuEntry struct {
	ID    int64
	Dish  string
	Price string // stored as supplied, never parsed
}
