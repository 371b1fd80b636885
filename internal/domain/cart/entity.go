// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// Line represents one cart entry. A line is keyed by the tuple
// (story id, size, color): two entries are the same line iff all
// three match. The line carries a snapshot of the story at add time.
type Line struct {
	StoryID     int      `json:"story_id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"` // Price in cents at time of adding
	OldPrice    int64    `json:"old_price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	AgeRange    string   `json:"age_range"`
	Quantity    int      `json:"quantity"`
	Size        string   `json:"size,omitempty"`
	Color       string   `json:"color,omitempty"`

	// Personalization photo. Only the file name survives persistence;
	// the raw bytes live in process memory and are dropped on save.
	PhotoFileName string `json:"photo_file_name,omitempty"`
	Photo         []byte `json:"-"`

	AddedAt time.Time `json:"added_at"`
}

// Matches reports whether the line is identified by the given key tuple.
func (l *Line) Matches(storyID int, size, color string) bool {
	return l.StoryID == storyID && l.Size == size && l.Color == color
}

// SessionCart represents a cart session (stored in Redis via the Store port)
type SessionCart struct {
	SessionID string    `json:"session_id"`
	Items     []Line    `json:"items"`
	IsOpen    bool      `json:"is_open"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartTotals represents calculated cart totals
type CartTotals struct {
	TotalItems int   `json:"total_items"` // Sum of all quantities
	TotalPrice int64 `json:"total_price"` // Sum of price * quantity, in cents
}

// Totals recomputes the derived totals from the items. Every mutation
// path goes through this so the totals can never lag the items.
func (c *SessionCart) Totals() CartTotals {
	var totals CartTotals
	for _, line := range c.Items {
		totals.TotalItems += line.Quantity
		totals.TotalPrice += line.Price * int64(line.Quantity)
	}
	return totals
}
