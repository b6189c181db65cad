package entities

import "time"

// Program is a long-running training program.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Price is a display string maintained by content editors (e.g. "KES 25,000");
// the order builder parses it into a numeric amount, falling back to zero when
// it cannot.

type Program struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration,omitempty"`
	Price       string    `json:"price"`
	Currency    string    `json:"currency"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
