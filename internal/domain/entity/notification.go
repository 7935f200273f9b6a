package entity

// Notification is a message addressed to a user, created as a side effect of
// order placement. There is no read/dismiss flow; Read stays false until one
// exists.
type Notification struct {
	ID      string `json:"id,omitempty"`
	Email   string `json:"email"` // recipient
	Title   string `json:"title"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}
