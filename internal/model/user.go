package model

// User represents a stored account. Accounts are created on signup and are
// immutable afterward; there are no update or delete endpoints.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Hash     string `json:"-"` // Never expose password hash
}
