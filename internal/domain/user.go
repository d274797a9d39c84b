package domain

import "time"

// User represents a registered account. Password holds whatever the store keeps:
// the plain credential by default, or a bcrypt hash when hashing is enabled.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}
