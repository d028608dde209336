package domain

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext; it is excluded from JSON output.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
