package models

// User is a row of the users table. The password column is stored and
// compared verbatim (no hashing) and is never serialized in responses.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
