package models

import "time"

// User is an account of the record store.
// Password is accepted on register/login and never persisted or returned.
type User struct {
	// UserID is the internal identifier; it is not exposed via JSON.
	UserID int64 `json:"-"`

	// Login is the unique sign-in name, usually an e-mail address.
	Login string `json:"login"`

	// Password is the plaintext credential sent by the client.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id hash stored in the database.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Session describes the currently authenticated account.
type Session struct {
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
}

// LocalSession is the session persisted by the client between runs.
type LocalSession struct {
	UserID    int64
	Login     string
	Token     string
	CreatedAt time.Time
}
