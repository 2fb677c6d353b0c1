package auth

import "time"

// Strategy issues opaque credentials for a user and maps presented
// credentials back to the user they were issued for.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes strategy construction.
type Options struct {
	TTL time.Duration
}
