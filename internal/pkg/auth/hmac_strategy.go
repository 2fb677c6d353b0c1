package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

const defaultTokenTTL = 24 * time.Hour

// HMACStrategy issues self-contained tokens of the form
// base64url(userID.expiry.signature) where the signature is an
// HMAC-SHA256 over the first two fields.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds a strategy around the given signing secret.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken signs a fresh token for the user, valid for the configured TTL.
func (s *HMACStrategy) IssueToken(userID int64) (string, error) {
	payload := fmt.Sprintf("%d.%d", userID, time.Now().Add(s.ttl).Unix())
	token := payload + "." + s.sign(payload)
	return base64.RawURLEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken verifies the signature and expiry and returns the user ID the
// token was issued for. Any malformed or tampered token maps to
// ErrInvalidToken without further detail.
func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ".")
	if len(parts) != 3 {
		return 0, ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if time.Unix(expires, 0).Before(time.Now()) {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac-sha256"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
