package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "zero falls back to default", cost: 0, want: bcrypt.DefaultCost},
		{name: "below minimum falls back to default", cost: bcrypt.MinCost - 1, want: bcrypt.DefaultCost},
		{name: "explicit cost kept", cost: bcrypt.DefaultCost + 2, want: bcrypt.DefaultCost + 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cost)
			if hasher.cost != tt.want {
				t.Fatalf("unexpected cost: %d", hasher.cost)
			}
		})
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected compare error for wrong password")
	}
}

func TestBcryptHasher_HashError(t *testing.T) {
	hasher := &BcryptHasher{cost: bcrypt.MaxCost + 1}
	if _, err := hasher.Hash("password"); err == nil {
		t.Fatal("expected hash error for invalid cost")
	}
}
