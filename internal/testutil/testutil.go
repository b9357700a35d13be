// Package testutil provides helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"clanPortal/internal/store"
	"clanPortal/models"
	"clanPortal/repository"
)

// OpenTempStore opens a store rooted in a fresh temp directory with every
// portal collection ensured.
func OpenTempStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	if err := repository.EnsureCollections(s); err != nil {
		t.Fatalf("ensure collections: %v", err)
	}
	return s
}

// SeedUser registers an account directly through the repository.
func SeedUser(t *testing.T, users *repository.UserRepository, username, password string, role models.Role) {
	t.Helper()
	if _, err := users.Create(context.Background(), username, password, role); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
}
