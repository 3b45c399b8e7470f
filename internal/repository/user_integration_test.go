//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/imgvet/imgvet/internal/model"
	"github.com/imgvet/imgvet/internal/testutil"
)

func newTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()

	databaseURL := testutil.RequireEnv(t, "TEST_DATABASE_URL")
	ctx := context.Background()

	if err := Migrate(ctx, databaseURL); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	repo, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("AcquireDBLock failed: %v", err)
	}
	t.Cleanup(func() {
		if err := unlock(); err != nil {
			t.Errorf("release DB lock: %v", err)
		}
	})

	if err := testutil.TruncateAll(ctx, repo.Pool()); err != nil {
		t.Fatalf("TruncateAll failed: %v", err)
	}

	return ctx, repo
}

func TestIntegrationUserRepository_ResolveUser_CreatesOnce(t *testing.T) {
	ctx, repo := newTestEnv(t)

	username := testutil.UniqueUsername("alice")

	first, err := repo.ResolveUser(ctx, username)
	if err != nil {
		t.Fatalf("ResolveUser (first) failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("ResolveUser returned empty ID")
	}

	second, err := repo.ResolveUser(ctx, username)
	if err != nil {
		t.Fatalf("ResolveUser (second) failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("same username resolved to different IDs: %q != %q", first.ID, second.ID)
	}
}

func TestIntegrationUserRepository_ResolveUser_DistinctUsers(t *testing.T) {
	ctx, repo := newTestEnv(t)

	alice, err := repo.ResolveUser(ctx, testutil.UniqueUsername("alice"))
	if err != nil {
		t.Fatalf("ResolveUser (alice) failed: %v", err)
	}
	bob, err := repo.ResolveUser(ctx, testutil.UniqueUsername("bob"))
	if err != nil {
		t.Fatalf("ResolveUser (bob) failed: %v", err)
	}

	if alice.ID == bob.ID {
		t.Errorf("distinct usernames resolved to the same ID: %q", alice.ID)
	}
}

func TestIntegrationUserRepository_UsernamesAreCaseSensitive(t *testing.T) {
	ctx, repo := newTestEnv(t)

	lower, err := repo.ResolveUser(ctx, "carol")
	if err != nil {
		t.Fatalf("ResolveUser (lower) failed: %v", err)
	}
	upper, err := repo.ResolveUser(ctx, "Carol")
	if err != nil {
		t.Fatalf("ResolveUser (upper) failed: %v", err)
	}

	if lower.ID == upper.ID {
		t.Error("case-distinct usernames must resolve to distinct users")
	}
}

func TestIntegrationUserRepository_GetUserByUsername_NotFound(t *testing.T) {
	ctx, repo := newTestEnv(t)

	_, err := repo.GetUserByUsername(ctx, "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationUserRepository_CreateUser_DuplicateUsername(t *testing.T) {
	ctx, repo := newTestEnv(t)

	username := testutil.UniqueUsername("dup")
	first := &model.User{ID: uuid.New().String(), Username: username, CreatedAt: time.Now().UTC()}
	second := &model.User{ID: uuid.New().String(), Username: username, CreatedAt: time.Now().UTC()}

	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser (first) failed: %v", err)
	}

	err := repo.CreateUser(ctx, second)
	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("expected ErrUsernameExists, got: %v", err)
	}
}
