//go:build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/imgvet/imgvet/internal/model"
	"github.com/imgvet/imgvet/internal/testutil"
)

func TestIntegrationImageRepository_AppendAndList(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user, err := repo.ResolveUser(ctx, testutil.UniqueUsername("alice"))
	if err != nil {
		t.Fatalf("ResolveUser failed: %v", err)
	}

	texts := []string{"Invoice 10023 total 5", "99999", "007 42"}
	for _, text := range texts {
		record := &model.ImageRecord{
			ID:             ulid.Make().String(),
			UserID:         user.ID,
			RecognizedText: text,
			CreatedAt:      time.Now().UTC(),
		}
		if err := repo.AppendImage(ctx, record); err != nil {
			t.Fatalf("AppendImage(%q) failed: %v", text, err)
		}
	}

	got, err := repo.ListRecognizedTexts(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListRecognizedTexts failed: %v", err)
	}
	if len(got) != len(texts) {
		t.Fatalf("got %d texts, want %d", len(got), len(texts))
	}
	for i, text := range texts {
		// Insertion order is preserved.
		if got[i] != text {
			t.Errorf("texts[%d] = %q, want %q", i, got[i], text)
		}
	}

	count, err := repo.CountImages(ctx, user.ID)
	if err != nil {
		t.Fatalf("CountImages failed: %v", err)
	}
	if count != int64(len(texts)) {
		t.Errorf("CountImages = %d, want %d", count, len(texts))
	}

	records, err := repo.ListImages(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(records) != len(texts) {
		t.Fatalf("got %d records, want %d", len(records), len(texts))
	}
	for i, record := range records {
		if record.UserID != user.ID {
			t.Errorf("records[%d].UserID = %q, want %q", i, record.UserID, user.ID)
		}
		if record.CreatedAt.IsZero() {
			t.Errorf("records[%d].CreatedAt is zero", i)
		}
	}
}

func TestIntegrationImageRepository_AppendMissingOwner(t *testing.T) {
	ctx, repo := newTestEnv(t)

	record := &model.ImageRecord{
		ID:             ulid.Make().String(),
		UserID:         uuid.New().String(), // never created
		RecognizedText: "42",
		CreatedAt:      time.Now().UTC(),
	}

	err := repo.AppendImage(ctx, record)
	if !errors.Is(err, ErrImageOwnerMissing) {
		t.Errorf("expected ErrImageOwnerMissing, got: %v", err)
	}
}

func TestIntegrationImageRepository_HistoriesAreIsolatedPerUser(t *testing.T) {
	ctx, repo := newTestEnv(t)

	alice, err := repo.ResolveUser(ctx, testutil.UniqueUsername("alice"))
	if err != nil {
		t.Fatalf("ResolveUser (alice) failed: %v", err)
	}
	bob, err := repo.ResolveUser(ctx, testutil.UniqueUsername("bob"))
	if err != nil {
		t.Fatalf("ResolveUser (bob) failed: %v", err)
	}

	record := &model.ImageRecord{
		ID:             ulid.Make().String(),
		UserID:         alice.ID,
		RecognizedText: "10023 5",
		CreatedAt:      time.Now().UTC(),
	}
	if err := repo.AppendImage(ctx, record); err != nil {
		t.Fatalf("AppendImage failed: %v", err)
	}

	bobTexts, err := repo.ListRecognizedTexts(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListRecognizedTexts (bob) failed: %v", err)
	}
	if len(bobTexts) != 0 {
		t.Errorf("bob's history should be empty, got %v", bobTexts)
	}

	bobCount, err := repo.CountImages(ctx, bob.ID)
	if err != nil {
		t.Fatalf("CountImages (bob) failed: %v", err)
	}
	if bobCount != 0 {
		t.Errorf("CountImages (bob) = %d, want 0", bobCount)
	}
}
