package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories/memory"
)

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	if err := CreateDefaultData(ctx, store, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDefaultData: %v", err)
	}

	syndicates, err := store.ReadSyndicates(ctx)
	if err != nil {
		t.Fatalf("ReadSyndicates: %v", err)
	}
	if len(syndicates) != len(DefaultSyndicates) {
		t.Errorf("expected %d syndicates, got %d", len(DefaultSyndicates), len(syndicates))
	}

	tests, err := store.ReadIntegrityTests(ctx)
	if err != nil {
		t.Fatalf("ReadIntegrityTests: %v", err)
	}
	if len(tests) != len(DefaultIntegrityTests) {
		t.Errorf("expected %d integrity tests, got %d", len(DefaultIntegrityTests), len(tests))
	}

	// A second run leaves the data alone
	if err := CreateDefaultData(ctx, store, zerolog.Nop()); err != nil {
		t.Fatalf("second CreateDefaultData: %v", err)
	}
	again, _ := store.ReadSyndicates(ctx)
	if len(again) != len(syndicates) {
		t.Errorf("expected seeding to be idempotent, got %d syndicates", len(again))
	}
}

func TestCreateDefaultDataKeepsExistingRecords(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	if _, err := store.CreateSyndicate(ctx, &models.Syndicate{Name: "Ground Staff"}); err != nil {
		t.Fatalf("CreateSyndicate: %v", err)
	}

	if err := CreateDefaultData(ctx, store, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDefaultData: %v", err)
	}

	syndicates, _ := store.ReadSyndicates(ctx)
	if len(syndicates) != 1 || syndicates[0].Name != "Ground Staff" {
		t.Errorf("expected only the existing syndicate, got %+v", syndicates)
	}
	tests, _ := store.ReadIntegrityTests(ctx)
	if len(tests) != len(DefaultIntegrityTests) {
		t.Errorf("expected integrity tests to be seeded, got %d", len(tests))
	}
}
