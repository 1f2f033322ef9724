package memory

import (
	"context"
	"testing"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/app/repositories/storetest"
)

func TestStoreConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repositories.Store {
		return NewStore()
	})
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	id, err := s.CreateSyndicate(ctx, &models.Syndicate{Name: "SNA"})
	if err != nil {
		t.Fatalf("CreateSyndicate: %v", err)
	}

	got, _ := s.ReadSyndicateByID(ctx, id)
	got.Name = "mutated"

	again, _ := s.ReadSyndicateByID(ctx, id)
	if again.Name != "SNA" {
		t.Errorf("stored record was mutated through a read, name = %q", again.Name)
	}
}

func TestCreateDoesNotMutateInput(t *testing.T) {
	s := NewStore()
	in := &models.Location{City: "Recife"}

	if _, err := s.CreateLocation(context.Background(), in); err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}
	if !in.ID.IsZero() {
		t.Errorf("input was given an id %q", in.ID)
	}
}

func TestUpdateModelRejectsTakenImage(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, _ := s.CreateAirplaneModel(ctx, &models.AirplaneModel{Code: "A", ImagePath: "a.png", Capacity: 1, Weight: 1})
	_, _ = s.CreateAirplaneModel(ctx, &models.AirplaneModel{Code: "B", ImagePath: "b.png", Capacity: 1, Weight: 1})

	err := s.UpdateAirplaneModelByID(ctx, first, models.AirplaneModelUpdate{Capacity: 2, Weight: 2, ImagePath: "b.png"})
	if err != repositories.ErrAlreadyExists {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}
