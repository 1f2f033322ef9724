package services

import (
	"testing"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/pkg/apperrors"
)

func TestLocations(t *testing.T) {
	f := newFixture(t)
	airport := f.location(t, "Guarulhos", true)
	home := f.location(t, "Campinas", false)

	location, err := f.svc.Reference.GetLocationByID(f.ctx, airport)
	if err != nil || location.CountryAbbreviation != "BR" {
		t.Fatalf("expected an upper-cased abbreviation, got %+v, %v", location, err)
	}

	nonAirports, err := f.svc.Reference.GetNonAirportLocations(f.ctx)
	if err != nil {
		t.Fatalf("GetNonAirportLocations: %v", err)
	}
	if len(nonAirports) != 1 || nonAirports[0].ID != home {
		t.Errorf("expected only %s, got %d locations", home, len(nonAirports))
	}

	_, err = f.svc.Reference.CreateLocation(f.ctx, &models.Location{CountryAbbreviation: "BRAZ"})
	assertIs(t, err, apperrors.ErrValidationFailed)

	location.City = "São Paulo"
	if err := f.svc.Reference.UpdateLocation(f.ctx, airport, location); err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	location, _ = f.svc.Reference.GetLocationByID(f.ctx, airport)
	if location.City != "São Paulo" {
		t.Errorf("expected the city to change, got %s", location.City)
	}

	if err := f.svc.Reference.DeleteLocation(f.ctx, home); err != nil {
		t.Fatalf("DeleteLocation: %v", err)
	}
	assertIs(t, f.svc.Reference.DeleteLocation(f.ctx, home), ErrLocationNotFound)
}

func TestSyndicates(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Reference.CreateSyndicate(f.ctx, "  ")
	assertIs(t, err, apperrors.ErrValidationFailed)

	id := f.syndicate(t, "Aeronautas")
	if err := f.svc.Reference.UpdateSyndicate(f.ctx, id, "Aeroviários"); err != nil {
		t.Fatalf("UpdateSyndicate: %v", err)
	}
	syndicate, err := f.svc.Reference.GetSyndicateByID(f.ctx, id)
	if err != nil || syndicate.Name != "Aeroviários" {
		t.Fatalf("unexpected syndicate %+v, %v", syndicate, err)
	}

	all, _ := f.svc.Reference.GetSyndicates(f.ctx)
	if len(all) != 1 {
		t.Errorf("expected 1 syndicate, got %d", len(all))
	}

	assertIs(t, f.svc.Reference.UpdateSyndicate(f.ctx, "missing", "x"), ErrSyndicateNotFound)
	if err := f.svc.Reference.DeleteSyndicate(f.ctx, id); err != nil {
		t.Fatalf("DeleteSyndicate: %v", err)
	}
	_, err = f.svc.Reference.GetSyndicateByID(f.ctx, id)
	assertIs(t, err, ErrSyndicateNotFound)
}
