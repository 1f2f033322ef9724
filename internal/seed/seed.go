// Package seed fills an empty store with the reference data the back office
// cannot work without.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
)

// DefaultSyndicates are created when the store has no syndicate
var DefaultSyndicates = []string{
	"Pilots Union",
	"Cabin Crew Union",
	"Aircraft Maintenance Union",
}

// DefaultIntegrityTests are created when the store has no integrity test
var DefaultIntegrityTests = []models.IntegrityTest{
	{Name: "Engine Inspection", MinimumScore: 80},
	{Name: "Hydraulic System Check", MinimumScore: 75},
	{Name: "Avionics Diagnostic", MinimumScore: 85},
	{Name: "Structural Integrity", MinimumScore: 90},
}

// CreateDefaultData creates the default syndicates and integrity tests if
// their collections are empty. Every failure is collected and the remaining
// records are still attempted.
func CreateDefaultData(ctx context.Context, store repositories.Store, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Syndicates/Integrity tests)...")
	var finalErr error

	syndicates, err := store.ReadSyndicates(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error reading syndicates")
		finalErr = errors.Join(finalErr, err)
	case len(syndicates) > 0:
		lgr.Info().Int("count", len(syndicates)).Msg("Syndicates already exist, skipping creation")
	default:
		for _, name := range DefaultSyndicates {
			if _, err := store.CreateSyndicate(ctx, &models.Syndicate{Name: name}); err != nil {
				lgr.Error().Err(err).Str("name", name).Msg("Error creating syndicate")
				finalErr = errors.Join(finalErr, fmt.Errorf("syndicate %q: %w", name, err))
			}
		}
	}

	tests, err := store.ReadIntegrityTests(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error reading integrity tests")
		finalErr = errors.Join(finalErr, err)
	case len(tests) > 0:
		lgr.Info().Int("count", len(tests)).Msg("Integrity tests already exist, skipping creation")
	default:
		for _, test := range DefaultIntegrityTests {
			if _, err := store.CreateIntegrityTest(ctx, &test); err != nil {
				lgr.Error().Err(err).Str("name", test.Name).Msg("Error creating integrity test")
				finalErr = errors.Join(finalErr, fmt.Errorf("integrity test %q: %w", test.Name, err))
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
