package enrichment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Result is the complete set of derived sustainability attributes.
// A Result is only ever returned fully populated and validated.
type Result struct {
	Rating      EcoRating
	CarbonScore float64
}

// Service derives sustainability attributes for a product draft.
type Service interface {
	// Enrich builds the classification and footprint prompts from the
	// product text, runs both generations, and returns the validated
	// result. It never returns a partial Result.
	Enrich(ctx context.Context, name, description string) (*Result, error)
}

type service struct {
	gen Generator
}

// NewService creates an enrichment service on top of the given
// generator. The generator is injected so tests can substitute a fake.
func NewService(gen Generator) Service {
	return &service{gen: gen}
}

func (s *service) Enrich(ctx context.Context, name, description string) (*Result, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, ErrEmptyDraft
	}

	// The two generations are independent and stateless, so they run
	// concurrently; either failure fails the whole call.
	var rawRating, rawScore string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := s.gen.Generate(gctx, ecoRatingPrompt(description))
		if err != nil {
			return fmt.Errorf("eco rating generation: %w", err)
		}
		rawRating = out
		return nil
	})
	g.Go(func() error {
		out, err := s.gen.Generate(gctx, carbonFootprintPrompt(name, description))
		if err != nil {
			return fmt.Errorf("carbon footprint generation: %w", err)
		}
		rawScore = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rating, err := ParseRating(rawRating)
	if err != nil {
		return nil, err
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(rawScore), 64)
	if err != nil {
		return nil, &InvalidScoreError{Raw: rawScore, Err: err}
	}

	return &Result{Rating: rating, CarbonScore: clampScore(score)}, nil
}

func ecoRatingPrompt(description string) string {
	return fmt.Sprintf(`Based on the following product description, classify its eco rating as "High", "Moderate", or "Low":
Description: %s
Respond with only one word: High, Moderate, or Low.`, description)
}

func carbonFootprintPrompt(name, description string) string {
	return fmt.Sprintf(`Based on the following product description or product name, estimate the carbon footprint score of the product on a scale of 1-10 (with 1 being low and 10 being high):
Name: %s
Description: %s
Respond with only a number between 1 and 10.`, name, description)
}

// clampScore bounds a parsed score to the documented [1,10] range so
// out-of-range model output never reaches the stored aggregates.
func clampScore(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
