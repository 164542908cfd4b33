package enrichment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator answers prompts from a script keyed on prompt content.
type fakeGenerator struct {
	ratingReply string
	scoreReply  string
	err         error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if strings.Contains(prompt, "classify its eco rating") {
		return f.ratingReply, nil
	}
	return f.scoreReply, nil
}

func TestEnrich_HappyPath(t *testing.T) {
	svc := NewService(&fakeGenerator{ratingReply: "High", scoreReply: "2.0"})

	res, err := svc.Enrich(context.Background(), "Bamboo Brush", "100% bamboo, compostable handle")
	require.NoError(t, err)
	assert.Equal(t, RatingHigh, res.Rating)
	assert.Equal(t, 2.0, res.CarbonScore)
}

// The rating must always land in the closed set regardless of how the
// model cases or pads its answer.
func TestEnrich_NormalisesRating(t *testing.T) {
	for _, raw := range []string{"high", "HIGH", "  High \n", "hIgH"} {
		svc := NewService(&fakeGenerator{ratingReply: raw, scoreReply: "5"})
		res, err := svc.Enrich(context.Background(), "n", "d")
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, RatingHigh, res.Rating, "raw %q", raw)
	}
}

func TestEnrich_RejectsUnknownRating(t *testing.T) {
	svc := NewService(&fakeGenerator{ratingReply: "Very eco friendly!", scoreReply: "5"})

	_, err := svc.Enrich(context.Background(), "n", "d")
	var invalid *InvalidRatingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Very eco friendly!", invalid.Raw)
}

func TestEnrich_ClampsScore(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"12", 10},
		{"-3", 1},
		{"7.5", 7.5},
		{"1", 1},
		{"10", 10},
		{" 4.25 ", 4.25},
	}
	for _, tc := range cases {
		svc := NewService(&fakeGenerator{ratingReply: "Low", scoreReply: tc.raw})
		res, err := svc.Enrich(context.Background(), "n", "d")
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.want, res.CarbonScore, "raw %q", tc.raw)
	}
}

func TestEnrich_RejectsUnparseableScore(t *testing.T) {
	svc := NewService(&fakeGenerator{ratingReply: "Low", scoreReply: "around five-ish"})

	_, err := svc.Enrich(context.Background(), "n", "d")
	var invalid *InvalidScoreError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "around five-ish", invalid.Raw)
}

func TestEnrich_EmptyDraftRejectedBeforeGeneration(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("should never be called")}
	svc := NewService(gen)

	_, err := svc.Enrich(context.Background(), "Bamboo Brush", "   ")
	assert.ErrorIs(t, err, ErrEmptyDraft)

	_, err = svc.Enrich(context.Background(), "", "a description")
	assert.ErrorIs(t, err, ErrEmptyDraft)
}

func TestEnrich_PropagatesUnavailable(t *testing.T) {
	svc := NewService(&fakeGenerator{err: ErrUnavailable})

	_, err := svc.Enrich(context.Background(), "n", "d")
	assert.ErrorIs(t, err, ErrUnavailable)
}
