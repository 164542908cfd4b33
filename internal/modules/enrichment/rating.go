package enrichment

import "strings"

// EcoRating is the sustainability classification assigned to a product.
type EcoRating string

const (
	RatingLow      EcoRating = "Low"
	RatingModerate EcoRating = "Moderate"
	RatingHigh     EcoRating = "High"
)

// Ordinal maps a rating onto the canonical comparable scale
// (Low=1, Moderate=2, High=3). This is the single mapping used for
// thresholding, ordering, and averaging; 0 means unknown.
func (r EcoRating) Ordinal() int {
	switch r {
	case RatingLow:
		return 1
	case RatingModerate:
		return 2
	case RatingHigh:
		return 3
	default:
		return 0
	}
}

// Valid reports whether r is one of the three known ratings.
func (r EcoRating) Valid() bool { return r.Ordinal() != 0 }

// RatingFromOrdinal is the inverse of Ordinal.
func RatingFromOrdinal(n int) (EcoRating, bool) {
	switch n {
	case 1:
		return RatingLow, true
	case 2:
		return RatingModerate, true
	case 3:
		return RatingHigh, true
	default:
		return "", false
	}
}

// ParseRating normalises raw model output into an EcoRating: whitespace
// is trimmed and the word title-cased before the closed-set check.
// Output that does not land in the set is an InvalidRatingError, never
// silently coerced.
func ParseRating(raw string) (EcoRating, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &InvalidRatingError{Raw: raw}
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	r := EcoRating(s)
	if !r.Valid() {
		return "", &InvalidRatingError{Raw: raw}
	}
	return r, nil
}
