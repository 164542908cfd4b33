package enrichment

import "context"

// Generator is the vendor-agnostic interface to an external text
// generation capability. To switch providers, implement this interface;
// nothing else in the service knows which vendor is behind it.
type Generator interface {
	// Generate sends a single prompt and returns the raw generated text.
	Generate(ctx context.Context, prompt string) (string, error)
}
