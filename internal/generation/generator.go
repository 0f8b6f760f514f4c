package generation

import "context"

// Generator produces free text from a prompt using a hosted language model.
type Generator interface {
	// Generate sends prompt to the model in a single request and returns the
	// generated text. Failures are reported as errors wrapping one of the
	// sentinels in errors.go; implementations never retry.
	Generate(ctx context.Context, prompt string) (string, error)
}
