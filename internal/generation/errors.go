package generation

import "errors"

// Common errors returned by Generator implementations.
var (
	// ErrGenerationFailed is returned when the remote call itself fails
	// (network, authentication, quota).
	ErrGenerationFailed = errors.New("failed to generate recipe")

	// ErrInvalidResponse is returned when the model answers without usable text.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when Generate is called without a prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
