// Package generation defines the boundary between the application and the
// hosted LLM that writes recipes. The Generator interface hides the Gemini
// client so the recipe service and the HTTP layer can be tested with a
// substitute implementation.
package generation
