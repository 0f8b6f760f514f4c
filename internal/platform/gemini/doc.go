// Package gemini implements generation.Generator on top of Google's Gemini
// API through the google.golang.org/genai client.
//
// The genai client is created once by NewGenerator and reused for every
// request. Each Generate call performs exactly one GenerateContent request:
// there is no retry, no streaming and no timeout beyond the caller's context.
// API failures, empty answers and safety blocks are translated into the
// sentinel errors of the generation package.
package gemini
