// Package api exposes the recipe tool over HTTP.
//
// PageHandler serves the single HTML page: an ingredient form whose
// submission runs one generation round trip and renders the returned
// Markdown. RecipeHandler offers the same round trip as JSON under /api.
// Both delegate validation and generation to a RecipeSubmitter and only
// decide how the outcome is presented.
package api
