// Package redact strips credentials from error text before it is logged or
// shown to a user. Errors from the Gemini client can echo request URLs or
// headers, and those may carry the API key.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedTokenPlaceholder = "[REDACTED_TOKEN]"
)

var (
	// Google API keys: "AIza" followed by 35 URL-safe characters.
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	// key=... in query strings.
	queryKeyRegex = regexp.MustCompile(`([?&](?:key|api_key|apikey)=)[^&\s"']+`)

	// api_key: ..., x-goog-api-key=..., secret "..." and friends.
	apiKeyRegex = regexp.MustCompile(
		`(?i)((?:x-goog-)?api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	bearerRegex = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`)
)

// String redacts credentials from input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := googleKeyRegex.ReplaceAllString(input, RedactedKeyPlaceholder)
	result = queryKeyRegex.ReplaceAllString(result, "${1}"+RedactedKeyPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, "${1}${2}"+RedactedKeyPlaceholder)
	result = bearerRegex.ReplaceAllString(result, "${1}"+RedactedTokenPlaceholder)

	return result
}

// Error redacts credentials from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
