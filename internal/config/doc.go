// Package config resolves the application's configuration once at startup.
//
// The Gemini credential is looked up in a secrets file first and in the
// process environment second; when both are empty Load fails with
// ErrMissingCredential and the caller is expected to halt. Every other
// setting comes from CHEF_ prefixed environment variables with defaults.
package config
