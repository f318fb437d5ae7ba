// Package utils provides general-purpose helpers shared across the
// application: base64 text codec, UUID generation, context keys for
// attempt-scoped values, and a preconfigured HTTP client.
package utils
