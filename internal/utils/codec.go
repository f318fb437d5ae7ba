// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "encoding/base64"

// EncodeBase64 returns the standard (padded) base64 text form of b.
// This is the representation used for embedded salts, ciphertext blobs, and
// cached keys.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 parses standard base64 text produced by [EncodeBase64].
// Returns an error for malformed input.
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
