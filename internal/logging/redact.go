// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package logging

import "strings"

// RedactToken masks a bearer token, keeping the first and last 4 characters.
// Tokens of 12 characters or fewer are masked entirely.
//
//	RedactToken("eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9") // "eyJh...VCJ9"
func RedactToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// RedactAuthorization masks the credential part of an Authorization header
// value while keeping the scheme.
func RedactAuthorization(header string) string {
	scheme, credential, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return RedactToken(header)
	}
	return scheme + " " + RedactToken(strings.TrimSpace(credential))
}

// Truncate shortens s to maxLen bytes, appending "..." when cut. Vendor
// response bodies are passed through this before being logged.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
