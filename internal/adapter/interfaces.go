// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter loads sealed pages for the viewer.
//
// The primary abstraction is [PageLoader], which hides whether a page comes
// from the local filesystem or from an http(s) URL. [NewPageLoader] picks the
// implementation from the source string.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PageLoader fetches the raw bytes of a sealed page.
type PageLoader interface {
	// Load returns the page content. Implementations honour ctx
	// cancellation where the transport allows it.
	Load(ctx context.Context) ([]byte, error)

	// Source describes where the page comes from, for logs and titles.
	Source() string
}
