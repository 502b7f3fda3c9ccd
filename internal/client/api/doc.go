// Package api wraps the DreamHost backend REST endpoints behind a Client
// interface. Every remote failure is normalized to *Error carrying the
// backend's human-readable message list, so upper layers never inspect
// response shapes themselves.
package api
