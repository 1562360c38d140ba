// Package api is the HTTP client of the CareerForge REST backend.
//
// Every call attaches "Authorization: Bearer <token>" when the TokenSource
// has a token, sends JSON (or multipart for file uploads) and decodes the
// JSON reply into a typed model from package models.
//
// # Errors
//
// A non-2xx reply becomes *Error whose message is taken from the body's
// "error" string, "error.message", or "detail", in that order, falling back
// to "HTTP <status>". A 401 matches ErrUnauthorized. Transport failures wrap
// ErrUnavailable; a 2xx body that does not decode or validate wraps
// ErrMalformedResponse. There are no retries.
package api
