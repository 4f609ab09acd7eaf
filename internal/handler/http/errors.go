package http

import "errors"

// Reasons the auth middleware turns a peer away before its session token
// is looked at.
var (
	ErrNoAuthorization        = errors.New("missing `Authorization` header")
	ErrMalformedAuthorization = errors.New("`Authorization` header is not a bearer token")
)
