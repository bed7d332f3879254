package auth

import "errors"

var (
	// ErrMissingToken means the request carried no bearer token at all.
	ErrMissingToken = errors.New("no token provided")

	// ErrInvalidSignature covers tampered tokens, tokens signed with another
	// secret, and strings that are not tokens at all.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrExpired is returned for a correctly signed token past its expiry.
	ErrExpired = errors.New("token expired")
)
