package session

import "errors"

var (
	// ErrMissingAccessToken indicates a sign-in without an access token.
	ErrMissingAccessToken = errors.New("session.missing_access_token")

	// ErrNotAuthenticated indicates no user is signed in.
	ErrNotAuthenticated = errors.New("session.not_authenticated")
)
