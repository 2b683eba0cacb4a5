package service

import "errors"

var (
	// ErrAuthentication wraps every login or refresh failure.
	ErrAuthentication = errors.New("authentication failed")
	// ErrChallengeRequired is returned when the login service answers with a
	// challenge (new password, MFA, ...) instead of a token.
	ErrChallengeRequired = errors.New("received challenge requiring user action")
	// ErrNoIDToken is returned when a login response carries no ID token.
	ErrNoIDToken = errors.New("login response has no id token")
	// ErrNoValidLogin is returned by Token when no session exists.
	ErrNoValidLogin = errors.New("no valid login")

	ErrProtocol = errors.New("malformed delta page")
	// ErrUnknownDataset is returned for a dataset filter naming no dataset.
	ErrUnknownDataset = errors.New("unknown dataset")

	ErrSchemaMismatch  = errors.New("database schema does not match the agent")
	ErrDriverDownlevel = errors.New("database schema is newer than the agent")
)
