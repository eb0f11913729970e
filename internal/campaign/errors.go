package campaign

import "errors"

// Sentinel errors for the recovery workflow. The admin UI matches on the
// message text, so the wording is part of the contract.
var (
	ErrNotFound       = errors.New("user not found")
	ErrAlreadySent    = errors.New("incomplete signup email already sent to this user")
	ErrNoEmail        = errors.New("could not get user email")
	ErrSendInProgress = errors.New("a send for this user is already in progress")
)
