package trademark

import "errors"

// Pipeline failure taxonomy. Every one of these is caught at the aggregator
// boundary and converted into an error-status result; none escapes a check.
var (
	// ErrMissingCredentials means the registry presented its login wall but
	// no credentials were configured. Fatal, never retried.
	ErrMissingCredentials = errors.New("registry credentials not configured")

	// ErrAuthentication covers a login page without usable fields or a
	// login submission the registry silently rejected.
	ErrAuthentication = errors.New("registry authentication failed")

	// ErrFormNotFound means the search field never appeared within the
	// polling budget, whatever state the page settled in.
	ErrFormNotFound = errors.New("search form not found")

	// ErrExtraction means the results markup could not be read back.
	ErrExtraction = errors.New("result extraction failed")

	// ErrNavigationTimeout marks a navigation that exhausted its budget at
	// a step where the pipeline cannot continue without it.
	ErrNavigationTimeout = errors.New("navigation timed out")
)
