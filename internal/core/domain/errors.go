package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication Errors.

	// ErrAuthorizationDenied indicates the user cancelled consent or the provider rejected it.
	ErrAuthorizationDenied = errors.New("authorization denied")

	// ErrAuthorizationFailed indicates the provider returned no usable credential.
	ErrAuthorizationFailed = errors.New("authorization failed")

	// ErrAuthenticationExhausted indicates a 401 persisted through the single reauthorisation.
	ErrAuthenticationExhausted = errors.New("authentication exhausted")

	// ErrNotAllowed indicates the email is not on the access allow-list.
	ErrNotAllowed = errors.New("email is not authorized to access this application")

	// ErrNotSignedIn indicates an operation needs a signed-in user.
	ErrNotSignedIn = errors.New("not signed in")

	// Report Errors.

	// ErrRemoteReport indicates the upstream API answered with a non-401 error status.
	ErrRemoteReport = errors.New("remote report error")

	// ErrNetwork indicates the request could not be completed at all.
	ErrNetwork = errors.New("network error")

	// ErrMalformedReport indicates a columnar payload violated the row/column invariant.
	ErrMalformedReport = errors.New("malformed report")

	// ErrNoChannel indicates the signed-in account has no YouTube channel.
	ErrNoChannel = errors.New("no YouTube channel found for this account")

	// ErrNoUploadsCollection indicates the channel has no resolvable uploads playlist.
	ErrNoUploadsCollection = errors.New("no uploads playlist found")
)

// RemoteReportError carries the upstream status and message of a failed API call.
type RemoteReportError struct {
	Status  int
	Message string
}

func (e *RemoteReportError) Error() string {
	return fmt.Sprintf("remote report error (status %d): %s", e.Status, e.Message)
}

// Is reports whether target is ErrRemoteReport.
func (e *RemoteReportError) Is(target error) bool {
	return target == ErrRemoteReport
}

// NetworkError wraps a transport failure.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Is reports whether target is ErrNetwork.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MalformedReportError describes which row broke normalisation.
// Row is -1 when the failure is not tied to a row.
type MalformedReportError struct {
	Row    int
	Want   int
	Got    int
	Reason string
}

func (e *MalformedReportError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("malformed report: %s", e.Reason)
	}
	return fmt.Sprintf("malformed report: row %d has %d values, want %d", e.Row, e.Got, e.Want)
}

// Is reports whether target is ErrMalformedReport.
func (e *MalformedReportError) Is(target error) bool {
	return target == ErrMalformedReport
}

// UserMessage returns the display string for an error surfaced to a view.
// Views use it instead of interpreting error internals.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var remote *RemoteReportError
	switch {
	case errors.Is(err, ErrAuthorizationDenied):
		return "Sign-in required: access to YouTube was not granted."
	case errors.Is(err, ErrAuthorizationFailed):
		return "Sign-in failed. Please try again."
	case errors.Is(err, ErrAuthenticationExhausted):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, ErrNotAllowed):
		return "This email is not authorized to access this application."
	case errors.Is(err, ErrNotSignedIn):
		return "Please sign in first."
	case errors.As(err, &remote):
		return remote.Message
	case errors.Is(err, ErrNetwork):
		return "Could not reach YouTube. Check your connection."
	case errors.Is(err, ErrMalformedReport):
		return "The report could not be displayed."
	case errors.Is(err, ErrNoUploadsCollection):
		return "No uploads found for this channel."
	case errors.Is(err, ErrNoChannel):
		return ErrNoChannel.Error()
	default:
		return err.Error()
	}
}
