package domain

// OutcomeKind classifies the result of a single API request.
type OutcomeKind int

// Request outcomes. Exactly one applies to every executed request.
const (
	// OutcomeOK is a 2xx response carrying a payload.
	OutcomeOK OutcomeKind = iota

	// OutcomeUnauthorized is an HTTP 401 response.
	OutcomeUnauthorized

	// OutcomeAPIError is any other non-2xx response.
	OutcomeAPIError

	// OutcomeTransportError means the call could not be completed.
	OutcomeTransportError
)

// String returns the string representation.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeAPIError:
		return "api_error"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one request.
// Payload is set for OutcomeOK, Status and Message for OutcomeAPIError,
// and Err for OutcomeTransportError.
type Outcome struct {
	Kind    OutcomeKind
	Payload []byte
	Status  int
	Message string
	Err     error
}

// OK builds a successful outcome.
func OK(payload []byte) Outcome {
	return Outcome{Kind: OutcomeOK, Payload: payload, Status: 200}
}

// Unauthorized builds a 401 outcome.
func Unauthorized() Outcome {
	return Outcome{Kind: OutcomeUnauthorized, Status: 401}
}

// APIError builds a non-401 error outcome.
func APIError(status int, message string) Outcome {
	return Outcome{Kind: OutcomeAPIError, Status: status, Message: message}
}

// TransportError builds an outcome for a call that never completed.
func TransportError(err error) Outcome {
	return Outcome{Kind: OutcomeTransportError, Err: err}
}
