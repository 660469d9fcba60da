package domain

// AccessToken is an opaque bearer credential.
// Its expiry is unknown; invalidity is only learnt from a 401 response.
type AccessToken string

// IsZero returns true if no token is present.
func (t AccessToken) IsZero() bool {
	return t == ""
}

// Redacted returns a form safe for logs.
func (t AccessToken) Redacted() string {
	if len(t) <= 8 {
		return "****"
	}
	return string(t[:4]) + "****"
}
