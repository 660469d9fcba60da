package driving

import "context"

// SessionService manages the signed-in user and their access token.
type SessionService interface {
	// SignIn checks the allow-list, runs consent and stores the token.
	SignIn(ctx context.Context, email string) error

	// SignOut clears the token and the signed-in user.
	SignOut()

	// CurrentUser returns the signed-in email, or "" if none.
	CurrentUser() string
}
