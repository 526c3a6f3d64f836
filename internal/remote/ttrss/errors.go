package ttrss

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated means the session was rejected and one transparent
// relogin also failed. Callers should stop the current pass instead of
// retry-storming.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a server-reported error (disabled API, bad request). It is
// not retried; the message is fit to show a user.
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ttrss api error in %s: %s", e.Op, e.userText())
}

// userText translates well-known server error codes into something a
// person can act on. Unknown codes pass through verbatim.
func (e *APIError) userText() string {
	switch e.Message {
	case apiErrAPIDisabled:
		return "API access is disabled for this account, enable it in the server preferences"
	case apiErrLoginFailed:
		return "login rejected, check username and password"
	default:
		return e.Message
	}
}

const (
	apiErrNotLoggedIn = "NOT_LOGGED_IN"
	apiErrLoginFailed = "LOGIN_ERROR"
	apiErrAPIDisabled = "API_DISABLED"
)
