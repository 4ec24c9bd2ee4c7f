package mail

import (
	"errors"
	"fmt"
)

var (
	// ErrInteractionRequired means no usable token is stored and the user must sign in.
	ErrInteractionRequired = errors.New("mail: interactive sign-in required")
	ErrInvalidGrant        = errors.New("mail: invalid grant")
	ErrInvalidMessage      = errors.New("mail: message needs a recipient and a subject")
	// ErrTokenRejected means the provider refused the token.
	ErrTokenRejected = errors.New("mail: token rejected by provider")
)

// SendError is a non-accepted response from the provider.
type SendError struct {
	StatusCode int
	Body       string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail: send failed with status %d: %s", e.StatusCode, e.Body)
}
