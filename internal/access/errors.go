package access

import (
	"errors"
	"fmt"
	"log"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Err converts a denial into a typed error callers can errors.Is against.
// Allowed decisions return nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	if d.Reason == DenyUnauthenticated {
		return fmt.Errorf("%w: %s", ErrUnauthenticated, d.Reason)
	}
	return fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
}

// LogDenial records why the gate said no. Denials are ordinary outcomes, so
// this is the only side effect they ever have.
func LogDenial(logger *log.Logger, sess *Session, action Action, d Decision) {
	if logger == nil || d.Allowed {
		return
	}
	if sess == nil {
		logger.Printf("[Access] denied action=%s reason=%s session=anonymous", action, d.Reason)
		return
	}
	logger.Printf("[Access] denied action=%s reason=%s user=%s role=%s", action, d.Reason, sess.UserID, sess.Role)
}
