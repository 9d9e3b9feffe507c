package utils

import "fmt"

// The pipeline's failure taxonomy. Controllers map these onto HTTP statuses
// with errors.As instead of string-matching provider messages.

// ConfigurationError means a required credential or setting was missing at
// call time.
type ConfigurationError struct {
    Key string
}

func (e *ConfigurationError) Error() string {
    return fmt.Sprintf("missing configuration: %s", e.Key)
}

// AuthorizationError means the provider rejected our credential (401/403
// class responses). Reported distinctly to aid diagnosis.
type AuthorizationError struct {
    Provider string
    Status   int
}

func (e *AuthorizationError) Error() string {
    return fmt.Sprintf("%s rejected credentials (status %d)", e.Provider, e.Status)
}

// RemoteServiceError covers any other non-success provider response.
type RemoteServiceError struct {
    Provider string
    Status   int
    Detail   string
}

func (e *RemoteServiceError) Error() string {
    if e.Detail != "" {
        return fmt.Sprintf("%s error %d: %s", e.Provider, e.Status, e.Detail)
    }
    return fmt.Sprintf("%s error %d", e.Provider, e.Status)
}

// NotFoundError means the nutrition database returned zero matches.
type NotFoundError struct {
    Query string
}

func (e *NotFoundError) Error() string {
    return fmt.Sprintf("no nutrition record found for %q", e.Query)
}

// PreconditionError means a save was attempted for a non-food or incomplete
// analysis result.
type PreconditionError struct {
    Reason string
}

func (e *PreconditionError) Error() string {
    return fmt.Sprintf("precondition failed: %s", e.Reason)
}
