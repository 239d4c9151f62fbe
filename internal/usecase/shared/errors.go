package shared

import "playroom-booking/internal/pkg/errs"

// Upstream failure classes. Adapters make their errors match these through errs.Is
// so usecases and handlers never depend on a concrete client.
var ErrSessionNotFound = errs.New("no active booking draft for this session")

var (
	ErrUpstreamNotFound    = errs.New("booking service has no such record")
	ErrUpstreamRejected    = errs.New("booking service rejected the request")
	ErrUpstreamUnavailable = errs.New("booking service is unavailable")
)

// FieldRejection is implemented by upstream errors that name offending fields.
type FieldRejection interface {
	RejectedFields() map[string][]string
}
