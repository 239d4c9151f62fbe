package bookingapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/usecase/shared"
)

type ErrorKind string

const (
	KindNotFound    ErrorKind = "NOT_FOUND"
	KindValidation  ErrorKind = "VALIDATION"
	KindUnavailable ErrorKind = "UNAVAILABLE"
	KindFailure     ErrorKind = "FAILURE"
)

// UpstreamError is every failure the booking API client returns. Fields carries
// per-field messages from a 422 answer.
type UpstreamError struct {
	Kind   ErrorKind
	Status int
	Fields map[string][]string
	msg    string
	err    error // wrapped low-level error
}

func (e *UpstreamError) Error() string {
	base := string(e.Kind) + ": " + e.msg
	if e.Status != 0 {
		base = fmt.Sprintf("%s (status=%d)", base, e.Status)
	}
	if e.err != nil {
		return base + ": " + e.err.Error()
	}
	return base
}

func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Is maps the kind onto the usecase-level failure classes.
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case shared.ErrUpstreamNotFound:
		return e.Kind == KindNotFound
	case shared.ErrUpstreamRejected:
		return e.Kind == KindValidation
	case shared.ErrUpstreamUnavailable:
		return e.Kind == KindUnavailable
	}
	return false
}

func (e *UpstreamError) RejectedFields() map[string][]string {
	if e.Kind != KindValidation {
		return nil
	}
	return e.Fields
}

// FieldNames lists the offending fields in a stable order.
func (e *UpstreamError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func wrapUpstreamErr(logger *slog.Logger, kind ErrorKind, status int, msg string, err error) error {
	level := slog.LevelWarn
	if kind == KindNotFound || kind == KindValidation {
		level = slog.LevelDebug
	}
	logger.Log(context.Background(), level, "Booking API error: "+msg,
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return &UpstreamError{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// FieldErrors returns the per-field messages of a validation failure, if any.
func FieldErrors(err error) map[string][]string {
	var e *UpstreamError
	if errors.As(err, &e) && e.Kind == KindValidation {
		return e.Fields
	}
	return nil
}
