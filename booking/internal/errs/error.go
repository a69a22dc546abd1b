package errs

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unknown user")
	ErrForbidden         = errors.New("admin role required")
	ErrNoSlotsAvailable  = errors.New("no_slots_available")
	ErrSlotConflict      = errors.New("slot already booked, try another one")
	ErrChecklistPending  = errors.New("pending checklist must be submitted before a new booking")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNotEligible       = errors.New("booking is not eligible for a checklist")
	ErrChecklistExists   = errors.New("checklist already submitted")
	ErrRoomInactive      = errors.New("room is inactive")
)

// ValidationError carries field level problems found before any persistence call.
type ValidationError struct {
	FieldErrors map[string]string `json:"errors"`
}

func (v *ValidationError) Error() string {
	if v == nil || len(v.FieldErrors) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v.FieldErrors))
	for f := range v.FieldErrors {
		fields = append(fields, f+": "+v.FieldErrors[f])
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, "; ")
}

func (v *ValidationError) Add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// Kind is a stable label for logs.
func Kind(err error) string {
	var vErr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &vErr):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNoSlotsAvailable), errors.Is(err, ErrSlotConflict):
		return "availability"
	case errors.Is(err, ErrChecklistPending):
		return "obligation"
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrNotEligible), errors.Is(err, ErrChecklistExists), errors.Is(err, ErrRoomInactive):
		return "state"
	default:
		return "unexpected"
	}
}
