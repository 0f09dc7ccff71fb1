package usecase

import (
	"errors"
	"fmt"
	"strings"

	"engenharia_os/internal/domain/entities"
)

var (
	ErrInvalidOSID        = errors.New("invalid os id")
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrInvalidStatus      = errors.New("invalid os status")
	ErrNoActiveEdit       = errors.New("no service order under edit")
	ErrEditTargetMismatch = errors.New("service order under edit differs from request")
	ErrNotEligible        = errors.New("service order not eligible for this operation")
	ErrStaleServiceOrder  = errors.New("service order changed since the edit began")
)

// ValidationError is a rejected planning or replanning submission. Nothing
// was written; the operator may correct the fields and resubmit.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, " ")
}

// PersistenceError is a store failure. The OS is assumed to be in its
// pre-call state.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// StageTransitionError means the field update succeeded but the stage
// advance did not. The update is not rolled back.
type StageTransitionError struct {
	OSID string
	From entities.OSStatus
	To   entities.OSStatus
	Err  error
}

func (e *StageTransitionError) Error() string {
	return fmt.Sprintf("stage transition %s -> %s failed for os %s: %v", e.From, e.To, e.OSID, e.Err)
}

func (e *StageTransitionError) Unwrap() error {
	return e.Err
}
