package entities

import (
	"errors"
	"fmt"
)

// OSStatus is the pipeline stage of a service order.
//
// Only em-planejamento and em-execucao are acted upon by the engineering
// lifecycle; the remaining stages are owned by other services.
type OSStatus string

const (
	OSStatusEmPlanejamento   OSStatus = "em-planejamento"
	OSStatusAguardandoAceite OSStatus = "aguardando-aceite"
	OSStatusEmExecucao       OSStatus = "em-execucao"
	OSStatusConcluida        OSStatus = "concluida"
	OSStatusCancelada        OSStatus = "cancelada"
)

var knownStatuses = map[OSStatus]struct{}{
	OSStatusEmPlanejamento:   {},
	OSStatusAguardandoAceite: {},
	OSStatusEmExecucao:       {},
	OSStatusConcluida:        {},
	OSStatusCancelada:        {},
}

func (s OSStatus) IsValid() bool {
	_, ok := knownStatuses[s]
	return ok
}

// Action is a user-initiated lifecycle operation.
type Action string

const (
	ActionFinalizePlanning Action = "finalize-planning"
	ActionReplan           Action = "replan"
)

var ErrTransitionNotAllowed = errors.New("transition not allowed")

type transitionKey struct {
	from   OSStatus
	action Action
}

// Replanning is a self-loop: it mutates schedule and hours, never the stage.
var transitions = map[transitionKey]OSStatus{
	{from: OSStatusEmPlanejamento, action: ActionFinalizePlanning}: OSStatusAguardandoAceite,
	{from: OSStatusEmExecucao, action: ActionReplan}:               OSStatusEmExecucao,
}

// Transition returns the stage an OS in from reaches through action.
func Transition(from OSStatus, action Action) (OSStatus, error) {
	to, ok := transitions[transitionKey{from: from, action: action}]
	if !ok {
		return "", fmt.Errorf("%w: %s from %q", ErrTransitionNotAllowed, action, from)
	}
	return to, nil
}

// CanPerform reports whether action is allowed from the given stage.
func CanPerform(from OSStatus, action Action) bool {
	_, err := Transition(from, action)
	return err == nil
}
