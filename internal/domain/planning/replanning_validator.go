package planning

import (
	"strings"

	"engenharia_os/internal/domain/entities"
)

// ValidateReplanning checks a replanning submission. Rules, in order:
// every field supplied (motivo non-blank), end strictly after start,
// additional HH > 0.
func ValidateReplanning(_ entities.ServiceOrder, c entities.ReplanningCandidate) Result {
	if c.NovaDataInicio == nil || c.NovaDataFim == nil || c.HHAdicional == nil || strings.TrimSpace(c.Motivo) == "" {
		return fail(ReasonRequiredFieldsMissing)
	}
	if !c.NovaDataFim.After(*c.NovaDataInicio) {
		return fail(ReasonEndBeforeStart)
	}
	if *c.HHAdicional <= 0 {
		return fail(ReasonAdditionalNotPositive)
	}
	return pass()
}

// ReplanningUpdate derives the fields persisted by a validated replanning.
// The new additional total is the previous additional HH plus the delta
// (hhTotal - hhPlanejado + delta, simplified).
func ReplanningUpdate(os entities.ServiceOrder, c entities.ReplanningCandidate) entities.ServiceOrderUpdate {
	additional := os.HHAdicional + *c.HHAdicional
	motivo := strings.TrimSpace(c.Motivo)
	return entities.ServiceOrderUpdate{
		DataInicioPrevista:      c.NovaDataInicio,
		DataFimPrevista:         c.NovaDataFim,
		HHAdicional:             &additional,
		JustificativaEngenharia: &motivo,
	}
}
