package planning

import "engenharia_os/internal/domain/entities"

// ValidatePlanning checks a planning submission for os. Rules run in order
// and the first failure is returned:
//
//  1. budget missing upstream => candidate budget must be supplied
//  2. start, end and planned HH must be supplied
//  3. end strictly after start
//  4. planned HH > 0
//  5. budget missing upstream => supplied budget > 0
//  6. supplied additional HH must not be negative
func ValidatePlanning(os entities.ServiceOrder, c entities.PlanningCandidate) Result {
	budgetRequired := !os.HasBudget()

	if budgetRequired && c.ValorOrcamento == nil {
		return fail(ReasonBudgetRequired)
	}
	if c.DataInicioPrevista == nil || c.DataFimPrevista == nil || c.HHPlanejado == nil {
		return fail(ReasonRequiredFieldsMissing)
	}
	if !c.DataFimPrevista.After(*c.DataInicioPrevista) {
		return fail(ReasonEndBeforeStart)
	}
	if *c.HHPlanejado <= 0 {
		return fail(ReasonPlannedHoursNotPositive)
	}
	if budgetRequired && *c.ValorOrcamento <= 0 {
		return fail(ReasonBudgetNotPositive)
	}
	if c.HHAdicional != nil && *c.HHAdicional < 0 {
		return fail(ReasonAdditionalNegative)
	}
	return pass()
}

// PlanningUpdate derives the fields persisted by a validated planning
// submission. Additional HH defaults to zero; the budget is only written
// when a positive value was supplied, so an existing budget is never
// overwritten by a zero.
func PlanningUpdate(c entities.PlanningCandidate) entities.ServiceOrderUpdate {
	additional := 0.0
	if c.HHAdicional != nil {
		additional = *c.HHAdicional
	}
	planned := *c.HHPlanejado

	u := entities.ServiceOrderUpdate{
		DataInicioPrevista: c.DataInicioPrevista,
		DataFimPrevista:    c.DataFimPrevista,
		HHPlanejado:        &planned,
		HHAdicional:        &additional,
	}
	if c.ValorOrcamento != nil && *c.ValorOrcamento > 0 {
		budget := *c.ValorOrcamento
		u.ValorOrcamento = &budget
	}
	return u
}
