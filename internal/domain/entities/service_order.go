package entities

import "time"

// ServiceOrder is the engineering service order (OS) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status
//
// Ownership:
//   - Cliente, SolicitanteNome and DataCompromissada come from the upstream
//     solicitation and are never written by the lifecycle.
//   - Planning writes the planned window, HH and (when missing) the budget.
//   - Replanning rewrites the window, tops up HHAdicional and overwrites the
//     engineering justification.
//
// Version is incremented on every write and used as the optimistic lock.
type ServiceOrder struct {
	ID                      string     `json:"id"`
	Numero                  int64      `json:"numero"`
	Status                  OSStatus   `json:"status"`
	Cliente                 string     `json:"cliente"`
	SolicitanteNome         string     `json:"solicitante_nome"`
	Disciplina              string     `json:"disciplina"`
	CCA                     string     `json:"cca"`
	ResponsavelEM           string     `json:"responsavel_em"`
	DataCompromissada       *time.Time `json:"data_compromissada,omitempty"`
	DataInicioPrevista      *time.Time `json:"data_inicio_prevista,omitempty"`
	DataFimPrevista         *time.Time `json:"data_fim_prevista,omitempty"`
	HHPlanejado             float64    `json:"hh_planejado"`
	HHAdicional             float64    `json:"hh_adicional"`
	ValorOrcamento          float64    `json:"valor_orcamento"`
	JustificativaEngenharia string     `json:"justificativa_engenharia,omitempty"`
	Version                 int64      `json:"version"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// HHTotal is planned plus additional labor hours.
func (o ServiceOrder) HHTotal() float64 {
	return o.HHPlanejado + o.HHAdicional
}

// HasBudget reports whether the upstream solicitation already priced the OS.
func (o ServiceOrder) HasBudget() bool {
	return o.ValorOrcamento > 0
}

// ServiceOrderUpdate is a partial write. Nil fields are left untouched.
type ServiceOrderUpdate struct {
	DataInicioPrevista      *time.Time
	DataFimPrevista         *time.Time
	HHPlanejado             *float64
	HHAdicional             *float64
	ValorOrcamento          *float64
	JustificativaEngenharia *string
}

// IsEmpty reports whether the update carries no field at all.
func (u ServiceOrderUpdate) IsEmpty() bool {
	return u.DataInicioPrevista == nil &&
		u.DataFimPrevista == nil &&
		u.HHPlanejado == nil &&
		u.HHAdicional == nil &&
		u.ValorOrcamento == nil &&
		u.JustificativaEngenharia == nil
}

// Apply returns a copy of o with the update applied. Version and timestamps
// are the store's responsibility.
func (u ServiceOrderUpdate) Apply(o ServiceOrder) ServiceOrder {
	if u.DataInicioPrevista != nil {
		v := *u.DataInicioPrevista
		o.DataInicioPrevista = &v
	}
	if u.DataFimPrevista != nil {
		v := *u.DataFimPrevista
		o.DataFimPrevista = &v
	}
	if u.HHPlanejado != nil {
		o.HHPlanejado = *u.HHPlanejado
	}
	if u.HHAdicional != nil {
		o.HHAdicional = *u.HHAdicional
	}
	if u.ValorOrcamento != nil {
		o.ValorOrcamento = *u.ValorOrcamento
	}
	if u.JustificativaEngenharia != nil {
		o.JustificativaEngenharia = *u.JustificativaEngenharia
	}
	return o
}
