package entities

import "time"

// EditMode tells which form an edit session currently holds.
type EditMode string

const (
	EditModeNone       EditMode = ""
	EditModePlanning   EditMode = "planning"
	EditModeReplanning EditMode = "replanning"
)

// PlanningCandidate holds the pending planning form values. A nil field was
// not supplied by the operator.
type PlanningCandidate struct {
	DataInicioPrevista *time.Time `json:"data_inicio_prevista,omitempty"`
	DataFimPrevista    *time.Time `json:"data_fim_prevista,omitempty"`
	HHPlanejado        *float64   `json:"hh_planejado,omitempty"`
	HHAdicional        *float64   `json:"hh_adicional,omitempty"`
	ValorOrcamento     *float64   `json:"valor_orcamento,omitempty"`
}

// ReplanningCandidate holds the pending replanning form values.
type ReplanningCandidate struct {
	NovaDataInicio *time.Time `json:"nova_data_inicio,omitempty"`
	NovaDataFim    *time.Time `json:"nova_data_fim,omitempty"`
	HHAdicional    *float64   `json:"hh_adicional,omitempty"`
	Motivo         string     `json:"motivo,omitempty"`
}

// EditSession is the per-operator editing state: at most one OS under edit,
// in one mode, with its pending values. It is never persisted to the OS store.
type EditSession struct {
	ID            string              `json:"id"`
	Mode          EditMode            `json:"mode"`
	OSID          string              `json:"os_id,omitempty"`
	LoadedVersion int64               `json:"loaded_version,omitempty"`
	Planning      PlanningCandidate   `json:"planning"`
	Replanning    ReplanningCandidate `json:"replanning"`
	StartedAt     time.Time           `json:"started_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// IsEditing reports whether the session has an OS under edit in mode.
func (s EditSession) IsEditing(mode EditMode) bool {
	return s.OSID != "" && s.Mode == mode
}

// Clear drops the OS under edit and every pending value.
func (s *EditSession) Clear() {
	s.Mode = EditModeNone
	s.OSID = ""
	s.LoadedVersion = 0
	s.Planning = PlanningCandidate{}
	s.Replanning = ReplanningCandidate{}
}
