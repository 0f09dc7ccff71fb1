package response

import (
	"time"

	"engenharia_os/internal/domain/entities"
)

type PlanningFieldsResponse struct {
	DataInicioPrevista *time.Time `json:"data_inicio_prevista"`
	DataFimPrevista    *time.Time `json:"data_fim_prevista"`
	HHPlanejado        *float64   `json:"hh_planejado"`
	HHAdicional        *float64   `json:"hh_adicional"`
	ValorOrcamento     *float64   `json:"valor_orcamento"`
}

type ReplanningFieldsResponse struct {
	NovaDataInicio *time.Time `json:"nova_data_inicio"`
	NovaDataFim    *time.Time `json:"nova_data_fim"`
	HHAdicional    *float64   `json:"hh_adicional"`
	Motivo         string     `json:"motivo"`
}

// EditSessionResponse exposes only the form matching the active mode.
type EditSessionResponse struct {
	SessionID     string                    `json:"session_id"`
	Mode          string                    `json:"mode"`
	OSID          string                    `json:"os_id,omitempty"`
	LoadedVersion int64                     `json:"loaded_version,omitempty"`
	Planning      *PlanningFieldsResponse   `json:"planning,omitempty"`
	Replanning    *ReplanningFieldsResponse `json:"replanning,omitempty"`
	StartedAt     time.Time                 `json:"started_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

func FromEditSession(s entities.EditSession) EditSessionResponse {
	res := EditSessionResponse{
		SessionID:     s.ID,
		Mode:          string(s.Mode),
		OSID:          s.OSID,
		LoadedVersion: s.LoadedVersion,
		StartedAt:     s.StartedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if res.Mode == "" {
		res.Mode = "idle"
	}
	switch s.Mode {
	case entities.EditModePlanning:
		res.Planning = &PlanningFieldsResponse{
			DataInicioPrevista: s.Planning.DataInicioPrevista,
			DataFimPrevista:    s.Planning.DataFimPrevista,
			HHPlanejado:        s.Planning.HHPlanejado,
			HHAdicional:        s.Planning.HHAdicional,
			ValorOrcamento:     s.Planning.ValorOrcamento,
		}
	case entities.EditModeReplanning:
		res.Replanning = &ReplanningFieldsResponse{
			NovaDataInicio: s.Replanning.NovaDataInicio,
			NovaDataFim:    s.Replanning.NovaDataFim,
			HHAdicional:    s.Replanning.HHAdicional,
			Motivo:         s.Replanning.Motivo,
		}
	}
	return res
}

type NotificationResponse struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotifications(list []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, NotificationResponse{Kind: string(n.Kind), Message: n.Message, CreatedAt: n.CreatedAt})
	}
	return out
}
