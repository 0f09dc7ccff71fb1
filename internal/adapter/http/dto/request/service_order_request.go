package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"engenharia_os/internal/domain/entities"
	"engenharia_os/pkg/format"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

// PlanningFieldsRequest carries the planning form. Absent values stay nil so
// the validator can report them as missing.
type PlanningFieldsRequest struct {
	DataInicioPrevista string   `json:"data_inicio_prevista" example:"2025-01-01"`
	DataFimPrevista    string   `json:"data_fim_prevista" example:"2025-01-10"`
	HHPlanejado        *float64 `json:"hh_planejado" example:"40"`
	HHAdicional        *float64 `json:"hh_adicional" example:"0"`
	ValorOrcamento     *float64 `json:"valor_orcamento" example:"3800"`
}

func (r PlanningFieldsRequest) ToCandidate() (entities.PlanningCandidate, error) {
	start, err := parseOptionalDate("data_inicio_prevista", r.DataInicioPrevista)
	if err != nil {
		return entities.PlanningCandidate{}, err
	}
	end, err := parseOptionalDate("data_fim_prevista", r.DataFimPrevista)
	if err != nil {
		return entities.PlanningCandidate{}, err
	}
	return entities.PlanningCandidate{
		DataInicioPrevista: start,
		DataFimPrevista:    end,
		HHPlanejado:        r.HHPlanejado,
		HHAdicional:        r.HHAdicional,
		ValorOrcamento:     r.ValorOrcamento,
	}, nil
}

// ReplanningFieldsRequest carries the replanning form. hh_adicional is the
// extra HH requested by this replanning, not the new total.
type ReplanningFieldsRequest struct {
	NovaDataInicio string   `json:"nova_data_inicio" example:"2025-02-01"`
	NovaDataFim    string   `json:"nova_data_fim" example:"2025-02-20"`
	HHAdicional    *float64 `json:"hh_adicional" example:"10"`
	Motivo         string   `json:"motivo" example:"client delay"`
}

func (r ReplanningFieldsRequest) ToCandidate() (entities.ReplanningCandidate, error) {
	start, err := parseOptionalDate("nova_data_inicio", r.NovaDataInicio)
	if err != nil {
		return entities.ReplanningCandidate{}, err
	}
	end, err := parseOptionalDate("nova_data_fim", r.NovaDataFim)
	if err != nil {
		return entities.ReplanningCandidate{}, err
	}
	return entities.ReplanningCandidate{
		NovaDataInicio: start,
		NovaDataFim:    end,
		HHAdicional:    r.HHAdicional,
		Motivo:         r.Motivo,
	}, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := format.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, field)
	}
	return &t, nil
}
