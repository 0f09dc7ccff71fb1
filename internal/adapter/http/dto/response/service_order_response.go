package response

import (
	"time"

	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/domain/planning"
	"engenharia_os/pkg/format"
)

type ServiceOrderResponse struct {
	ID                      string     `json:"id"`
	Numero                  int64      `json:"numero"`
	Status                  string     `json:"status"`
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
	HHTotal                 float64    `json:"hh_total"`
	ValorOrcamento          float64    `json:"valor_orcamento"`
	ValorEstimado           float64    `json:"valor_estimado"`
	ValorEstimadoFormatado  string     `json:"valor_estimado_formatado"`
	JustificativaEngenharia string     `json:"justificativa_engenharia,omitempty"`
	Version                 int64      `json:"version"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// FromServiceOrder maps an OS and prices its HH at hourlyRate.
func FromServiceOrder(o entities.ServiceOrder, hourlyRate float64) ServiceOrderResponse {
	cost := planning.EstimateCost(o.HHPlanejado, o.HHAdicional, hourlyRate)
	return ServiceOrderResponse{
		ID:                      o.ID,
		Numero:                  o.Numero,
		Status:                  string(o.Status),
		Cliente:                 o.Cliente,
		SolicitanteNome:         o.SolicitanteNome,
		Disciplina:              o.Disciplina,
		CCA:                     o.CCA,
		ResponsavelEM:           o.ResponsavelEM,
		DataCompromissada:       o.DataCompromissada,
		DataInicioPrevista:      o.DataInicioPrevista,
		DataFimPrevista:         o.DataFimPrevista,
		HHPlanejado:             o.HHPlanejado,
		HHAdicional:             o.HHAdicional,
		HHTotal:                 o.HHTotal(),
		ValorOrcamento:          o.ValorOrcamento,
		ValorEstimado:           format.RoundCurrency(cost),
		ValorEstimadoFormatado:  format.BRL(cost),
		JustificativaEngenharia: o.JustificativaEngenharia,
		Version:                 o.Version,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder, hourlyRate float64) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o, hourlyRate))
	}
	return out
}

// LifecycleResponse is returned by finalize and submit.
type LifecycleResponse struct {
	ServiceOrder           ServiceOrderResponse `json:"service_order"`
	CustoEstimado          float64              `json:"custo_estimado"`
	CustoEstimadoFormatado string               `json:"custo_estimado_formatado"`
}

func FromLifecycleResult(order entities.ServiceOrder, cost, hourlyRate float64) LifecycleResponse {
	return LifecycleResponse{
		ServiceOrder:           FromServiceOrder(order, hourlyRate),
		CustoEstimado:          format.RoundCurrency(cost),
		CustoEstimadoFormatado: format.BRL(cost),
	}
}
