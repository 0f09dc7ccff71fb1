package request

import (
	"errors"
	"testing"
	"time"
)

func TestPlanningFieldsRequest_ToCandidate(t *testing.T) {
	hh := 40.0
	r := PlanningFieldsRequest{DataInicioPrevista: " 2025-01-01 ", DataFimPrevista: "2025-01-10T15:00:00-03:00", HHPlanejado: &hh}

	c, err := r.ToCandidate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.DataInicioPrevista == nil || !c.DataInicioPrevista.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", c.DataInicioPrevista)
	}
	if c.DataFimPrevista == nil || c.DataFimPrevista.Hour() != 18 {
		t.Fatalf("expected end normalized to UTC, got %v", c.DataFimPrevista)
	}
	if c.HHPlanejado == nil || *c.HHPlanejado != 40 || c.HHAdicional != nil || c.ValorOrcamento != nil {
		t.Fatalf("unexpected numbers: %+v", c)
	}

	empty, err := PlanningFieldsRequest{}.ToCandidate()
	if err != nil || empty.DataInicioPrevista != nil || empty.DataFimPrevista != nil {
		t.Fatalf("empty dates should stay nil: %+v err=%v", empty, err)
	}

	_, err = PlanningFieldsRequest{DataFimPrevista: "10/01/2025"}.ToCandidate()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestReplanningFieldsRequest_ToCandidate(t *testing.T) {
	hh := 10.0
	c, err := ReplanningFieldsRequest{NovaDataInicio: "2025-02-01", NovaDataFim: "2025-02-20", HHAdicional: &hh, Motivo: "client delay"}.ToCandidate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Motivo != "client delay" || *c.HHAdicional != 10 || c.NovaDataFim.Day() != 20 {
		t.Fatalf("unexpected candidate: %+v", c)
	}

	_, err = ReplanningFieldsRequest{NovaDataInicio: "yesterday"}.ToCandidate()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
