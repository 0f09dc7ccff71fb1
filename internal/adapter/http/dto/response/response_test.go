package response

import (
	"testing"
	"time"

	"engenharia_os/internal/domain/entities"
)

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:          "os-1",
		Numero:      101,
		Status:      entities.OSStatusAguardandoAceite,
		HHPlanejado: 40,
		HHAdicional: 8,
		Version:     3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromServiceOrder(o, 95)
	if res.ID != "os-1" || res.Status != "aguardando-aceite" || res.Version != 3 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.HHTotal != 48 || res.ValorEstimado != 4560 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.ValorEstimadoFormatado == "" {
		t.Fatalf("expected formatted value")
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	list := FromServiceOrders(nil, 95)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", list)
	}
}

func TestFromLifecycleResult(t *testing.T) {
	res := FromLifecycleResult(entities.ServiceOrder{ID: "os-1", HHPlanejado: 40}, 3800, 95)
	if res.CustoEstimado != 3800 || res.ServiceOrder.ValorEstimado != 3800 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFromEditSession(t *testing.T) {
	hh := 40.0

	idle := FromEditSession(entities.EditSession{ID: "sess-1"})
	if idle.Mode != "idle" || idle.Planning != nil || idle.Replanning != nil {
		t.Fatalf("unexpected idle session: %+v", idle)
	}

	planning := FromEditSession(entities.EditSession{ID: "sess-1", Mode: entities.EditModePlanning, OSID: "os-1", Planning: entities.PlanningCandidate{HHPlanejado: &hh}})
	if planning.Mode != "planning" || planning.Planning == nil || *planning.Planning.HHPlanejado != 40 || planning.Replanning != nil {
		t.Fatalf("unexpected planning session: %+v", planning)
	}

	replanning := FromEditSession(entities.EditSession{ID: "sess-1", Mode: entities.EditModeReplanning, Replanning: entities.ReplanningCandidate{Motivo: "client delay"}})
	if replanning.Replanning == nil || replanning.Replanning.Motivo != "client delay" || replanning.Planning != nil {
		t.Fatalf("unexpected replanning session: %+v", replanning)
	}
}

func TestFromNotifications(t *testing.T) {
	out := FromNotifications([]entities.Notification{{Kind: entities.NotificationError, Message: "budget value is required."}})
	if len(out) != 1 || out[0].Kind != "error" || out[0].Message != "budget value is required." {
		t.Fatalf("unexpected notifications: %+v", out)
	}
}
