package entities

import (
	"errors"
	"testing"
	"time"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    OSStatus
		action  Action
		want    OSStatus
		wantErr bool
	}{
		{name: "finalize planning", from: OSStatusEmPlanejamento, action: ActionFinalizePlanning, want: OSStatusAguardandoAceite},
		{name: "replan in execution", from: OSStatusEmExecucao, action: ActionReplan, want: OSStatusEmExecucao},
		{name: "finalize twice", from: OSStatusAguardandoAceite, action: ActionFinalizePlanning, wantErr: true},
		{name: "replan during planning", from: OSStatusEmPlanejamento, action: ActionReplan, wantErr: true},
		{name: "replan concluded", from: OSStatusConcluida, action: ActionReplan, wantErr: true},
		{name: "unknown status", from: OSStatus("x"), action: ActionReplan, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transition(tc.from, tc.action)
			if tc.wantErr {
				if !errors.Is(err, ErrTransitionNotAllowed) {
					t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
				}
				if CanPerform(tc.from, tc.action) {
					t.Fatalf("CanPerform should be false")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestOSStatus_IsValid(t *testing.T) {
	if !OSStatusEmExecucao.IsValid() || !OSStatusCancelada.IsValid() {
		t.Fatalf("known statuses should be valid")
	}
	if OSStatus("em_execucao").IsValid() {
		t.Fatalf("unknown status should be invalid")
	}
}

func TestServiceOrderUpdate_Apply(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	hh := 40.0
	motivo := "client delay"
	o := ServiceOrder{ID: "os-1", HHPlanejado: 10, HHAdicional: 2, ValorOrcamento: 500}

	if !(ServiceOrderUpdate{}).IsEmpty() {
		t.Fatalf("zero update should be empty")
	}

	u := ServiceOrderUpdate{DataInicioPrevista: &start, HHPlanejado: &hh, JustificativaEngenharia: &motivo}
	if u.IsEmpty() {
		t.Fatalf("update should not be empty")
	}
	got := u.Apply(o)
	if got.HHPlanejado != 40 || got.HHAdicional != 2 || got.ValorOrcamento != 500 {
		t.Fatalf("unexpected hours/budget: %+v", got)
	}
	if got.DataInicioPrevista == nil || !got.DataInicioPrevista.Equal(start) || got.DataFimPrevista != nil {
		t.Fatalf("unexpected dates: %+v", got)
	}
	if got.JustificativaEngenharia != motivo {
		t.Fatalf("unexpected justification: %q", got.JustificativaEngenharia)
	}
	if o.HHPlanejado != 10 {
		t.Fatalf("Apply must not mutate the original")
	}
	if got.HHTotal() != 42 {
		t.Fatalf("expected total 42, got %v", got.HHTotal())
	}
}

func TestEditSession_Clear(t *testing.T) {
	v := 10.0
	s := EditSession{ID: "s-1", Mode: EditModePlanning, OSID: "os-1", LoadedVersion: 3, Planning: PlanningCandidate{ValorOrcamento: &v}}
	if !s.IsEditing(EditModePlanning) || s.IsEditing(EditModeReplanning) {
		t.Fatalf("unexpected editing state")
	}
	s.Clear()
	if s.ID != "s-1" || s.OSID != "" || s.Mode != EditModeNone || s.Planning.ValorOrcamento != nil || s.LoadedVersion != 0 {
		t.Fatalf("session not cleared: %+v", s)
	}
}
