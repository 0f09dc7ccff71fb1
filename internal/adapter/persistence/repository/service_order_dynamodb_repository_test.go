package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	getIn  *dynamodb.GetItemInput
	getOut *dynamodb.GetItemOutput
	getErr error

	updateIn  *dynamodb.UpdateItemInput
	updateOut *dynamodb.UpdateItemOutput
	updateErr error

	queryIns   []*dynamodb.QueryInput
	queryPages []*dynamodb.QueryOutput
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	return f.getOut, f.getErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	return f.updateOut, f.updateErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIns = append(f.queryIns, in)
	page := f.queryPages[len(f.queryIns)-1]
	return page, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:                      o.ID,
		Numero:                  o.Numero,
		Status:                  string(o.Status),
		Cliente:                 o.Cliente,
		SolicitanteNome:         o.SolicitanteNome,
		Disciplina:              o.Disciplina,
		CCA:                     o.CCA,
		ResponsavelEM:           o.ResponsavelEM,
		DataCompromissada:       formatTime(o.DataCompromissada),
		DataInicioPrevista:      formatTime(o.DataInicioPrevista),
		DataFimPrevista:         formatTime(o.DataFimPrevista),
		HHPlanejado:             o.HHPlanejado,
		HHAdicional:             o.HHAdicional,
		ValorOrcamento:          o.ValorOrcamento,
		JustificativaEngenharia: o.JustificativaEngenharia,
		Version:                 o.Version,
		CreatedAt:               o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:               o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func mustItem(t *testing.T, o entities.ServiceOrder) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func sampleOrder() entities.ServiceOrder {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return entities.ServiceOrder{
		ID:                 "os-1",
		Numero:             101,
		Status:             entities.OSStatusEmExecucao,
		Cliente:            "Planta Norte",
		Disciplina:         "Elétrica",
		DataInicioPrevista: &start,
		DataFimPrevista:    &end,
		HHPlanejado:        40,
		HHAdicional:        8,
		ValorOrcamento:     5000,
		Version:            3,
		CreatedAt:          start,
		UpdatedAt:          start,
	}
}

func TestServiceOrderItemMapping(t *testing.T) {
	o := sampleOrder()
	got := fromServiceOrderItem(toServiceOrderItem(o))
	if got.ID != o.ID || got.Numero != 101 || got.Status != o.Status || got.HHAdicional != 8 || got.Version != 3 {
		t.Fatalf("unexpected round trip: %+v", got)
	}
	if got.DataInicioPrevista == nil || !got.DataInicioPrevista.Equal(*o.DataInicioPrevista) {
		t.Fatalf("unexpected start date: %v", got.DataInicioPrevista)
	}
	if got.DataCompromissada != nil {
		t.Fatalf("absent date should stay nil")
	}
}

func TestServiceOrderDynamoRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fake := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: mustItem(t, sampleOrder())}}
		repo := NewServiceOrderDynamoRepository(fake, "", "")

		got, err := repo.GetByID(context.Background(), "os-1")
		if err != nil || got.ID != "os-1" || got.ValorOrcamento != 5000 {
			t.Fatalf("unexpected result err=%v res=%+v", err, got)
		}
		if aws.ToString(fake.getIn.TableName) != "service_orders" || !aws.ToBool(fake.getIn.ConsistentRead) {
			t.Fatalf("unexpected input: %+v", fake.getIn)
		}
	})

	t.Run("missing returns empty", func(t *testing.T) {
		repo := NewServiceOrderDynamoRepository(&fakeDynamo{getOut: &dynamodb.GetItemOutput{}}, "t", "i")
		got, err := repo.GetByID(context.Background(), "os-x")
		if err != nil || got.ID != "" {
			t.Fatalf("unexpected result err=%v res=%+v", err, got)
		}
	})

	t.Run("client error", func(t *testing.T) {
		repo := NewServiceOrderDynamoRepository(&fakeDynamo{getErr: errors.New("timeout")}, "t", "i")
		if _, err := repo.GetByID(context.Background(), "os-1"); err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout, got %v", err)
		}
	})
}

func TestServiceOrderDynamoRepository_ListByStatus(t *testing.T) {
	first := sampleOrder()
	second := sampleOrder()
	second.ID = "os-2"

	fake := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{mustItem(t, first)}, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "os-1"}}},
		{Items: []map[string]types.AttributeValue{mustItem(t, second)}},
	}}
	repo := NewServiceOrderDynamoRepository(fake, "orders", "by-status")

	got, err := repo.ListByStatus(context.Background(), entities.OSStatusEmExecucao)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].ID != "os-2" {
		t.Fatalf("expected both pages, got %+v", got)
	}
	in := fake.queryIns[0]
	if aws.ToString(in.IndexName) != "by-status" || aws.ToString(in.TableName) != "orders" {
		t.Fatalf("unexpected query input: %+v", in)
	}
	if v := in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value; v != "em-execucao" {
		t.Fatalf("unexpected status filter: %s", v)
	}
}

func TestServiceOrderDynamoRepository_Update(t *testing.T) {
	hh := 24.0
	motivo := "client delay"
	fields := entities.ServiceOrderUpdate{HHAdicional: &hh, JustificativaEngenharia: &motivo}

	t.Run("success is conditional on version", func(t *testing.T) {
		updated := sampleOrder()
		updated.HHAdicional = 24
		updated.Version = 4
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: mustItem(t, updated)}}
		repo := NewServiceOrderDynamoRepository(fake, "", "")

		got, err := repo.Update(context.Background(), "os-1", fields, 3)
		if err != nil || got.HHAdicional != 24 || got.Version != 4 {
			t.Fatalf("unexpected result err=%v res=%+v", err, got)
		}

		in := fake.updateIn
		cond := aws.ToString(in.ConditionExpression)
		if cond != "attribute_exists(#id) AND #version = :expected_version" {
			t.Fatalf("unexpected condition: %s", cond)
		}
		expr := aws.ToString(in.UpdateExpression)
		for _, want := range []string{"#hh_adicional = :hh_adicional", "#justificativa_engenharia = :justificativa_engenharia", "#version = #version + :one", "#updated_at = :updated_at"} {
			if !strings.Contains(expr, want) {
				t.Fatalf("update expression %q missing %q", expr, want)
			}
		}
		if strings.Contains(expr, "hh_planejado") || strings.Contains(expr, "valor_orcamento") {
			t.Fatalf("nil fields must not be written: %s", expr)
		}
		if v := in.ExpressionAttributeValues[":expected_version"].(*types.AttributeValueMemberN).Value; v != "3" {
			t.Fatalf("unexpected expected version: %s", v)
		}
		if v := in.ExpressionAttributeValues[":hh_adicional"].(*types.AttributeValueMemberN).Value; v != "24" {
			t.Fatalf("unexpected hh value: %s", v)
		}
		if in.ExpressionAttributeNames["#id"] != "id" || in.ExpressionAttributeNames["#version"] != "version" {
			t.Fatalf("unexpected names: %+v", in.ExpressionAttributeNames)
		}
	})

	t.Run("condition failed on existing item is a version conflict", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("failed"), Item: mustItem(t, sampleOrder())}}
		repo := NewServiceOrderDynamoRepository(fake, "", "")
		if _, err := repo.Update(context.Background(), "os-1", fields, 2); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("condition failed on missing item is not found", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := NewServiceOrderDynamoRepository(fake, "", "")
		if _, err := repo.Update(context.Background(), "os-1", fields, 2); !errors.Is(err, interfaces.ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})

	t.Run("empty update never reaches dynamodb", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewServiceOrderDynamoRepository(fake, "", "")
		if _, err := repo.Update(context.Background(), "os-1", entities.ServiceOrderUpdate{}, 3); !errors.Is(err, interfaces.ErrEmptyUpdate) {
			t.Fatalf("expected ErrEmptyUpdate, got %v", err)
		}
		if fake.updateIn != nil {
			t.Fatalf("UpdateItem must not be called: %+v", fake.updateIn)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: errors.New("throttled")}
		repo := NewServiceOrderDynamoRepository(fake, "", "")
		if _, err := repo.Update(context.Background(), "os-1", fields, 2); err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}

func TestServiceOrderDynamoRepository_AdvanceStage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		advanced := sampleOrder()
		advanced.Status = entities.OSStatusAguardandoAceite
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: mustItem(t, advanced)}}
		repo := NewServiceOrderDynamoRepository(fake, "", "")

		got, err := repo.AdvanceStage(context.Background(), "os-1", entities.OSStatusEmPlanejamento, entities.OSStatusAguardandoAceite)
		if err != nil || got.Status != entities.OSStatusAguardandoAceite {
			t.Fatalf("unexpected result err=%v res=%+v", err, got)
		}
		if cond := aws.ToString(fake.updateIn.ConditionExpression); cond != "attribute_exists(#id) AND #status = :from" {
			t.Fatalf("unexpected condition: %s", cond)
		}
		if !strings.HasPrefix(aws.ToString(fake.updateIn.UpdateExpression), "SET #status = :to, ") {
			t.Fatalf("unexpected update: %s", aws.ToString(fake.updateIn.UpdateExpression))
		}
	})

	t.Run("wrong stage", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Item: mustItem(t, sampleOrder())}}
		repo := NewServiceOrderDynamoRepository(fake, "", "")
		_, err := repo.AdvanceStage(context.Background(), "os-1", entities.OSStatusEmPlanejamento, entities.OSStatusAguardandoAceite)
		if !errors.Is(err, interfaces.ErrStageNotEligible) {
			t.Fatalf("expected ErrStageNotEligible, got %v", err)
		}
	})
}

func TestHelpers(t *testing.T) {
	if got := joinSet("", "a = :a", "", "b = :b"); got != "a = :a, b = :b" {
		t.Fatalf("unexpected joinSet: %q", got)
	}
	merged := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#b": "b"})
	if len(merged) != 2 {
		t.Fatalf("unexpected merge: %+v", merged)
	}
	if got := mergeNames(nil, map[string]string{"#b": "b"}); got["#b"] != "b" {
		t.Fatalf("unexpected merge: %+v", got)
	}
}
