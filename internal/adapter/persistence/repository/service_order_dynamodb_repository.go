package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	defaultStatusIndexName        = "status-index"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type serviceOrderItem struct {
	ID                      string  `dynamodbav:"id"`
	Numero                  int64   `dynamodbav:"numero"`
	Status                  string  `dynamodbav:"status"`
	Cliente                 string  `dynamodbav:"cliente"`
	SolicitanteNome         string  `dynamodbav:"solicitante_nome"`
	Disciplina              string  `dynamodbav:"disciplina"`
	CCA                     string  `dynamodbav:"cca"`
	ResponsavelEM           string  `dynamodbav:"responsavel_em"`
	DataCompromissada       string  `dynamodbav:"data_compromissada,omitempty"`
	DataInicioPrevista      string  `dynamodbav:"data_inicio_prevista,omitempty"`
	DataFimPrevista         string  `dynamodbav:"data_fim_prevista,omitempty"`
	HHPlanejado             float64 `dynamodbav:"hh_planejado"`
	HHAdicional             float64 `dynamodbav:"hh_adicional"`
	ValorOrcamento          float64 `dynamodbav:"valor_orcamento"`
	JustificativaEngenharia string  `dynamodbav:"justificativa_engenharia,omitempty"`
	Version                 int64   `dynamodbav:"version"`
	CreatedAt               string  `dynamodbav:"created_at"`
	UpdatedAt               string  `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Every write is conditional: field updates on the version the caller read,
// stage advances on the status the caller expects.
type ServiceOrderDynamoRepository struct {
	ddb         DynamoDBAPI
	tableName   string
	statusIndex string
	now         func() time.Time
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb DynamoDBAPI, tableName, statusIndex string) *ServiceOrderDynamoRepository {
	if tableName == "" {
		tableName = defaultServiceOrdersTableName
	}
	if statusIndex == "" {
		statusIndex = defaultStatusIndexName
	}
	return &ServiceOrderDynamoRepository{
		ddb:         ddb,
		tableName:   tableName,
		statusIndex: statusIndex,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (r *ServiceOrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OSStatus) ([]entities.ServiceOrder, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.statusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})

	items := make([]entities.ServiceOrder, 0)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromServiceOrderItem(it))
		}
	}
	return items, nil
}

// GetByID returns an empty ServiceOrder when id is unknown.
func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// Update writes the non-nil fields if the stored version still equals
// expectedVersion. An empty update is rejected before reaching DynamoDB.
func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, id string, fields entities.ServiceOrderUpdate, expectedVersion int64) (entities.ServiceOrder, error) {
	if fields.IsEmpty() {
		return entities.ServiceOrder{}, interfaces.ErrEmptyUpdate
	}
	expr, values, names := buildFieldsUpdate(fields)
	values[":expected_version"] = numberValue(float64(expectedVersion))

	return r.update(ctx, id, expr, "#version = :expected_version", values, names, interfaces.ErrVersionConflict)
}

func (r *ServiceOrderDynamoRepository) AdvanceStage(ctx context.Context, id string, from, to entities.OSStatus) (entities.ServiceOrder, error) {
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":to":   &types.AttributeValueMemberS{Value: string(to)},
	}
	names := map[string]string{"#status": "status"}

	return r.update(ctx, id, "#status = :to", "#status = :from", values, names, interfaces.ErrStageNotEligible)
}

// update runs a conditional UpdateItem that also bumps version and
// updated_at. A failed condition on an existing item maps to conflictErr,
// on a missing item to ErrServiceOrderNotFound.
func (r *ServiceOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	setExpr string,
	condition string,
	values map[string]types.AttributeValue,
	names map[string]string,
	conflictErr error,
) (entities.ServiceOrder, error) {
	now := r.now().Format(time.RFC3339Nano)
	values[":one"] = numberValue(1)
	values[":updated_at"] = &types.AttributeValueMemberS{Value: now}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String("attribute_exists(#id) AND " + condition),
		UpdateExpression:                    aws.String("SET " + joinSet(setExpr, "#version = #version + :one", "#updated_at = :updated_at")),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id", "#version": "version", "#updated_at": "updated_at"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.ServiceOrder{}, interfaces.ErrServiceOrderNotFound
			}
			return entities.ServiceOrder{}, conflictErr
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, interfaces.ErrServiceOrderNotFound
	}
	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// buildFieldsUpdate renders the SET clauses for the non-nil fields.
func buildFieldsUpdate(u entities.ServiceOrderUpdate) (string, map[string]types.AttributeValue, map[string]string) {
	var clauses []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	set := func(attr string, v types.AttributeValue) {
		clauses = append(clauses, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = v
	}

	if u.DataInicioPrevista != nil {
		set("data_inicio_prevista", &types.AttributeValueMemberS{Value: formatTime(u.DataInicioPrevista)})
	}
	if u.DataFimPrevista != nil {
		set("data_fim_prevista", &types.AttributeValueMemberS{Value: formatTime(u.DataFimPrevista)})
	}
	if u.HHPlanejado != nil {
		set("hh_planejado", numberValue(*u.HHPlanejado))
	}
	if u.HHAdicional != nil {
		set("hh_adicional", numberValue(*u.HHAdicional))
	}
	if u.ValorOrcamento != nil {
		set("valor_orcamento", numberValue(*u.ValorOrcamento))
	}
	if u.JustificativaEngenharia != nil {
		set("justificativa_engenharia", &types.AttributeValueMemberS{Value: *u.JustificativaEngenharia})
	}
	return joinSet(clauses...), values, names
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceOrder{
		ID:                      it.ID,
		Numero:                  it.Numero,
		Status:                  entities.OSStatus(it.Status),
		Cliente:                 it.Cliente,
		SolicitanteNome:         it.SolicitanteNome,
		Disciplina:              it.Disciplina,
		CCA:                     it.CCA,
		ResponsavelEM:           it.ResponsavelEM,
		DataCompromissada:       parseTime(it.DataCompromissada),
		DataInicioPrevista:      parseTime(it.DataInicioPrevista),
		DataFimPrevista:         parseTime(it.DataFimPrevista),
		HHPlanejado:             it.HHPlanejado,
		HHAdicional:             it.HHAdicional,
		ValorOrcamento:          it.ValorOrcamento,
		JustificativaEngenharia: it.JustificativaEngenharia,
		Version:                 it.Version,
		CreatedAt:               createdAt,
		UpdatedAt:               updatedAt,
	}
}

func numberValue(v float64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
