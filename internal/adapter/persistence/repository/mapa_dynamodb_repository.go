package repository

import (
	"context"
	"time"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultMapasTableName = "loteamentos_mapas"
	mapasLoteamentoIndex  = "loteamento_id-index"
)

type mapaLoteItem struct {
	ID     string `dynamodbav:"id"`
	X      int    `dynamodbav:"x"`
	Y      int    `dynamodbav:"y"`
	Width  int    `dynamodbav:"width"`
	Height int    `dynamodbav:"height"`
	Quadra string `dynamodbav:"quadra"`
	Numero string `dynamodbav:"numero"`
	Cor    string `dynamodbav:"cor,omitempty"`
}

type mapaItem struct {
	ID           string               `dynamodbav:"id"`
	LoteamentoID string               `dynamodbav:"loteamento_id"`
	Loteamento   loteamentoResumoItem `dynamodbav:"loteamento"`
	MapaVirtual  string               `dynamodbav:"mapa_virtual"`
	Lotes        []mapaLoteItem       `dynamodbav:"lotes"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// MapaDynamoRepository persists LoteamentoMapa entities in DynamoDB.
//
// Table requirements:
//   - PK: id
//   - GSI: loteamento_id-index (PK: loteamento_id)

type MapaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMapaRepository = (*MapaDynamoRepository)(nil)

func NewMapaDynamoRepository(ddb *dynamodb.Client) *MapaDynamoRepository {
	return &MapaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MAPAS_TABLE", defaultMapasTableName),
	}
}

func (r *MapaDynamoRepository) GetByLoteamentoID(ctx context.Context, loteamentoID string) (entities.LoteamentoMapa, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(mapasLoteamentoIndex),
		KeyConditionExpression: aws.String("loteamento_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: loteamentoID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.LoteamentoMapa{}, err
	}
	if len(out.Items) == 0 {
		return entities.LoteamentoMapa{}, nil
	}

	var it mapaItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.LoteamentoMapa{}, err
	}
	return fromMapaItem(it), nil
}

// Upsert replaces the loteamento's overlay configuration, keeping the id of
// a previous version when one exists so the map stays a singleton per
// loteamento.
func (r *MapaDynamoRepository) Upsert(ctx context.Context, m entities.LoteamentoMapa) (entities.LoteamentoMapa, error) {
	existente, err := r.GetByLoteamentoID(ctx, m.Loteamento.ID)
	if err != nil {
		return entities.LoteamentoMapa{}, err
	}

	now := time.Now().UTC()
	if existente.ID != "" {
		m.ID = existente.ID
		m.CreatedAt = existente.CreatedAt
	} else {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	for i := range m.Lotes {
		if m.Lotes[i].ID == "" {
			m.Lotes[i].ID = uuid.NewString()
		}
	}

	av, err := attributevalue.MarshalMap(toMapaItem(m))
	if err != nil {
		return entities.LoteamentoMapa{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.LoteamentoMapa{}, err
	}
	return m, nil
}

func toMapaItem(m entities.LoteamentoMapa) mapaItem {
	lotes := make([]mapaLoteItem, 0, len(m.Lotes))
	for _, l := range m.Lotes {
		lotes = append(lotes, mapaLoteItem(l))
	}
	return mapaItem{
		ID:           m.ID,
		LoteamentoID: m.Loteamento.ID,
		Loteamento:   toLoteamentoResumoItem(m.Loteamento),
		MapaVirtual:  m.MapaVirtual,
		Lotes:        lotes,
		CreatedAt:    timeToString(m.CreatedAt),
		UpdatedAt:    timeToString(m.UpdatedAt),
	}
}

func fromMapaItem(it mapaItem) entities.LoteamentoMapa {
	lotes := make([]entities.MapaLote, 0, len(it.Lotes))
	for _, l := range it.Lotes {
		lotes = append(lotes, entities.MapaLote(l))
	}
	return entities.LoteamentoMapa{
		ID:          it.ID,
		Loteamento:  fromLoteamentoResumoItem(it.Loteamento),
		MapaVirtual: it.MapaVirtual,
		Lotes:       lotes,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
