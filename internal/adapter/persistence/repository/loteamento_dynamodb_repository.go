package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLoteamentosTableName = "loteamentos"
	loteamentosSlugIndex        = "slug-index"
)

type loteamentoItem struct {
	ID        string `dynamodbav:"id"`
	Slug      string `dynamodbav:"slug"`
	Nome      string `dynamodbav:"nome"`
	NomeBusca string `dynamodbav:"nome_busca"`
	Descricao string `dynamodbav:"descricao,omitempty"`
	Cidade    string `dynamodbav:"cidade,omitempty"`
	Estado    string `dynamodbav:"estado,omitempty"`
	Status    string `dynamodbav:"status"`

	MapaEmpreendimento string `dynamodbav:"mapa_empreendimento,omitempty"`

	LivemapURL        string `dynamodbav:"livemap_url,omitempty"`
	LivemapLastUpdate string `dynamodbav:"livemap_last_update,omitempty"`
	LivemapSync       int    `dynamodbav:"livemap_sync"`

	QuantidadeQuadras int    `dynamodbav:"quantidade_quadras"`
	QuantidadeLotes   int    `dynamodbav:"quantidade_lotes"`
	ValorTotalLotes   string `dynamodbav:"valor_total_lotes"`

	CriadoPor   auditoriaItem `dynamodbav:"criado_por"`
	AlteradoPor auditoriaItem `dynamodbav:"alterado_por"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// LoteamentoDynamoRepository persists Loteamento entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)

type LoteamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILoteamentoRepository = (*LoteamentoDynamoRepository)(nil)

func NewLoteamentoDynamoRepository(ddb *dynamodb.Client) *LoteamentoDynamoRepository {
	return &LoteamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOTEAMENTOS_TABLE", defaultLoteamentosTableName),
	}
}

func (r *LoteamentoDynamoRepository) Create(ctx context.Context, l entities.Loteamento) (entities.Loteamento, error) {
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toLoteamentoItem(l))
	if err != nil {
		return entities.Loteamento{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Loteamento{}, err
	}
	return l, nil
}

func (r *LoteamentoDynamoRepository) Update(ctx context.Context, l entities.Loteamento) (entities.Loteamento, error) {
	l.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toLoteamentoItem(l))
	if err != nil {
		return entities.Loteamento{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Loteamento{}, err
	}
	return l, nil
}

func (r *LoteamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Loteamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Loteamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.Loteamento{}, nil
	}

	var it loteamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Loteamento{}, err
	}
	return fromLoteamentoItem(it), nil
}

func (r *LoteamentoDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Loteamento, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(loteamentosSlugIndex),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Loteamento{}, err
	}
	if len(out.Items) == 0 {
		return entities.Loteamento{}, nil
	}

	var it loteamentoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Loteamento{}, err
	}
	return fromLoteamentoItem(it), nil
}

func (r *LoteamentoDynamoRepository) Search(ctx context.Context, busca string) ([]entities.Loteamento, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if busca != "" {
		input.FilterExpression = aws.String("contains(nome_busca, :busca)")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":busca": &types.AttributeValueMemberS{Value: strings.ToLower(busca)},
		}
	}

	lista, err := r.scan(ctx, input)
	if err != nil {
		return nil, err
	}
	// Newest first, like the listing screens expect.
	sort.Slice(lista, func(i, j int) bool {
		return lista[i].CreatedAt.After(lista[j].CreatedAt)
	})
	return lista, nil
}

func (r *LoteamentoDynamoRepository) ListDirtyAtivos(ctx context.Context) ([]entities.Loteamento, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :ativo AND livemap_sync = :pendente"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ativo":    &types.AttributeValueMemberS{Value: string(entities.LoteamentoStatusAtivo)},
			":pendente": &types.AttributeValueMemberN{Value: strconv.Itoa(entities.LivemapSyncPendente)},
		},
	})
}

func (r *LoteamentoDynamoRepository) UpdateAgregados(ctx context.Context, id string, quadras, lotes int, valorTotal float64) error {
	return r.update(ctx, id,
		"SET quantidade_quadras = :qq, quantidade_lotes = :ql, valor_total_lotes = :vt, updated_at = :now",
		map[string]types.AttributeValue{
			":qq":  &types.AttributeValueMemberN{Value: strconv.Itoa(quadras)},
			":ql":  &types.AttributeValueMemberN{Value: strconv.Itoa(lotes)},
			":vt":  &types.AttributeValueMemberS{Value: floatToString(valorTotal)},
			":now": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		nil,
	)
}

func (r *LoteamentoDynamoRepository) ResetLivemapSync(ctx context.Context, id string) error {
	return r.update(ctx, id,
		"SET livemap_sync = :pendente",
		map[string]types.AttributeValue{
			":pendente": &types.AttributeValueMemberN{Value: strconv.Itoa(entities.LivemapSyncPendente)},
		},
		nil,
	)
}

func (r *LoteamentoDynamoRepository) UpdateLivemap(ctx context.Context, id, url string, em time.Time) error {
	return r.update(ctx, id,
		"SET livemap_url = :url, livemap_last_update = :em, livemap_sync = :ok, updated_at = :em",
		map[string]types.AttributeValue{
			":url": &types.AttributeValueMemberS{Value: url},
			":em":  &types.AttributeValueMemberS{Value: timeToString(em)},
			":ok":  &types.AttributeValueMemberN{Value: strconv.Itoa(entities.LivemapSyncAtualizado)},
		},
		nil,
	)
}

func (r *LoteamentoDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return nil
	}
	return err
}

func (r *LoteamentoDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Loteamento, error) {
	lista := []entities.Loteamento{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it loteamentoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			lista = append(lista, fromLoteamentoItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return lista, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toLoteamentoItem(l entities.Loteamento) loteamentoItem {
	return loteamentoItem{
		ID:                 l.ID,
		Slug:               l.Slug,
		Nome:               l.Nome,
		NomeBusca:          strings.ToLower(l.Nome),
		Descricao:          l.Descricao,
		Cidade:             l.Cidade,
		Estado:             l.Estado,
		Status:             string(l.Status),
		MapaEmpreendimento: l.MapaEmpreendimento,
		LivemapURL:         l.LivemapURL,
		LivemapLastUpdate:  timeToString(l.LivemapLastUpdate),
		LivemapSync:        l.LivemapSync,
		QuantidadeQuadras:  l.QuantidadeQuadras,
		QuantidadeLotes:    l.QuantidadeLotes,
		ValorTotalLotes:    floatToString(l.ValorTotalLotes),
		CriadoPor:          toAuditoriaItem(l.CriadoPor),
		AlteradoPor:        toAuditoriaItem(l.AlteradoPor),
		CreatedAt:          timeToString(l.CreatedAt),
		UpdatedAt:          timeToString(l.UpdatedAt),
	}
}

func fromLoteamentoItem(it loteamentoItem) entities.Loteamento {
	valorTotal, _ := strconv.ParseFloat(it.ValorTotalLotes, 64)
	return entities.Loteamento{
		ID:                 it.ID,
		Slug:               it.Slug,
		Nome:               it.Nome,
		Descricao:          it.Descricao,
		Cidade:             it.Cidade,
		Estado:             it.Estado,
		Status:             entities.LoteamentoStatus(it.Status),
		MapaEmpreendimento: it.MapaEmpreendimento,
		LivemapURL:         it.LivemapURL,
		LivemapLastUpdate:  parseTime(it.LivemapLastUpdate),
		LivemapSync:        it.LivemapSync,
		QuantidadeQuadras:  it.QuantidadeQuadras,
		QuantidadeLotes:    it.QuantidadeLotes,
		ValorTotalLotes:    valorTotal,
		CriadoPor:          fromAuditoriaItem(it.CriadoPor),
		AlteradoPor:        fromAuditoriaItem(it.AlteradoPor),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
