package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLotesTableName = "lotes"
	lotesLoteamentoIndex  = "loteamento_id-index"

	// BatchGetItem hard limit.
	batchGetMax = 100

	loteWriteConcurrency = 8
)

type loteItem struct {
	LoteamentoQuadraLote string `dynamodbav:"loteamento_quadra_lote"`
	LoteamentoID         string `dynamodbav:"loteamento_id"`

	Quadra string `dynamodbav:"quadra"`
	Lote   string `dynamodbav:"lote"`

	Area         string `dynamodbav:"area"`
	ValorArea    string `dynamodbav:"valor_area"`
	ValorTotal   string `dynamodbav:"valor_total"`
	ValorEntrada string `dynamodbav:"valor_entrada"`

	Situacao    string `dynamodbav:"situacao"`
	SituacaoCSV string `dynamodbav:"situacao_csv,omitempty"`

	Loteamento loteamentoResumoItem `dynamodbav:"loteamento"`
	Reserva    *reservaResumoItem   `dynamodbav:"reserva,omitempty"`

	Exibivel bool `dynamodbav:"exibivel"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// LoteDynamoRepository persists Lote entities in DynamoDB. All status
// transitions are single-item conditional UpdateItems, so concurrent writers
// race at the storage layer instead of racing in application code.
//
// Table requirements:
//   - PK: loteamento_quadra_lote (string)
//   - GSI: loteamento_id-index (PK: loteamento_id)

type LoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILoteRepository = (*LoteDynamoRepository)(nil)

func NewLoteDynamoRepository(ddb *dynamodb.Client) *LoteDynamoRepository {
	return &LoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOTES_TABLE", defaultLotesTableName),
	}
}

func (r *LoteDynamoRepository) GetByChave(ctx context.Context, chave string) (entities.Lote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            loteKey(chave),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lote{}, nil
	}

	var it loteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lote{}, err
	}
	return fromLoteItem(it), nil
}

func (r *LoteDynamoRepository) GetByChaves(ctx context.Context, chaves []string) ([]entities.Lote, error) {
	lotes := []entities.Lote{}
	for inicio := 0; inicio < len(chaves); inicio += batchGetMax {
		fim := inicio + batchGetMax
		if fim > len(chaves) {
			fim = len(chaves)
		}

		keys := make([]map[string]types.AttributeValue, 0, fim-inicio)
		for _, chave := range chaves[inicio:fim] {
			keys = append(keys, loteKey(chave))
		}

		pendentes := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for len(pendentes) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: pendentes,
			})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it loteItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				lotes = append(lotes, fromLoteItem(it))
			}
			pendentes = out.UnprocessedKeys
		}
	}
	return lotes, nil
}

func (r *LoteDynamoRepository) ListByLoteamento(ctx context.Context, loteamentoID string, somenteExibiveis bool) ([]entities.Lote, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lotesLoteamentoIndex),
		KeyConditionExpression: aws.String("loteamento_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: loteamentoID},
		},
	}
	if somenteExibiveis {
		input.FilterExpression = aws.String("exibivel = :sim")
		input.ExpressionAttributeValues[":sim"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	lotes := []entities.Lote{}
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it loteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			lotes = append(lotes, fromLoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(lotes, func(i, j int) bool {
		return lotes[i].LoteamentoQuadraLote < lotes[j].LoteamentoQuadraLote
	})
	return lotes, nil
}

func (r *LoteDynamoRepository) Upsert(ctx context.Context, l entities.Lote) error {
	now := time.Now().UTC()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toLoteItem(l))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *LoteDynamoRepository) OcultarTodos(ctx context.Context, loteamentoID string) error {
	lotes, err := r.ListByLoteamento(ctx, loteamentoID, false)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loteWriteConcurrency)
	for _, lote := range lotes {
		chave := lote.LoteamentoQuadraLote
		g.Go(func() error {
			return r.updateLote(gctx, chave,
				"SET exibivel = :nao, updated_at = :now REMOVE reserva",
				map[string]types.AttributeValue{
					":nao": &types.AttributeValueMemberBOOL{Value: false},
					":now": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
				},
				nil, "")
		})
	}
	return g.Wait()
}

func (r *LoteDynamoRepository) Reservar(ctx context.Context, chave string, reserva entities.ReservaResumo) error {
	resumo, err := attributevalue.Marshal(toReservaResumoItem(reserva))
	if err != nil {
		return err
	}
	return r.updateLote(ctx, chave,
		"SET #situacao = :reservado, reserva = :resumo, updated_at = :now",
		map[string]types.AttributeValue{
			":reservado": &types.AttributeValueMemberS{Value: string(entities.LoteSituacaoReservado)},
			":vendido":   &types.AttributeValueMemberS{Value: string(entities.LoteSituacaoVendido)},
			":resumo":    resumo,
			":now":       &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		map[string]string{"#situacao": "situacao"},
		"attribute_exists(loteamento_quadra_lote) AND #situacao <> :reservado AND #situacao <> :vendido",
	)
}

func (r *LoteDynamoRepository) Liberar(ctx context.Context, chaves []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loteWriteConcurrency)
	for _, chave := range chaves {
		chave := chave
		g.Go(func() error {
			return r.updateLote(gctx, chave,
				"SET #situacao = :disponivel, updated_at = :now REMOVE reserva",
				map[string]types.AttributeValue{
					":disponivel": &types.AttributeValueMemberS{Value: string(entities.LoteSituacaoDisponivel)},
					":now":        &types.AttributeValueMemberS{Value: timeToString(time.Now())},
				},
				map[string]string{"#situacao": "situacao"},
				"attribute_exists(loteamento_quadra_lote)",
			)
		})
	}
	return g.Wait()
}

func (r *LoteDynamoRepository) SetSituacaoCondicional(ctx context.Context, chave string, de, para entities.LoteSituacao) error {
	return r.updateLote(ctx, chave,
		"SET #situacao = :para, updated_at = :now",
		map[string]types.AttributeValue{
			":de":   &types.AttributeValueMemberS{Value: string(de)},
			":para": &types.AttributeValueMemberS{Value: string(para)},
			":now":  &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		map[string]string{"#situacao": "situacao"},
		"attribute_exists(loteamento_quadra_lote) AND #situacao = :de",
	)
}

func (r *LoteDynamoRepository) SetSituacao(ctx context.Context, chave string, situacao entities.LoteSituacao) error {
	return r.updateLote(ctx, chave,
		"SET #situacao = :situacao, updated_at = :now",
		map[string]types.AttributeValue{
			":situacao": &types.AttributeValueMemberS{Value: string(situacao)},
			":now":      &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		map[string]string{"#situacao": "situacao"},
		"attribute_exists(loteamento_quadra_lote)",
	)
}

func (r *LoteDynamoRepository) ForcarReserva(ctx context.Context, chave string, situacao entities.LoteSituacao, reserva entities.ReservaResumo) error {
	resumo, err := attributevalue.Marshal(toReservaResumoItem(reserva))
	if err != nil {
		return err
	}
	return r.updateLote(ctx, chave,
		"SET #situacao = :situacao, reserva = :resumo, updated_at = :now",
		map[string]types.AttributeValue{
			":situacao": &types.AttributeValueMemberS{Value: string(situacao)},
			":resumo":   resumo,
			":now":      &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		map[string]string{"#situacao": "situacao"},
		"attribute_exists(loteamento_quadra_lote)",
	)
}

func (r *LoteDynamoRepository) AtualizarReservaResumo(ctx context.Context, chave string, reserva entities.ReservaResumo) error {
	resumo, err := attributevalue.Marshal(toReservaResumoItem(reserva))
	if err != nil {
		return err
	}
	return r.updateLote(ctx, chave,
		"SET reserva = :resumo, updated_at = :now",
		map[string]types.AttributeValue{
			":resumo": resumo,
			":now":    &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		nil,
		"attribute_exists(loteamento_quadra_lote)",
	)
}

func (r *LoteDynamoRepository) updateLote(ctx context.Context, chave, expr string, values map[string]types.AttributeValue, names map[string]string, condition string) error {
	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       loteKey(chave),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
	}
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}
	if condition != "" {
		input.ConditionExpression = aws.String(condition)
	}

	_, err := r.ddb.UpdateItem(ctx, input)
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("lote %s: %w", chave, interfaces.ErrCondicaoViolada)
	}
	return err
}

func loteKey(chave string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"loteamento_quadra_lote": &types.AttributeValueMemberS{Value: chave},
	}
}

func toLoteItem(l entities.Lote) loteItem {
	it := loteItem{
		LoteamentoQuadraLote: l.LoteamentoQuadraLote,
		LoteamentoID:         l.Loteamento.ID,
		Quadra:               l.Quadra,
		Lote:                 l.Lote,
		Area:                 floatToString(l.Area),
		ValorArea:            floatToString(l.ValorArea),
		ValorTotal:           floatToString(l.ValorTotal),
		ValorEntrada:         floatToString(l.ValorEntrada),
		Situacao:             string(l.Situacao),
		SituacaoCSV:          string(l.SituacaoCSV),
		Loteamento:           toLoteamentoResumoItem(l.Loteamento),
		Exibivel:             l.Exibivel,
		CreatedAt:            timeToString(l.CreatedAt),
		UpdatedAt:            timeToString(l.UpdatedAt),
	}
	if l.Reserva != nil {
		resumo := toReservaResumoItem(*l.Reserva)
		it.Reserva = &resumo
	}
	return it
}

func fromLoteItem(it loteItem) entities.Lote {
	area, _ := strconv.ParseFloat(it.Area, 64)
	valorArea, _ := strconv.ParseFloat(it.ValorArea, 64)
	valorTotal, _ := strconv.ParseFloat(it.ValorTotal, 64)
	valorEntrada, _ := strconv.ParseFloat(it.ValorEntrada, 64)

	l := entities.Lote{
		LoteamentoQuadraLote: it.LoteamentoQuadraLote,
		Quadra:               it.Quadra,
		Lote:                 it.Lote,
		Area:                 area,
		ValorArea:            valorArea,
		ValorTotal:           valorTotal,
		ValorEntrada:         valorEntrada,
		Situacao:             entities.LoteSituacao(it.Situacao),
		SituacaoCSV:          entities.LoteSituacao(it.SituacaoCSV),
		Loteamento:           fromLoteamentoResumoItem(it.Loteamento),
		Exibivel:             it.Exibivel,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	if it.Reserva != nil {
		resumo := fromReservaResumoItem(*it.Reserva)
		l.Reserva = &resumo
	}
	return l
}
