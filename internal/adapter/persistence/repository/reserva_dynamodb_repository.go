package repository

import (
	"context"
	"fmt"
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
	"github.com/google/uuid"
)

const (
	defaultReservasTableName   = "reservas"
	defaultContadoresTableName = "contadores"
	reservasLoteamentoIndex    = "loteamento_id-index"
	reservasCodigoIndex        = "codigo_reserva-index"

	contadorReservas = "reservas"
)

type reservaItem struct {
	ID            string               `dynamodbav:"id"`
	CodigoReserva string               `dynamodbav:"codigo_reserva"`
	DataReserva   string               `dynamodbav:"data_reserva"`
	LoteamentoID  string               `dynamodbav:"loteamento_id"`
	Loteamento    loteamentoResumoItem `dynamodbav:"loteamento"`
	Lotes         []reservaLoteItem    `dynamodbav:"lotes"`
	Cliente       clienteResumoItem    `dynamodbav:"cliente"`
	Vendedor      usuarioResumoItem    `dynamodbav:"vendedor"`
	Situacao      string               `dynamodbav:"situacao"`

	CriadoPor     auditoriaItem `dynamodbav:"criado_por"`
	AtualizadoPor auditoriaItem `dynamodbav:"atualizado_por"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ReservaDynamoRepository persists Reserva entities in DynamoDB.
//
// Table requirements:
//   - PK: id
//   - GSI: loteamento_id-index (PK: loteamento_id)
//   - GSI: codigo_reserva-index (PK: codigo_reserva)
//
// The sequential reservation code comes from a separate contadores table
// (PK: nome), bumped with an atomic ADD so concurrent creations never see
// the same value.

type ReservaDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	contadoresTable string
}

var _ interfaces.IReservaRepository = (*ReservaDynamoRepository)(nil)

func NewReservaDynamoRepository(ddb *dynamodb.Client) *ReservaDynamoRepository {
	return &ReservaDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("RESERVAS_TABLE", defaultReservasTableName),
		contadoresTable: getenvDefault("CONTADORES_TABLE", defaultContadoresTableName),
	}
}

func (r *ReservaDynamoRepository) Create(ctx context.Context, reserva entities.Reserva) (entities.Reserva, error) {
	now := time.Now().UTC()
	reserva.CreatedAt = now
	reserva.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toReservaItem(reserva))
	if err != nil {
		return entities.Reserva{}, err
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
		return entities.Reserva{}, err
	}
	return reserva, nil
}

func (r *ReservaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Reserva, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Reserva{}, err
	}
	if len(out.Item) == 0 {
		return entities.Reserva{}, nil
	}

	var it reservaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Reserva{}, err
	}
	return fromReservaItem(it), nil
}

func (r *ReservaDynamoRepository) GetByCodigo(ctx context.Context, codigo string) (entities.Reserva, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservasCodigoIndex),
		KeyConditionExpression: aws.String("codigo_reserva = :codigo"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":codigo": &types.AttributeValueMemberS{Value: codigo},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Reserva{}, err
	}
	if len(out.Items) == 0 {
		return entities.Reserva{}, nil
	}

	var it reservaItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Reserva{}, err
	}
	return fromReservaItem(it), nil
}

func (r *ReservaDynamoRepository) Search(ctx context.Context, filtro interfaces.ReservaFiltro) ([]entities.Reserva, error) {
	var reservas []entities.Reserva
	var err error
	if filtro.LoteamentoID != "" {
		reservas, err = r.queryPorLoteamento(ctx, filtro.LoteamentoID)
	} else {
		reservas, err = r.scanTodas(ctx)
	}
	if err != nil {
		return nil, err
	}

	filtradas := []entities.Reserva{}
	for _, reserva := range reservas {
		if !reservaAtendeFiltro(reserva, filtro) {
			continue
		}
		filtradas = append(filtradas, reserva)
	}
	sort.Slice(filtradas, func(i, j int) bool {
		return filtradas[i].DataReserva.Before(filtradas[j].DataReserva)
	})
	return filtradas, nil
}

func (r *ReservaDynamoRepository) ListVivasPorLoteamento(ctx context.Context, loteamentoID string) ([]entities.Reserva, error) {
	reservas, err := r.queryPorLoteamento(ctx, loteamentoID)
	if err != nil {
		return nil, err
	}

	vivas := []entities.Reserva{}
	for _, reserva := range reservas {
		if reserva.Situacao == entities.ReservaSituacaoAtiva || reserva.Situacao == entities.ReservaSituacaoConcluida {
			vivas = append(vivas, reserva)
		}
	}
	return vivas, nil
}

func (r *ReservaDynamoRepository) Update(ctx context.Context, reserva entities.Reserva) (entities.Reserva, error) {
	reserva.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toReservaItem(reserva))
	if err != nil {
		return entities.Reserva{}, err
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
		return entities.Reserva{}, err
	}
	return reserva, nil
}

func (r *ReservaDynamoRepository) UpsertByCodigo(ctx context.Context, reserva entities.Reserva) (entities.Reserva, error) {
	existente, err := r.GetByCodigo(ctx, reserva.CodigoReserva)
	if err != nil {
		return entities.Reserva{}, err
	}
	if existente.ID != "" {
		reserva.ID = existente.ID
		reserva.CreatedAt = existente.CreatedAt
		reserva.UpdatedAt = time.Now().UTC()
	} else {
		if reserva.ID == "" {
			reserva.ID = uuid.NewString()
		}
		now := time.Now().UTC()
		reserva.CreatedAt = now
		reserva.UpdatedAt = now
	}

	av, err := attributevalue.MarshalMap(toReservaItem(reserva))
	if err != nil {
		return entities.Reserva{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Reserva{}, err
	}
	return reserva, nil
}

func (r *ReservaDynamoRepository) NextCodigo(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.contadoresTable),
		Key: map[string]types.AttributeValue{
			"nome": &types.AttributeValueMemberS{Value: contadorReservas},
		},
		UpdateExpression: aws.String("ADD valor :um"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":um": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	valor, ok := out.Attributes["valor"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("contador %s sem atributo valor", contadorReservas)
	}
	return strconv.ParseInt(valor.Value, 10, 64)
}

func (r *ReservaDynamoRepository) queryPorLoteamento(ctx context.Context, loteamentoID string) ([]entities.Reserva, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reservasLoteamentoIndex),
		KeyConditionExpression: aws.String("loteamento_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: loteamentoID},
		},
	}

	reservas := []entities.Reserva{}
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it reservaItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			reservas = append(reservas, fromReservaItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return reservas, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ReservaDynamoRepository) scanTodas(ctx context.Context) ([]entities.Reserva, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	reservas := []entities.Reserva{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it reservaItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			reservas = append(reservas, fromReservaItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return reservas, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func reservaAtendeFiltro(r entities.Reserva, filtro interfaces.ReservaFiltro) bool {
	if len(filtro.Situacoes) > 0 {
		achou := false
		for _, s := range filtro.Situacoes {
			if r.Situacao == s {
				achou = true
				break
			}
		}
		if !achou {
			return false
		}
	}
	if filtro.VendedorID != "" && r.Vendedor.ID != filtro.VendedorID {
		return false
	}
	if !filtro.DataInicial.IsZero() && r.DataReserva.Before(filtro.DataInicial) {
		return false
	}
	if !filtro.DataFinal.IsZero() && r.DataReserva.After(filtro.DataFinal) {
		return false
	}
	if filtro.Busca != "" {
		busca := strings.ToLower(filtro.Busca)
		if !strings.Contains(strings.ToLower(r.CodigoReserva), busca) &&
			!strings.Contains(strings.ToLower(r.Cliente.Nome), busca) &&
			!strings.Contains(strings.ToLower(r.Cliente.Documento), busca) {
			return false
		}
	}
	return true
}

func toReservaItem(r entities.Reserva) reservaItem {
	lotes := make([]reservaLoteItem, 0, len(r.Lotes))
	for _, l := range r.Lotes {
		lotes = append(lotes, toReservaLoteItem(l))
	}
	return reservaItem{
		ID:            r.ID,
		CodigoReserva: r.CodigoReserva,
		DataReserva:   timeToString(r.DataReserva),
		LoteamentoID:  r.Loteamento.ID,
		Loteamento:    toLoteamentoResumoItem(r.Loteamento),
		Lotes:         lotes,
		Cliente:       toClienteResumoItem(r.Cliente),
		Vendedor:      toUsuarioResumoItem(r.Vendedor),
		Situacao:      string(r.Situacao),
		CriadoPor:     toAuditoriaItem(r.CriadoPor),
		AtualizadoPor: toAuditoriaItem(r.AtualizadoPor),
		CreatedAt:     timeToString(r.CreatedAt),
		UpdatedAt:     timeToString(r.UpdatedAt),
	}
}

func fromReservaItem(it reservaItem) entities.Reserva {
	lotes := make([]entities.ReservaLote, 0, len(it.Lotes))
	for _, l := range it.Lotes {
		lotes = append(lotes, fromReservaLoteItem(l))
	}
	return entities.Reserva{
		ID:            it.ID,
		CodigoReserva: it.CodigoReserva,
		DataReserva:   parseTime(it.DataReserva),
		Loteamento:    fromLoteamentoResumoItem(it.Loteamento),
		Lotes:         lotes,
		Cliente:       fromClienteResumoItem(it.Cliente),
		Vendedor:      fromUsuarioResumoItem(it.Vendedor),
		Situacao:      entities.ReservaSituacao(it.Situacao),
		CriadoPor:     fromAuditoriaItem(it.CriadoPor),
		AtualizadoPor: fromAuditoriaItem(it.AtualizadoPor),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
