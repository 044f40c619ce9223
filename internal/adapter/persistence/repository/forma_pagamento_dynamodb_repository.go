package repository

import (
	"context"
	"sort"
	"time"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFormasPagamentoTableName = "formas_pagamento"

type formaPagamentoItem struct {
	ID              string `dynamodbav:"id"`
	Nome            string `dynamodbav:"nome"`
	SituacaoInicial string `dynamodbav:"situacao_inicial"`
	DiasParcelas    int    `dynamodbav:"dias_parcelas"`
	MaxParcelas     int    `dynamodbav:"max_parcelas"`
	Status          string `dynamodbav:"status"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// FormaPagamentoDynamoRepository persists FormaPagamento records. PK: id.

type FormaPagamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFormaPagamentoRepository = (*FormaPagamentoDynamoRepository)(nil)

func NewFormaPagamentoDynamoRepository(ddb *dynamodb.Client) *FormaPagamentoDynamoRepository {
	return &FormaPagamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORMAS_PAGAMENTO_TABLE", defaultFormasPagamentoTableName),
	}
}

func (r *FormaPagamentoDynamoRepository) Create(ctx context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error) {
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	return r.put(ctx, f, "attribute_not_exists(#id)")
}

func (r *FormaPagamentoDynamoRepository) Update(ctx context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error) {
	f.UpdatedAt = time.Now().UTC()
	return r.put(ctx, f, "attribute_exists(#id)")
}

func (r *FormaPagamentoDynamoRepository) put(ctx context.Context, f entities.FormaPagamento, condition string) (entities.FormaPagamento, error) {
	av, err := attributevalue.MarshalMap(toFormaPagamentoItem(f))
	if err != nil {
		return entities.FormaPagamento{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.FormaPagamento{}, err
	}
	return f, nil
}

func (r *FormaPagamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.FormaPagamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.FormaPagamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.FormaPagamento{}, nil
	}

	var it formaPagamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FormaPagamento{}, err
	}
	return fromFormaPagamentoItem(it), nil
}

func (r *FormaPagamentoDynamoRepository) List(ctx context.Context) ([]entities.FormaPagamento, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	formas := []entities.FormaPagamento{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it formaPagamentoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			formas = append(formas, fromFormaPagamentoItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(formas, func(i, j int) bool {
		return formas[i].Nome < formas[j].Nome
	})
	return formas, nil
}

func toFormaPagamentoItem(f entities.FormaPagamento) formaPagamentoItem {
	return formaPagamentoItem{
		ID:              f.ID,
		Nome:            f.Nome,
		SituacaoInicial: f.SituacaoInicial,
		DiasParcelas:    f.DiasParcelas,
		MaxParcelas:     f.MaxParcelas,
		Status:          string(f.Status),
		CreatedAt:       timeToString(f.CreatedAt),
		UpdatedAt:       timeToString(f.UpdatedAt),
	}
}

func fromFormaPagamentoItem(it formaPagamentoItem) entities.FormaPagamento {
	return entities.FormaPagamento{
		ID:              it.ID,
		Nome:            it.Nome,
		SituacaoInicial: it.SituacaoInicial,
		DiasParcelas:    it.DiasParcelas,
		MaxParcelas:     it.MaxParcelas,
		Status:          entities.FormaPagamentoStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
