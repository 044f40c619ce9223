package repository

import (
	"context"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultUsuariosTableName = "usuarios"
	usuariosDocumentoIndex   = "documento-index"
)

type usuarioItem struct {
	ID                string       `dynamodbav:"id"`
	Nome              string       `dynamodbav:"nome"`
	Email             string       `dynamodbav:"email,omitempty"`
	Documento         string       `dynamodbav:"documento"`
	DataNascimento    string       `dynamodbav:"data_nascimento,omitempty"`
	Sexo              string       `dynamodbav:"sexo,omitempty"`
	TelefonePrincipal telefoneItem `dynamodbav:"telefone_principal,omitempty"`
	Endereco          enderecoItem `dynamodbav:"endereco,omitempty"`
	Niveis            []string     `dynamodbav:"niveis,omitempty"`
	Scopes            []string     `dynamodbav:"scopes,omitempty"`
	Status            string       `dynamodbav:"status"`
}

// UsuarioDynamoRepository reads (and, for the sales-history loader, writes)
// the shared usuarios table.
//
// Table requirements:
//   - PK: id
//   - GSI: documento-index (PK: documento)

type UsuarioDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUsuarioRepository = (*UsuarioDynamoRepository)(nil)

func NewUsuarioDynamoRepository(ddb *dynamodb.Client) *UsuarioDynamoRepository {
	return &UsuarioDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USUARIOS_TABLE", defaultUsuariosTableName),
	}
}

func (r *UsuarioDynamoRepository) GetByID(ctx context.Context, id string) (entities.Usuario, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	if len(out.Item) == 0 {
		return entities.Usuario{}, nil
	}

	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Usuario{}, err
	}
	return fromUsuarioItem(it), nil
}

func (r *UsuarioDynamoRepository) GetByDocumento(ctx context.Context, documento string) (entities.Usuario, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usuariosDocumentoIndex),
		KeyConditionExpression: aws.String("documento = :doc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":doc": &types.AttributeValueMemberS{Value: documento},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	if len(out.Items) == 0 {
		return entities.Usuario{}, nil
	}

	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Usuario{}, err
	}
	return fromUsuarioItem(it), nil
}

func (r *UsuarioDynamoRepository) GetByNome(ctx context.Context, nome string) (entities.Usuario, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("nome = :nome"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nome": &types.AttributeValueMemberS{Value: nome},
		},
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	if len(out.Items) == 0 {
		return entities.Usuario{}, nil
	}

	var it usuarioItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Usuario{}, err
	}
	return fromUsuarioItem(it), nil
}

func (r *UsuarioDynamoRepository) UpsertByDocumento(ctx context.Context, u entities.Usuario) (entities.Usuario, error) {
	existente, err := r.GetByDocumento(ctx, u.Documento)
	if err != nil {
		return entities.Usuario{}, err
	}
	if existente.ID != "" {
		u.ID = existente.ID
	} else if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Status == "" {
		u.Status = entities.UsuarioStatusAtivo
	}

	av, err := attributevalue.MarshalMap(toUsuarioItem(u))
	if err != nil {
		return entities.Usuario{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Usuario{}, err
	}
	return u, nil
}

func toUsuarioItem(u entities.Usuario) usuarioItem {
	niveis := make([]string, 0, len(u.Niveis))
	for _, n := range u.Niveis {
		niveis = append(niveis, string(n))
	}
	return usuarioItem{
		ID:                u.ID,
		Nome:              u.Nome,
		Email:             u.Email,
		Documento:         u.Documento,
		DataNascimento:    timeToString(u.DataNascimento),
		Sexo:              u.Sexo,
		TelefonePrincipal: telefoneItem(u.TelefonePrincipal),
		Endereco:          enderecoItem(u.Endereco),
		Niveis:            niveis,
		Scopes:            u.Scopes,
		Status:            string(u.Status),
	}
}

func fromUsuarioItem(it usuarioItem) entities.Usuario {
	niveis := make([]entities.UsuarioNivel, 0, len(it.Niveis))
	for _, n := range it.Niveis {
		niveis = append(niveis, entities.UsuarioNivel(n))
	}
	return entities.Usuario{
		ID:                it.ID,
		Nome:              it.Nome,
		Email:             it.Email,
		Documento:         it.Documento,
		DataNascimento:    parseTime(it.DataNascimento),
		Sexo:              it.Sexo,
		TelefonePrincipal: entities.Telefone(it.TelefonePrincipal),
		Endereco:          entities.Endereco(it.Endereco),
		Niveis:            niveis,
		Scopes:            it.Scopes,
		Status:            entities.UsuarioStatus(it.Status),
	}
}
