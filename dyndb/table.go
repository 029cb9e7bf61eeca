package dyndb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/fast-service-employees/envloader"
)

// tableActiveTimeout limita a espera de CreateTable pela tabela ativa.
const tableActiveTimeout = 2 * time.Minute

// Table é o gateway síncrono para uma tabela fixa.
type Table struct {
	client DynamoDBClient
	cfg    TableConfig
}

// New cria o gateway da tabela
func New(client DynamoDBClient, cfg TableConfig) *Table {
	fromEnv := tableConfigFromEnv()
	if cfg.TableName == "" {
		cfg.TableName = fromEnv.TableName
	}
	if cfg.HashKey == "" {
		cfg.HashKey = fromEnv.HashKey
	}
	if cfg.ScanPageSize == 0 {
		cfg.ScanPageSize = fromEnv.ScanPageSize
	}

	return &Table{
		client: client,
		cfg:    cfg,
	}
}

// tableConfigFromEnv lê a configuração do ambiente. Um valor inválido
// descarta o ambiente inteiro e mantém apenas os envDefault.
func tableConfigFromEnv() TableConfig {
	var cfg TableConfig
	if err := envloader.Load(&cfg); err != nil {
		cfg = TableConfig{}
		_ = envloader.LoadDefaults(&cfg)
	}
	return cfg
}

// Name retorna o nome da tabela.
func (t *Table) Name() string {
	return t.cfg.TableName
}

func (t *Table) key(id string) Item {
	return Item{
		t.cfg.HashKey: &types.AttributeValueMemberS{Value: id},
	}
}

// Exists faz uma leitura pontual projetando apenas a chave.
func (t *Table) Exists(ctx context.Context, id string) (bool, error) {
	proj := expression.NamesList(expression.Name(t.cfg.HashKey))
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return false, fmt.Errorf("dyndb: build projection: %w", err)
	}

	out, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(t.cfg.TableName),
		Key:                      t.key(id),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
		ConsistentRead:           aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("%w: exists failed: %w", ErrStoreUnavailable, err)
	}
	return len(out.Item) > 0, nil
}

// Get item por chave primária
func (t *Table) Get(ctx context.Context, id string) (Item, error) {
	out, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.cfg.TableName),
		Key:            t.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get failed: %w", ErrStoreUnavailable, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	return out.Item, nil
}

// Put item (upsert incondicional). O atributo de chave é sempre o id informado.
func (t *Table) Put(ctx context.Context, id string, item Item) error {
	av := make(Item, len(item)+1)
	for k, v := range item {
		av[k] = v
	}
	av[t.cfg.HashKey] = &types.AttributeValueMemberS{Value: id}

	_, err := t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.cfg.TableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("%w: put failed: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Update sobrescreve todos os atributos não-chave de item para o id informado.
// Não verifica a existência do item.
func (t *Table) Update(ctx context.Context, id string, item Item) error {
	fields := make([]string, 0, len(item))
	for k := range item {
		if k != t.cfg.HashKey {
			fields = append(fields, k)
		}
	}
	if len(fields) == 0 {
		return ErrEmptyUpdate
	}
	sort.Strings(fields)

	names := make(map[string]string, len(fields))
	values := make(Item, len(fields))
	sets := make([]string, 0, len(fields))
	for i, field := range fields {
		name := fmt.Sprintf("#f%d", i)
		value := fmt.Sprintf(":v%d", i)
		names[name] = field
		values[value] = item[field]
		sets = append(sets, name+" = "+value)
	}

	_, err := t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.cfg.TableName),
		Key:                       t.key(id),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return fmt.Errorf("%w: update failed: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Delete remove o item. Idempotente quando o item não existe.
func (t *Table) Delete(ctx context.Context, id string) error {
	_, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.cfg.TableName),
		Key:       t.key(id),
	})
	if err != nil {
		return fmt.Errorf("%w: delete failed: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// ScanAll retorna todos os itens da tabela, na ordem em que o DynamoDB os entrega.
func (t *Table) ScanAll(ctx context.Context) ([]Item, error) {
	input := &dynamodb.ScanInput{
		TableName:      aws.String(t.cfg.TableName),
		ConsistentRead: aws.Bool(true),
	}
	if t.cfg.ScanPageSize > 0 {
		input.Limit = aws.Int32(t.cfg.ScanPageSize)
	}
	paginator := dynamodb.NewScanPaginator(t.client, input)

	items := make([]Item, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: scan failed: %w", ErrStoreUnavailable, err)
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// CreateTable cria a tabela (chave hash string, cobrança sob demanda) e
// aguarda até que ela esteja ativa.
func (t *Table) CreateTable(ctx context.Context) error {
	_, err := t.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(t.cfg.TableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(t.cfg.HashKey), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(t.cfg.HashKey), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return ErrTableExists
		}
		return fmt.Errorf("%w: create table failed: %w", ErrStoreUnavailable, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(t.client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(t.cfg.TableName),
	}, tableActiveTimeout); err != nil {
		return fmt.Errorf("%w: waiting for table: %w", ErrStoreUnavailable, err)
	}
	return nil
}
