// Package dyndbtest fornece um cliente DynamoDB em memória para testes de
// quem depende de dyndb.Table.
package dyndbtest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MemoryClient implementa dyndb.DynamoDBClient sobre um mapa por tabela.
//
// Suporta apenas chaves hash do tipo S e expressões de update no formato
// "SET #a = :a, #b = :b". Scan devolve os itens ordenados pela chave para
// tornar os testes determinísticos.
type MemoryClient struct {
	mu      sync.Mutex
	hashKey string
	tables  map[string]map[string]map[string]types.AttributeValue

	// Err, quando definido, é retornado por todas as operações.
	Err error
}

// NewMemoryClient cria um cliente vazio cuja chave hash se chama hashKey.
func NewMemoryClient(hashKey string) *MemoryClient {
	return &MemoryClient{
		hashKey: hashKey,
		tables:  make(map[string]map[string]map[string]types.AttributeValue),
	}
}

// Len retorna o número de itens armazenados na tabela.
func (c *MemoryClient) Len(table string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables[table])
}

// Seed grava itens diretamente, sem passar pelo gateway.
func (c *MemoryClient) Seed(table string, items ...map[string]types.AttributeValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		id, _ := c.id(item)
		c.table(table)[id] = copyItem(item)
	}
}

func (c *MemoryClient) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := c.tables[name]
	if !ok {
		t = make(map[string]map[string]types.AttributeValue)
		c.tables[name] = t
	}
	return t
}

func (c *MemoryClient) id(key map[string]types.AttributeValue) (string, error) {
	s, ok := key[c.hashKey].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("dyndbtest: key attribute %q missing or not a string", c.hashKey)
	}
	return s.Value, nil
}

func (c *MemoryClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	id, err := c.id(params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := c.tables[*params.TableName][id]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (c *MemoryClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	id, err := c.id(params.Item)
	if err != nil {
		return nil, err
	}
	c.table(*params.TableName)[id] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (c *MemoryClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	id, err := c.id(params.Key)
	if err != nil {
		return nil, err
	}
	if params.UpdateExpression == nil {
		return nil, fmt.Errorf("dyndbtest: missing update expression")
	}

	// Como no DynamoDB, UpdateItem cria o item quando ele não existe.
	t := c.table(*params.TableName)
	item, ok := t[id]
	if !ok {
		item = copyItem(params.Key)
	}

	expr := strings.TrimSpace(*params.UpdateExpression)
	if !strings.HasPrefix(expr, "SET ") {
		return nil, fmt.Errorf("dyndbtest: unsupported update expression %q", expr)
	}
	for _, assignment := range strings.Split(strings.TrimPrefix(expr, "SET "), ",") {
		parts := strings.SplitN(assignment, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("dyndbtest: invalid assignment %q", assignment)
		}
		name := strings.TrimSpace(parts[0])
		if resolved, ok := params.ExpressionAttributeNames[name]; ok {
			name = resolved
		}
		value, ok := params.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
		if !ok {
			return nil, fmt.Errorf("dyndbtest: unknown value placeholder in %q", assignment)
		}
		item[name] = value
	}
	t[id] = item
	return &dynamodb.UpdateItemOutput{}, nil
}

func (c *MemoryClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	id, err := c.id(params.Key)
	if err != nil {
		return nil, err
	}
	delete(c.tables[*params.TableName], id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (c *MemoryClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	t := c.tables[*params.TableName]
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		items = append(items, copyItem(t[id]))
	}
	return &dynamodb.ScanOutput{Items: items, Count: int32(len(items))}, nil
}

func (c *MemoryClient) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	if _, ok := c.tables[*params.TableName]; ok {
		return nil, &types.ResourceInUseException{Message: params.TableName}
	}
	c.table(*params.TableName)
	return &dynamodb.CreateTableOutput{
		TableDescription: &types.TableDescription{TableName: params.TableName, TableStatus: types.TableStatusActive},
	}, nil
}

func (c *MemoryClient) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	if _, ok := c.tables[*params.TableName]; !ok {
		return nil, &types.ResourceNotFoundException{Message: params.TableName}
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableName: params.TableName, TableStatus: types.TableStatusActive},
	}, nil
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
