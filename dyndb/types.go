package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	// ErrNotFound – o item não existe na tabela.
	ErrNotFound = errors.New("dyndb: item not found")

	// ErrStoreUnavailable embrulha qualquer falha de rede, conectividade ou
	// do próprio DynamoDB. A causa original continua na cadeia de erros.
	ErrStoreUnavailable = errors.New("dyndb: store unavailable")

	// ErrTableExists é retornado por CreateTable quando a tabela já existe.
	ErrTableExists = errors.New("dyndb: table already exists")

	// ErrEmptyUpdate é retornado por Update quando o item não possui
	// atributos além da chave.
	ErrEmptyUpdate = errors.New("dyndb: nothing to update")
)

// Item é o mapa de atributos nativo de um item do DynamoDB.
type Item = map[string]types.AttributeValue

// DynamoDBClient interface para abstrair o cliente DynamoDB do SDK da AWS.
//
// *dynamodb.Client satisfaz esta interface; testes usam MockDynamoClient ou
// o cliente em memória de dyndbtest.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// TableConfig — configuração da tabela
type TableConfig struct {
	TableName string `env:"DYNAMODB_TABLE_NAME" envDefault:"Employee"`
	HashKey   string `env:"DYNAMODB_HASH_KEY" envDefault:"id"`
	// ScanPageSize limita os itens por página do Scan (0 usa o limite do DynamoDB)
	ScanPageSize int32 `env:"DYNAMODB_SCAN_PAGE_SIZE" envDefault:"0"`
}
