// Command migrator cria a tabela de funcionários (chave hash string, cobrança
// sob demanda) e aguarda até que ela esteja ativa. Usa a mesma configuração do
// servidor; com DYNAMODB_ENDPOINT aponta para um DynamoDB local.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/raywall/fast-service-employees/dyndb"
	"github.com/raywall/fast-service-employees/pkg/awsconfig"
	"github.com/raywall/fast-service-employees/pkg/config"
	"github.com/raywall/fast-service-employees/pkg/logger"
)

var (
	awsLoader     = awsconfig.Load
	dynamoFactory = func(cfg aws.Config, endpoint string) dyndb.DynamoDBClient {
		return awsconfig.NewDynamoClient(cfg, endpoint)
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv(config.EnvConfigPath)); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := config.NewValidator().Validate(cfg); err != nil {
		return err
	}

	l := logger.Configure(cfg.Service.Logging, cfg.Service.Name)

	awsCfg, err := awsLoader(ctx, cfg.AWS, cfg.Store.Endpoint)
	if err != nil {
		return err
	}

	table := dyndb.New(dynamoFactory(awsCfg, cfg.Store.Endpoint), dyndb.TableConfig{
		TableName: cfg.Store.TableName,
		HashKey:   cfg.Store.HashKey,
	})

	err = table.CreateTable(ctx)
	switch {
	case errors.Is(err, dyndb.ErrTableExists):
		l.Info().Str("table", table.Name()).Msg("tabela já existe")
		return nil
	case err != nil:
		return err
	}

	l.Info().Str("table", table.Name()).Msg("tabela criada")
	return nil
}
