package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/raywall/fast-service-employees/dyndb"
	"github.com/raywall/fast-service-employees/easyrepo"
	"github.com/raywall/fast-service-employees/pkg/awsconfig"
	"github.com/raywall/fast-service-employees/pkg/config"
	"github.com/raywall/fast-service-employees/pkg/config/injector"
	"github.com/raywall/fast-service-employees/pkg/handlers"
	"github.com/raywall/fast-service-employees/pkg/logger"
	"github.com/raywall/fast-service-employees/pkg/metrics"
	"github.com/raywall/fast-service-employees/pkg/observability"
	"github.com/raywall/fast-service-employees/pkg/transport"
)

var (
	configPath string
	// Variáveis injetáveis para mocking
	serverStarter   = transport.StartHTTPServer
	lambdaStarter   = lambda.Start
	awsLoader       = awsconfig.Load
	resolverFactory = func(cfg aws.Config) injector.Resolver { return awsconfig.NewResolver(cfg) }
	dynamoFactory   = func(cfg aws.Config, endpoint string) dyndb.DynamoDBClient {
		return awsconfig.NewDynamoClient(cfg, endpoint)
	}
)

func init() {
	configPath = os.Getenv(config.EnvConfigPath)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configPath); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, cfgPath string) error {
	// 1. Carrega Configuração (defaults, YAML opcional, ambiente)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	awsCfg, err := awsLoader(ctx, cfg.AWS, cfg.Store.Endpoint)
	if err != nil {
		return err
	}

	// 2. Resolve ${env.X}, ${ssm./p} e ${secret.id} e valida
	if err := injector.New(resolverFactory(awsCfg)).Inject(ctx, cfg); err != nil {
		return err
	}
	if err := config.NewValidator().Validate(cfg); err != nil {
		return err
	}

	// 3. Observabilidade
	baseLogger := logger.Configure(cfg.Service.Logging, cfg.Service.Name)
	provider, err := observability.SetupMetrics(cfg.Service.Metrics, cfg.Service.Name)
	if err != nil {
		return err
	}
	defer func() {
		if err := observability.Shutdown(provider); err != nil {
			baseLogger.Warn().Err(err).Msg("falha ao encerrar métricas")
		}
	}()

	// 4. Monta a cadeia gateway -> serviço -> handlers
	table := dyndb.New(dynamoFactory(awsCfg, cfg.Store.Endpoint), dyndb.TableConfig{
		TableName: cfg.Store.TableName,
		HashKey:   cfg.Store.HashKey,
	})
	svc := easyrepo.NewService(table, easyrepo.WithSortByID(cfg.Store.SortByID))
	h := handlers.New(svc, baseLogger, metrics.NewRecorder(provider))

	baseLogger.Info().
		Str("runtime", cfg.Service.Runtime).
		Str("handler", cfg.Service.Handler).
		Str("table", table.Name()).
		Msg("serviço inicializado")

	// 5. Seleciona Runtime Strategy
	switch cfg.Service.Runtime {
	case "local":
		router := transport.NewRouter(h, cfg.Service.Timeout, baseLogger)
		return serverStarter(ctx, fmt.Sprintf(":%d", cfg.Service.Port), router, baseLogger)
	case "lambda":
		handler, err := transport.NewLambdaHandler(h, cfg.Service.Handler, cfg.Service.Timeout, baseLogger)
		if err != nil {
			return err
		}
		lambdaStarter(handler.Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}
