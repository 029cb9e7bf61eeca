package awsconfig

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	svcconfig "github.com/raywall/fast-service-employees/pkg/config"
)

// Credenciais usadas contra o DynamoDB local quando nenhuma foi definida no ambiente
const (
	localAccessKey = "local"
	localSecretKey = "local"
)

// Load carrega a configuração da AWS (env vars, profile, IAM role).
// Com endpoint definido e sem AWS_ACCESS_KEY_ID, usa credenciais estáticas
// para que o DynamoDB local aceite as requisições assinadas.
func Load(ctx context.Context, cfg svcconfig.AWSConf, endpoint string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if endpoint != "" && os.Getenv("AWS_ACCESS_KEY_ID") == "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(localAccessKey, localSecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("awsconfig: loading default config: %w", err)
	}
	return awsCfg, nil
}

// NewDynamoClient cria o cliente DynamoDB, apontando para endpoint quando informado
func NewDynamoClient(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
