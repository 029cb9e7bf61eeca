package awsconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Resolver busca valores de configuração no Parameter Store e no Secrets Manager.
// Implementa injector.Resolver.
type Resolver struct {
	ssm     SSMClient
	secrets SecretsClient
}

// NewResolver cria o resolver com os clientes reais
func NewResolver(awsCfg aws.Config) *Resolver {
	return &Resolver{
		ssm:     ssm.NewFromConfig(awsCfg),
		secrets: secretsmanager.NewFromConfig(awsCfg),
	}
}

// NewResolverWithClients permite injetar os clientes (testes)
func NewResolverWithClients(ssmClient SSMClient, secretsClient SecretsClient) *Resolver {
	return &Resolver{ssm: ssmClient, secrets: secretsClient}
}

// Parameter lê um parâmetro do SSM, sempre com decriptação
func (r *Resolver) Parameter(ctx context.Context, name string) (string, error) {
	out, err := r.ssm.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SSM GetParameter: %w", err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parâmetro %s sem valor", name)
	}
	return *out.Parameter.Value, nil
}

// Secret lê um segredo. O formato "id#campo" extrai um campo de um segredo JSON.
func (r *Resolver) Secret(ctx context.Context, ref string) (string, error) {
	id, field, hasField := strings.Cut(ref, "#")

	out, err := r.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SecretsManager: %w", err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("segredo %s sem SecretString", id)
	}

	val := *out.SecretString
	if !hasField {
		return val, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return "", fmt.Errorf("segredo %s não é JSON: %w", id, err)
	}
	fieldVal, ok := data[field]
	if !ok {
		return "", fmt.Errorf("campo %s ausente no segredo %s", field, id)
	}
	return fmt.Sprintf("%v", fieldVal), nil
}
