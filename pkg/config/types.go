package config

import "time"

// ServiceConfig é a raiz da configuração do serviço de funcionários.
// Os valores vêm, em ordem de precedência crescente, dos defaults (envDefault),
// do arquivo YAML opcional e das variáveis de ambiente.
type ServiceConfig struct {
	Service ServiceDetails `yaml:"service"`
	Store   StoreConf      `yaml:"store"`
	AWS     AWSConf        `yaml:"aws"`
}

// ServiceDetails contém os metadados e configurações de runtime do serviço.
type ServiceDetails struct {
	Name    string        `yaml:"name" env:"SERVICE_NAME" envDefault:"employee-service" validate:"required,hostname_rfc1123"`
	Runtime string        `yaml:"runtime" env:"RUNTIME" envDefault:"lambda" validate:"required,oneof=local lambda"`
	Port    int           `yaml:"port" env:"PORT" envDefault:"8080" validate:"required_if=Runtime local"` // Obrigatório apenas se local
	Handler string        `yaml:"handler" env:"HANDLER" envDefault:"router" validate:"required,oneof=router create read update delete list"`
	Timeout time.Duration `yaml:"timeout" env:"SERVICE_TIMEOUT" envDefault:"10s" validate:"gt=0"` // Ex: "500ms", "2s"
	Logging LoggingConf   `yaml:"logging"`
	Metrics MetricsConf   `yaml:"metrics"`
}

// StoreConf descreve a tabela DynamoDB dos funcionários.
type StoreConf struct {
	TableName string `yaml:"table_name" env:"DYNAMODB_TABLE_NAME" envDefault:"Employee" validate:"required"`
	HashKey   string `yaml:"hash_key" env:"DYNAMODB_HASH_KEY" envDefault:"id" validate:"required"`
	// Endpoint aponta para um DynamoDB local (ex: http://localhost:8000)
	Endpoint string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`
	SortByID bool   `yaml:"list_sort_by_id" env:"LIST_SORT_BY_ID"`
}

type AWSConf struct {
	Region  string `yaml:"region" env:"AWS_REGION" envDefault:"us-east-1" validate:"required"`
	Profile string `yaml:"profile" env:"AWS_PROFILE"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string   `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"` // host:porta do agente statsd
	Namespace string   `yaml:"namespace" env:"DD_NAMESPACE"`
	Tags      []string `yaml:"tags"`
}
