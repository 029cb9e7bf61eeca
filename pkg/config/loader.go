package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/raywall/fast-service-employees/envloader"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath é a variável que aponta para o arquivo YAML opcional
const EnvConfigPath = "CONFIG_FILE_PATH"

// Load monta a configuração em camadas: defaults, arquivo YAML (se path não
// for vazio) e variáveis de ambiente. Placeholders e validação ficam a cargo
// de quem chama (injector.Inject e ConfigValidator.Validate).
func Load(path string) (*ServiceConfig, error) {
	cfg := &ServiceConfig{}
	if err := envloader.LoadDefaults(cfg); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := decodeYAML(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if err := envloader.LoadOverrides(cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, nil
}

// decodeYAML decodifica por cima dos defaults e rejeita chaves desconhecidas
func decodeYAML(data []byte, cfg *ServiceConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
