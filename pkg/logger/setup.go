package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/fast-service-employees/pkg/config"
	"github.com/rs/zerolog"
)

// Configure inicializa o logger global baseando-se na configuração do serviço.
func Configure(cfg config.LoggingConf, serviceName string) zerolog.Logger {
	return ConfigureWriter(cfg, serviceName, os.Stdout)
}

// ConfigureWriter é Configure com destino explícito (usado nos testes).
func ConfigureWriter(cfg config.LoggingConf, serviceName string, out io.Writer) zerolog.Logger {
	// Define o nível de log (default: info)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Define o output (JSON para produção, Console "bonito" para local se solicitado)
	output := out
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stdout}
	}

	// Cria o logger com contexto padrão
	ctx := zerolog.New(output).
		With().
		Timestamp()
	if serviceName != "" {
		ctx = ctx.Str("service", serviceName)
	}

	return ctx.Logger()
}
