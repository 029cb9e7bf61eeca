package envloader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeSettings struct {
	Table    string `env:"TEST_TABLE" envDefault:"Employee"`
	PageSize int32  `env:"TEST_PAGE_SIZE" envDefault:"0"`
	Sorted   bool   `env:"TEST_SORTED" envDefault:"false"`
}

type serviceSettings struct {
	Name     string        `env:"TEST_SERVICE_NAME" envDefault:"employees"`
	Port     uint16        `env:"TEST_PORT" envDefault:"8080"`
	Timeout  time.Duration `env:"TEST_TIMEOUT" envDefault:"3s"`
	Ratio    float64       `env:"TEST_SAMPLE_RATE" envDefault:"1"`
	Internal string        // sem tag, nunca tocado
	Store    storeSettings
	Extra    *storeSettings
}

func TestLoad_DefaultsAndEnvironment(t *testing.T) {
	t.Setenv("TEST_PORT", "9090")
	t.Setenv("TEST_TABLE", "Staff")
	t.Setenv("TEST_SORTED", "TRUE")
	t.Setenv("TEST_SAMPLE_RATE", "0.25")

	cfg := &serviceSettings{Internal: "keep"}
	require.NoError(t, Load(cfg))

	assert.Equal(t, "employees", cfg.Name)
	assert.Equal(t, uint16(9090), cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 0.25, cfg.Ratio)
	assert.Equal(t, "keep", cfg.Internal)
	assert.Equal(t, "Staff", cfg.Store.Table)
	assert.True(t, cfg.Store.Sorted)

	// ponteiro nil para struct é alocado e preenchido
	require.NotNil(t, cfg.Extra)
	assert.Equal(t, "Staff", cfg.Extra.Table)
}

func TestLoad_ConversionErrors(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"duration sem unidade", "TEST_TIMEOUT", "3"},
		{"porta negativa", "TEST_PORT", "-1"},
		{"porta fora de uint16", "TEST_PORT", "70000"},
		{"page size fora de int32", "TEST_PAGE_SIZE", "3000000000"},
		{"bool inválido", "TEST_SORTED", "talvez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			err := Load(&serviceSettings{})

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.envVar, fieldErr.EnvVar)
			assert.Equal(t, tt.value, fieldErr.Value)
		})
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	var invalid *InvalidConfigError

	assert.ErrorAs(t, Load(serviceSettings{}), &invalid)
	assert.ErrorAs(t, Load(new(int)), &invalid)
	assert.Panics(t, func() { MustLoad("employees") })
}

func TestLoad_UnsupportedType(t *testing.T) {
	type withTags struct {
		Tags []string `env:"TEST_TAGS" envDefault:"a,b"`
	}

	var unsupported *UnsupportedTypeError
	assert.ErrorAs(t, Load(&withTags{}), &unsupported)
}

func TestLoad_Required(t *testing.T) {
	type Config struct {
		Table string `env:"REQUIRED_TABLE" envRequired:"true"`
	}

	err := Load(&Config{})
	var missing *MissingVarError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "REQUIRED_TABLE", missing.EnvVar)
	assert.Contains(t, err.Error(), "Table")

	// Um valor prévio satisfaz a obrigatoriedade
	assert.NoError(t, Load(&Config{Table: "Employee"}))

	t.Setenv("REQUIRED_TABLE", "Staff")
	config := &Config{}
	require.NoError(t, Load(config))
	assert.Equal(t, "Staff", config.Table)

	// LoadDefaults não exige a variável
	assert.NoError(t, LoadDefaults(&Config{}))
}

func TestLoadDefaults_IgnoresEnvironment(t *testing.T) {
	t.Setenv("TEST_PORT", "9999")
	t.Setenv("TEST_TABLE", "Staff")

	cfg := &serviceSettings{}
	require.NoError(t, LoadDefaults(cfg))

	assert.Equal(t, uint16(8080), cfg.Port)
	assert.Equal(t, "Employee", cfg.Store.Table)
}

func TestLoadOverrides_KeepsExistingValues(t *testing.T) {
	t.Setenv("TEST_PORT", "7070")

	// valores vindos de um arquivo YAML, Sorted=false explícito
	cfg := &serviceSettings{Name: "from-file", Store: storeSettings{Table: "FileTable"}}
	require.NoError(t, LoadOverrides(cfg))

	assert.Equal(t, uint16(7070), cfg.Port)
	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, "FileTable", cfg.Store.Table)
	assert.False(t, cfg.Store.Sorted)
	assert.Zero(t, cfg.Timeout, "overrides não aplicam envDefault")
}
