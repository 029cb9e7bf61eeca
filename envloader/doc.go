// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package envloader preenche structs de configuração a partir de variáveis de
// ambiente, guiado pelas tags `env`, `envDefault` e `envRequired`.
//
// Tipos suportados: string, inteiros e uints (com checagem do tamanho do
// campo), bool, floats, time.Duration, structs aninhadas e ponteiros para
// structs (alocados quando nil). Outros tipos retornam UnsupportedTypeError.
//
// Modos de carga:
//   - Load: ambiente e, na ausência dele, envDefault.
//   - LoadDefaults: apenas envDefault; o ambiente é ignorado.
//   - LoadOverrides: apenas o ambiente; campos sem variável ficam como estão.
//
// LoadDefaults e LoadOverrides existem para montar a configuração em camadas
// (defaults, depois um arquivo YAML, depois o ambiente) sem que um default
// apague um valor vindo do arquivo, inclusive um `false` explícito.
//
// Erros:
//   - InvalidConfigError: o argumento não é ponteiro para struct.
//   - FieldError: o valor não converte para o tipo do campo (Unwrap expõe a causa).
//   - MissingVarError: campo `envRequired:"true"` sem variável, default ou valor prévio.
//
// Exemplo:
//
//	type StoreConf struct {
//		TableName string        `env:"DYNAMODB_TABLE_NAME" envDefault:"Employee"`
//		Endpoint  string        `env:"DYNAMODB_ENDPOINT"`
//		Timeout   time.Duration `env:"SERVICE_TIMEOUT" envDefault:"3s"`
//	}
//
//	var cfg StoreConf
//	if err := envloader.LoadDefaults(&cfg); err != nil {
//		return err
//	}
//	// ... yaml.Unmarshal sobre cfg ...
//	if err := envloader.LoadOverrides(&cfg); err != nil {
//		return err
//	}
package envloader
