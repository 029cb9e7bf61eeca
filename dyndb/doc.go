// Package dyndb fornece o gateway de armazenamento sobre o AWS DynamoDB Go SDK
// (v2) para uma única tabela endereçada por uma chave hash do tipo string.
//
// Visão Geral:
// O tipo `Table` expõe as operações pontuais (`Exists`, `Get`, `Put`,
// `Update`, `Delete`) e a varredura completa (`ScanAll`) trabalhando
// diretamente com o mapa de atributos nativo do SDK (`Item`). A tradução
// entre registros de domínio e atributos fica a cargo de quem chama.
//
// Funcionalidades Principais:
//   - Chave Fixa: todas as operações recebem apenas o identificador do item.
//   - Sem Travas: `Put` é um upsert incondicional e `Update` não verifica
//     existência; quem precisa dessas garantias consulta `Exists` antes.
//   - Varredura Completa: `ScanAll` segue o `LastEvaluatedKey` até o fim.
//   - Erros: qualquer falha do SDK é embrulhada em `ErrStoreUnavailable`.
//   - Bootstrap: `CreateTable` cria a tabela e aguarda até ficar ativa.
//   - Mocks: `MockDynamoClient` e o pacote `dyndbtest` (cliente em memória).
//
// Exemplo de Uso:
//
//	client := dynamodb.NewFromConfig(awsCfg)
//	table := dyndb.New(client, dyndb.TableConfig{TableName: "Employee", HashKey: "id"})
//
//	ok, err := table.Exists(ctx, "1234")
//	if err != nil { /* ... */ }
//	if !ok {
//		_ = table.Put(ctx, "1234", item)
//	}
//
// Configuração:
// Quando `TableConfig` chega vazio, `New` carrega `DYNAMODB_TABLE_NAME` e
// `DYNAMODB_HASH_KEY` do ambiente (padrões "Employee" e "id").
package dyndb
