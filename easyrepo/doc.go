// Package easyrepo implementa a camada de serviço dos funcionários sobre o
// gateway dyndb.Table.
//
// EmployeeService valida o registro (tags `validate` do go-playground/validator),
// aplica as regras de existência antes de qualquer escrita e converte o registro
// para o formato de atributos do DynamoDB através do pacote models.
//
// Erros retornados:
//   - ErrInvalidInput: registro inválido ou id vazio.
//   - ErrNotFound: id inexistente em Get, Update e Delete.
//   - ErrAlreadyExists: id já usado em Create.
//
// Qualquer outro erro vem do gateway (dyndb.ErrStoreUnavailable) ou do codec
// (models.ErrMalformedRecord).
//
// Exemplo de uso:
//
//	table := dyndb.New(dynamoClient, dyndb.TableConfig{TableName: "Employee", HashKey: "id"})
//	service := easyrepo.NewService(table, easyrepo.WithSortByID(true))
//	err := service.Create(ctx, &models.Employee{ID: "1", FirstName: "John"})
package easyrepo
