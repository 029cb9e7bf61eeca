// Package models define o registro Employee e o codec entre o registro e a
// representação nativa de atributos do DynamoDB.
package models

// Nomes dos atributos do item no DynamoDB. São também os nomes dos campos JSON.
const (
	AttrID          = "id"
	AttrFirstName   = "firstName"
	AttrLastName    = "lastName"
	AttrJobPosition = "jobPosition"
)

// attributeNames lista os atributos obrigatórios de um item Employee.
var attributeNames = []string{AttrID, AttrFirstName, AttrLastName, AttrJobPosition}

// Employee é a única entidade do serviço.
type Employee struct {
	ID          string `json:"id" dynamodbav:"id" validate:"required"`
	FirstName   string `json:"firstName" dynamodbav:"firstName"`
	LastName    string `json:"lastName" dynamodbav:"lastName"`
	JobPosition string `json:"jobPosition" dynamodbav:"jobPosition"`
}
