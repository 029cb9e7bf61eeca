package models

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrMalformedRecord é retornado quando um item do DynamoDB não possui algum
// dos atributos obrigatórios de um Employee.
var ErrMalformedRecord = errors.New("models: malformed employee record")

// EncodeEmployee converte o registro em um mapa de atributos, todos do tipo S.
// Os valores são repassados sem escape nem validação.
func EncodeEmployee(e Employee) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrID:          &types.AttributeValueMemberS{Value: e.ID},
		AttrFirstName:   &types.AttributeValueMemberS{Value: e.FirstName},
		AttrLastName:    &types.AttributeValueMemberS{Value: e.LastName},
		AttrJobPosition: &types.AttributeValueMemberS{Value: e.JobPosition},
	}
}

// DecodeEmployee é o inverso de EncodeEmployee.
func DecodeEmployee(item map[string]types.AttributeValue) (Employee, error) {
	for _, name := range attributeNames {
		av, ok := item[name]
		if !ok {
			return Employee{}, fmt.Errorf("%w: missing attribute %q", ErrMalformedRecord, name)
		}
		if _, ok := av.(*types.AttributeValueMemberS); !ok {
			return Employee{}, fmt.Errorf("%w: attribute %q is not a string", ErrMalformedRecord, name)
		}
	}

	var e Employee
	if err := attributevalue.UnmarshalMap(item, &e); err != nil {
		return Employee{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return e, nil
}

// DecodeEmployees decodifica uma sequência de itens, preservando a ordem.
// Um único item inválido faz a operação inteira falhar.
func DecodeEmployees(items []map[string]types.AttributeValue) ([]Employee, error) {
	result := make([]Employee, 0, len(items))
	for i, item := range items {
		e, err := DecodeEmployee(item)
		if err != nil {
			return nil, fmt.Errorf("item[%d]: %w", i, err)
		}
		result = append(result, e)
	}
	return result, nil
}
