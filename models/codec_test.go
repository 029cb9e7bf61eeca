package models

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEmployee(t *testing.T) {
	e := Employee{ID: "1234", FirstName: "John", LastName: "Doe", JobPosition: "Developer"}

	item := EncodeEmployee(e)

	require.Len(t, item, 4)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "1234"}, item["id"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "John"}, item["firstName"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Doe"}, item["lastName"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Developer"}, item["jobPosition"])
}

func TestEncodeEmployee_KeepsValuesVerbatim(t *testing.T) {
	e := Employee{ID: " a/b ", FirstName: "", LastName: "O'Neil \"x\"", JobPosition: "Dév"}

	item := EncodeEmployee(e)

	assert.Equal(t, &types.AttributeValueMemberS{Value: " a/b "}, item["id"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: ""}, item["firstName"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "O'Neil \"x\""}, item["lastName"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Dév"}, item["jobPosition"])
}

func TestDecodeEmployee_RoundTrip(t *testing.T) {
	e := Employee{ID: "1", FirstName: "Jane", LastName: "Smith", JobPosition: "Designer"}

	got, err := DecodeEmployee(EncodeEmployee(e))

	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestDecodeEmployee_IgnoresExtraAttributes(t *testing.T) {
	item := EncodeEmployee(Employee{ID: "1", FirstName: "a", LastName: "b", JobPosition: "c"})
	item["createdAt"] = &types.AttributeValueMemberN{Value: "10"}

	got, err := DecodeEmployee(item)

	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}

func TestDecodeEmployee_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]types.AttributeValue)
		wantMsg string
	}{
		{
			name:    "missing id",
			mutate:  func(m map[string]types.AttributeValue) { delete(m, "id") },
			wantMsg: `missing attribute "id"`,
		},
		{
			name:    "missing jobPosition",
			mutate:  func(m map[string]types.AttributeValue) { delete(m, "jobPosition") },
			wantMsg: `missing attribute "jobPosition"`,
		},
		{
			name: "lastName is a number",
			mutate: func(m map[string]types.AttributeValue) {
				m["lastName"] = &types.AttributeValueMemberN{Value: "42"}
			},
			wantMsg: `attribute "lastName" is not a string`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := EncodeEmployee(Employee{ID: "1", FirstName: "a", LastName: "b", JobPosition: "c"})
			tt.mutate(item)

			_, err := DecodeEmployee(item)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRecord)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecodeEmployees(t *testing.T) {
	t.Run("empty input yields empty slice", func(t *testing.T) {
		got, err := DecodeEmployees(nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("preserves order", func(t *testing.T) {
		items := []map[string]types.AttributeValue{
			EncodeEmployee(Employee{ID: "2"}),
			EncodeEmployee(Employee{ID: "1"}),
		}
		got, err := DecodeEmployees(items)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2", got[0].ID)
		assert.Equal(t, "1", got[1].ID)
	})

	t.Run("one bad item fails all", func(t *testing.T) {
		items := []map[string]types.AttributeValue{
			EncodeEmployee(Employee{ID: "1"}),
			{"id": &types.AttributeValueMemberS{Value: "2"}},
		}
		got, err := DecodeEmployees(items)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrMalformedRecord)
		assert.Contains(t, err.Error(), "item[1]")
	})
}
