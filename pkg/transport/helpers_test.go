package transport

import (
	"bytes"
	"testing"

	"github.com/raywall/fast-service-employees/dyndb"
	"github.com/raywall/fast-service-employees/dyndb/dyndbtest"
	"github.com/raywall/fast-service-employees/easyrepo"
	"github.com/raywall/fast-service-employees/pkg/handlers"
	"github.com/rs/zerolog"
)

func newHandlers(t *testing.T) (*handlers.Handlers, *bytes.Buffer) {
	t.Helper()

	client := dyndbtest.NewMemoryClient("id")
	table := dyndb.New(client, dyndb.TableConfig{TableName: "Employee", HashKey: "id"})
	logs := &bytes.Buffer{}

	return handlers.New(easyrepo.NewService(table), zerolog.New(logs), nil), logs
}
