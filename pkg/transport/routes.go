package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/raywall/fast-service-employees/pkg/handlers"
	"github.com/raywall/fast-service-employees/pkg/responder"
)

const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderLatency       = "x-latency-ms"

	// ResourcePath é a rota base dos funcionários
	ResourcePath = "/employees"

	// ModeRouter despacha pelo método HTTP em vez de uma operação fixa
	ModeRouter = "router"

	MsgRouteNotFound = "Route not found."
)

type ctxKey struct{}

// CorrelationID retorna o id de correlação da requisição, se houver
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func withCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// correlationFrom busca o header sem diferenciar maiúsculas, já que o API
// Gateway pode ou não normalizar os nomes
func correlationFrom(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, HeaderCorrelationID) && v != "" {
			return v
		}
	}
	return uuid.NewString()
}

// RouteFor resolve a operação a partir do método e da presença do {id}:
//
//	POST   /employees      -> create
//	GET    /employees      -> list
//	GET    /employees/{id} -> read
//	PUT    /employees      -> update
//	DELETE /employees/{id} -> delete
//	DELETE /employees      -> delete (responde 400 sem o id)
func RouteFor(method string, hasID bool) (handlers.Op, bool) {
	switch {
	case method == http.MethodPost && !hasID:
		return handlers.OpCreate, true
	case method == http.MethodGet && !hasID:
		return handlers.OpList, true
	case method == http.MethodGet && hasID:
		return handlers.OpRead, true
	case method == http.MethodPut && !hasID:
		return handlers.OpUpdate, true
	case method == http.MethodDelete:
		return handlers.OpDelete, true
	}
	return "", false
}

func routeNotFound(context.Context, handlers.Request) responder.Response {
	return responder.Text(http.StatusNotFound, MsgRouteNotFound)
}
