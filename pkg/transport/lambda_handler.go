package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/raywall/fast-service-employees/pkg/handlers"
	"github.com/rs/zerolog"
)

// LambdaHandler adapta eventos do API Gateway para os handlers de funcionários
type LambdaHandler struct {
	handlers *handlers.Handlers
	fixed    handlers.HandlerFunc
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewLambdaHandler cria uma nova instância do adaptador.
// mode é ModeRouter ou o nome de uma operação (create, read, update, delete, list),
// para o caso de uma função Lambda por operação.
func NewLambdaHandler(h *handlers.Handlers, mode string, timeout time.Duration, logger zerolog.Logger) (*LambdaHandler, error) {
	lh := &LambdaHandler{
		handlers: h,
		timeout:  timeout,
		logger:   logger,
	}

	if mode != ModeRouter {
		fn, err := h.Dispatch(handlers.Op(mode))
		if err != nil {
			return nil, fmt.Errorf("transport: lambda mode: %w", err)
		}
		lh.fixed = fn
	}
	return lh, nil
}

// Handle processa a requisição Lambda. Erros viram respostas; o erro
// retornado é sempre nil para que o API Gateway receba o status correto.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	corrID := correlationFrom(req.Headers)

	// Configura Logger Contextual
	logger := h.logger.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)
	ctx = withCorrelationID(ctx, corrID)

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	fn := h.resolve(req)
	resp := fn(ctx, handlers.Request{
		Body:           req.Body,
		PathParameters: req.PathParameters,
	}).WithHeader(HeaderCorrelationID, corrID)

	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("lambda request completed")

	return resp.APIGateway(), nil
}

func (h *LambdaHandler) resolve(req events.APIGatewayProxyRequest) handlers.HandlerFunc {
	if h.fixed != nil {
		return h.fixed
	}

	op, ok := RouteFor(req.HTTPMethod, req.PathParameters[handlers.PathParamID] != "")
	if !ok {
		return routeNotFound
	}
	fn, _ := h.handlers.Dispatch(op)
	return fn
}
