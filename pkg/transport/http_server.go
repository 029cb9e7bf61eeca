package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/raywall/fast-service-employees/pkg/handlers"
	"github.com/raywall/fast-service-employees/pkg/responder"
	"github.com/rs/zerolog"
)

// shutdownTimeout limita a espera pelas requisições em andamento no desligamento
const shutdownTimeout = 5 * time.Second

// NewRouter registra as rotas de funcionários no gorilla/mux, com o mesmo
// mapeamento do modo router da Lambda
func NewRouter(h *handlers.Handlers, timeout time.Duration, logger zerolog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(ObservabilityMiddleware(logger))

	item := ResourcePath + "/{" + handlers.PathParamID + "}"
	r.HandleFunc(ResourcePath, adapt(h.Create, timeout)).Methods(http.MethodPost)
	r.HandleFunc(ResourcePath, adapt(h.ListAll, timeout)).Methods(http.MethodGet)
	r.HandleFunc(ResourcePath, adapt(h.Update, timeout)).Methods(http.MethodPut)
	r.HandleFunc(item, adapt(h.Read, timeout)).Methods(http.MethodGet)
	r.HandleFunc(item, adapt(h.Delete, timeout)).Methods(http.MethodDelete)
	r.HandleFunc(ResourcePath, adapt(h.Delete, timeout)).Methods(http.MethodDelete)

	// middlewares do mux não rodam para rotas sem match
	r.NotFoundHandler = ObservabilityMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		routeNotFound(req.Context(), handlers.Request{}).Write(w)
	}))
	return r
}

// adapt converte uma requisição HTTP em handlers.Request
func adapt(fn handlers.HandlerFunc, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		defer r.Body.Close()
		if err != nil {
			responder.Text(http.StatusBadRequest, handlers.MsgInvalidPayload).Write(w)
			return
		}

		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		fn(ctx, handlers.Request{
			Body:           string(body),
			PathParameters: mux.Vars(r),
		}).Write(w)
	}
}

// StartHTTPServer serve handler em addr até ctx ser cancelado
func StartHTTPServer(ctx context.Context, addr string, handler http.Handler, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Msgf("Servidor HTTP ouvindo em %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info().Msg("Encerrando servidor HTTP")
		return srv.Shutdown(shutdownCtx)
	}
}

// --- MIDDLEWARE DE OBSERVABILIDADE ---
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	startTime   time.Time
	wroteHeader bool
}

func (rw *responseWriterWrapper) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	duration := time.Since(rw.startTime)
	rw.Header().Set(HeaderLatency, fmt.Sprintf("%d", duration.Milliseconds()))
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

func (rw *responseWriterWrapper) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// ObservabilityMiddleware anexa correlation id e logger contextual a cada
// requisição e registra uma linha de log ao final
func ObservabilityMiddleware(base zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			corrID := r.Header.Get(HeaderCorrelationID)
			if corrID == "" {
				corrID = correlationFrom(nil)
			}
			w.Header().Set(HeaderCorrelationID, corrID)

			logger := base.With().Str("correlation_id", corrID).Logger()
			ctx := logger.WithContext(r.Context())
			ctx = withCorrelationID(ctx, corrID)

			wrapper := &responseWriterWrapper{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
				startTime:      start,
			}

			next.ServeHTTP(wrapper, r.WithContext(ctx))

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Msg("request completed")
		})
	}
}
