package metrics

import (
	"fmt"
	"strconv"
	"time"
)

// Recorder registra as métricas de cada operação no Provider configurado.
type Recorder struct {
	provider Provider
}

// NewRecorder cria um Recorder. Um provider nil descarta tudo.
func NewRecorder(provider Provider) *Recorder {
	return &Recorder{provider: provider}
}

// Record envia o contador de requisições e a latência, ambos com as tags
// operation e status.
func (r *Recorder) Record(operation string, status int, latency time.Duration) error {
	if r == nil || r.provider == nil {
		return nil
	}

	tags := []string{
		"operation:" + operation,
		"status:" + strconv.Itoa(status),
	}

	if err := r.send(Requests, 1, tags); err != nil {
		return err
	}
	return r.send(Latency, float64(latency.Milliseconds()), tags)
}

func (r *Recorder) send(def MetricDefinition, value float64, tags []string) error {
	var err error
	switch def.Type {
	case TypeCount:
		err = r.provider.Count(def.Name, value, tags)
	case TypeGauge:
		err = r.provider.Gauge(def.Name, value, tags)
	case TypeHistogram:
		err = r.provider.Histogram(def.Name, value, tags)
	default:
		return fmt.Errorf("tipo de métrica desconhecido: %s", def.Type)
	}
	if err != nil {
		return fmt.Errorf("erro ao enviar métrica %s: %w", def.Name, err)
	}
	return nil
}
