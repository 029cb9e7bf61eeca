package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/raywall/fast-service-employees/easyrepo"
	"github.com/raywall/fast-service-employees/models"
	"github.com/raywall/fast-service-employees/pkg/metrics"
	"github.com/raywall/fast-service-employees/pkg/responder"
	"github.com/rs/zerolog"
)

// Op identifica uma operação exposta pelo serviço
type Op string

const (
	OpCreate Op = "create"
	OpRead   Op = "read"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpList   Op = "list"
)

// PathParamID é o parâmetro de rota com o id do funcionário
const PathParamID = "id"

// Mensagens das respostas
const (
	MsgCreated        = "Employee added successfully with ID: %s"
	MsgUpdated        = "Employee updated successfully with ID: %s"
	MsgDeleted        = "Employee with ID %s deleted successfully."
	MsgAlreadyExists  = "Employee with ID %s already exists."
	MsgNotFound       = "Employee with ID %s does not exist."
	MsgMissingID      = "Invalid input. Please provide an employeeId."
	MsgInvalidPayload = "Invalid input. Please provide a valid employee."

	MsgCreateFailed = "Error adding employee."
	MsgReadFailed   = "Error retrieving employee."
	MsgUpdateFailed = "Error updating employee."
	MsgDeleteFailed = "Error deleting employee."
	MsgListFailed   = "Error retrieving all employees."
)

// ErrUnknownOperation é retornado por Dispatch para operações desconhecidas
var ErrUnknownOperation = errors.New("handlers: unknown operation")

// Request é a entrada independente de transporte de um handler
type Request struct {
	Body           string
	PathParameters map[string]string
}

// HandlerFunc é a assinatura comum das operações
type HandlerFunc func(ctx context.Context, req Request) responder.Response

// Service é a camada de negócio usada pelos handlers (easyrepo.EmployeeService)
type Service interface {
	Create(ctx context.Context, e *models.Employee) error
	Get(ctx context.Context, id string) (*models.Employee, error)
	Update(ctx context.Context, e *models.Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Employee, error)
}

// Handlers agrupa as operações sobre funcionários. Não guarda estado entre
// chamadas; todo estado vive no DynamoDB.
type Handlers struct {
	svc      Service
	logger   zerolog.Logger
	recorder *metrics.Recorder
}

// New cria os handlers. logger é usado quando o contexto não traz um logger
// próprio; recorder pode ser nil.
func New(svc Service, logger zerolog.Logger, recorder *metrics.Recorder) *Handlers {
	return &Handlers{
		svc:      svc,
		logger:   logger,
		recorder: recorder,
	}
}

// Dispatch retorna o handler da operação
func (h *Handlers) Dispatch(op Op) (HandlerFunc, error) {
	switch op {
	case OpCreate:
		return h.Create, nil
	case OpRead:
		return h.Read, nil
	case OpUpdate:
		return h.Update, nil
	case OpDelete:
		return h.Delete, nil
	case OpList:
		return h.ListAll, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}

// Create adiciona um funcionário novo. O id não pode existir.
func (h *Handlers) Create(ctx context.Context, req Request) responder.Response {
	return h.observe(ctx, OpCreate, func(log *zerolog.Logger) responder.Response {
		var e models.Employee
		if err := json.Unmarshal([]byte(req.Body), &e); err != nil {
			log.Warn().Err(err).Msg("invalid create payload")
			return responder.Text(http.StatusBadRequest, MsgInvalidPayload)
		}

		err := h.svc.Create(ctx, &e)
		switch {
		case err == nil:
			return responder.Text(http.StatusCreated, fmt.Sprintf(MsgCreated, e.ID))
		case errors.Is(err, easyrepo.ErrInvalidInput):
			log.Warn().Err(err).Msg("invalid employee")
			return responder.Text(http.StatusBadRequest, MsgInvalidPayload)
		case errors.Is(err, easyrepo.ErrAlreadyExists):
			return responder.Text(http.StatusConflict, fmt.Sprintf(MsgAlreadyExists, e.ID))
		default:
			log.Error().Err(err).Str("employee_id", e.ID).Msg("error adding employee")
			return responder.Text(http.StatusInternalServerError, MsgCreateFailed)
		}
	})
}

// Read retorna o funcionário do parâmetro de rota id
func (h *Handlers) Read(ctx context.Context, req Request) responder.Response {
	return h.observe(ctx, OpRead, func(log *zerolog.Logger) responder.Response {
		id := req.PathParameters[PathParamID]
		if id == "" {
			return responder.Text(http.StatusBadRequest, MsgMissingID)
		}

		e, err := h.svc.Get(ctx, id)
		switch {
		case err == nil:
			return responder.JSON(http.StatusOK, e)
		case errors.Is(err, easyrepo.ErrInvalidInput):
			return responder.Text(http.StatusBadRequest, MsgMissingID)
		case errors.Is(err, easyrepo.ErrNotFound):
			return responder.Text(http.StatusNotFound, fmt.Sprintf(MsgNotFound, id))
		default:
			log.Error().Err(err).Str("employee_id", id).Msg("error retrieving employee")
			return responder.Text(http.StatusInternalServerError, MsgReadFailed)
		}
	})
}

// Update sobrescreve todos os campos de um funcionário existente
func (h *Handlers) Update(ctx context.Context, req Request) responder.Response {
	return h.observe(ctx, OpUpdate, func(log *zerolog.Logger) responder.Response {
		var e models.Employee
		if err := json.Unmarshal([]byte(req.Body), &e); err != nil {
			log.Warn().Err(err).Msg("invalid update payload")
			return responder.Text(http.StatusBadRequest, MsgInvalidPayload)
		}

		err := h.svc.Update(ctx, &e)
		switch {
		case err == nil:
			return responder.Text(http.StatusOK, fmt.Sprintf(MsgUpdated, e.ID))
		case errors.Is(err, easyrepo.ErrInvalidInput):
			log.Warn().Err(err).Msg("invalid employee")
			return responder.Text(http.StatusBadRequest, MsgInvalidPayload)
		case errors.Is(err, easyrepo.ErrNotFound):
			return responder.Text(http.StatusNotFound, fmt.Sprintf(MsgNotFound, e.ID))
		default:
			log.Error().Err(err).Str("employee_id", e.ID).Msg("error updating employee")
			return responder.Text(http.StatusInternalServerError, MsgUpdateFailed)
		}
	})
}

// Delete remove o funcionário do parâmetro de rota id
func (h *Handlers) Delete(ctx context.Context, req Request) responder.Response {
	return h.observe(ctx, OpDelete, func(log *zerolog.Logger) responder.Response {
		id := req.PathParameters[PathParamID]
		if id == "" {
			return responder.Text(http.StatusBadRequest, MsgMissingID)
		}

		err := h.svc.Delete(ctx, id)
		switch {
		case err == nil:
			return responder.Text(http.StatusOK, fmt.Sprintf(MsgDeleted, id))
		case errors.Is(err, easyrepo.ErrInvalidInput):
			return responder.Text(http.StatusBadRequest, MsgMissingID)
		case errors.Is(err, easyrepo.ErrNotFound):
			return responder.Text(http.StatusNotFound, fmt.Sprintf(MsgNotFound, id))
		default:
			log.Error().Err(err).Str("employee_id", id).Msg("error deleting employee")
			return responder.Text(http.StatusInternalServerError, MsgDeleteFailed)
		}
	})
}

// ListAll retorna todos os funcionários como um array JSON ("[]" se vazio)
func (h *Handlers) ListAll(ctx context.Context, _ Request) responder.Response {
	return h.observe(ctx, OpList, func(log *zerolog.Logger) responder.Response {
		employees, err := h.svc.List(ctx)
		if err != nil {
			log.Error().Err(err).Msg("error retrieving all employees")
			return responder.Text(http.StatusInternalServerError, MsgListFailed)
		}
		if employees == nil {
			employees = []models.Employee{}
		}
		return responder.JSON(http.StatusOK, employees)
	})
}

// observe resolve o logger da requisição e registra as métricas da operação
func (h *Handlers) observe(ctx context.Context, op Op, fn func(log *zerolog.Logger) responder.Response) responder.Response {
	start := time.Now()

	log := zerolog.Ctx(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = &h.logger
	}
	l := log.With().Str("operation", string(op)).Logger()

	resp := fn(&l)

	if err := h.recorder.Record(string(op), resp.StatusCode, time.Since(start)); err != nil {
		l.Debug().Err(err).Msg("metrics not sent")
	}
	return resp
}
