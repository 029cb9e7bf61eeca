package responder

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeJSON = "application/json"

	// MsgSerializationFailed é o corpo usado quando JSON não consegue serializar o valor
	MsgSerializationFailed = "Error serializing response."
)

// Response é o resultado de um handler: status HTTP, corpo e cabeçalhos.
// É independente do transporte; APIGateway e Write fazem a conversão.
type Response struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// Text cria uma resposta com corpo em texto puro
func Text(statusCode int, message string) Response {
	return Response{
		StatusCode: statusCode,
		Body:       message,
		Headers:    map[string]string{"Content-Type": ContentTypeText},
	}
}

// JSON serializa v como corpo da resposta. Se a serialização falhar a resposta
// vira um 500 com MsgSerializationFailed.
func JSON(statusCode int, v interface{}) Response {
	bytes, err := json.Marshal(v)
	if err != nil {
		return Text(http.StatusInternalServerError, MsgSerializationFailed)
	}

	return Response{
		StatusCode: statusCode,
		Body:       string(bytes),
		Headers:    map[string]string{"Content-Type": ContentTypeJSON},
	}
}

// WithHeader retorna uma cópia da resposta com o cabeçalho definido
func (r Response) WithHeader(name, value string) Response {
	headers := make(map[string]string, len(r.Headers)+1)
	for k, v := range r.Headers {
		headers[k] = v
	}
	headers[name] = value
	r.Headers = headers
	return r
}

// APIGateway converte a resposta para o formato de proxy do API Gateway
func (r Response) APIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Body:       r.Body,
		Headers:    r.Headers,
	}
}

// Write escreve a resposta em um http.ResponseWriter (runtime local)
func (r Response) Write(w http.ResponseWriter) {
	for k, v := range r.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(r.StatusCode)
	_, _ = w.Write([]byte(r.Body))
}
