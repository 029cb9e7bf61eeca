// Package employees é um serviço de cadastro de funcionários (criar, ler,
// atualizar, remover e listar) sobre uma tabela do DynamoDB, exposto por trás
// do API Gateway como função Lambda ou como servidor HTTP local.
//
// O design é focado na composabilidade e testabilidade, utilizando interfaces
// pequenas para os clientes AWS e injeção explícita das dependências.
//
// Sub-Pacotes Principais:
//
// 1. models:
//   - Registro Employee e o codec para o mapa de atributos do DynamoDB.
//
// 2. dyndb:
//   - Gateway síncrono (Table) para uma tabela fixa: Exists, Get, Put, Update,
//     Delete, ScanAll e CreateTable.
//   - dyndbtest: cliente DynamoDB em memória para testes.
//
// 3. easyrepo:
//   - EmployeeService: validação, regras de existência e hooks.
//
// 4. pkg/handlers, pkg/responder, pkg/transport:
//   - Operações com status HTTP, adaptador API Gateway e roteador gorilla/mux.
//
// 5. envloader, pkg/config, pkg/awsconfig:
//   - Configuração por tags "env"/"envDefault", arquivo YAML opcional e
//     placeholders ${ssm./p} e ${secret.id}.
//
// Exemplo de Início Rápido:
//
//	awsCfg, _ := awsconfig.Load(ctx, config.AWSConf{Region: "us-east-1"}, "http://localhost:8000")
//	table := dyndb.New(awsconfig.NewDynamoClient(awsCfg, "http://localhost:8000"), dyndb.TableConfig{})
//	svc := easyrepo.NewService(table)
//	h := handlers.New(svc, zerolog.New(os.Stdout), nil)
//
//	resp := h.Create(ctx, handlers.Request{Body: `{"id":"1234","firstName":"John"}`})
//	fmt.Println(resp.StatusCode, resp.Body) // 201 Employee added successfully with ID: 1234
package employees
