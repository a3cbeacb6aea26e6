package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apphttp "github.com/rlourenzo/almoxarifado-api/internal/interfaces/http"
)

// rotaRegistrada verifica se o router registrou method+path. A barra final
// que o fiber mantém em rotas de grupo é irrelevante para o contrato.
func rotaRegistrada(app *fiber.App, method, path string) bool {
	for _, r := range app.GetRoutes() {
		if r.Method == method && strings.TrimSuffix(r.Path, "/") == strings.TrimSuffix(path, "/") {
			return true
		}
	}
	return false
}

// As rotas são contrato com os consumidores da API; este teste fixa os paths
// para que um refactor do router não os mova silenciosamente.
func TestRouter_RotasPublicadas(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	casos := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/itens"},
		{http.MethodGet, "/api/itens/:id/status"},
		{http.MethodPost, "/api/itens/:id/recalcular"},
		{http.MethodPost, "/api/movimentacoes"},
		{http.MethodPut, "/api/movimentacoes/:id"},
		{http.MethodDelete, "/api/movimentacoes/:id"},
		{http.MethodGet, "/api/estoque/alertas"},
		{http.MethodGet, "/api/estoque/criticos"},
		{http.MethodGet, "/api/estoque/reposicao"},
		{http.MethodGet, "/api/relatorios/inventario-periodico"},
		{http.MethodGet, "/api/relatorios/categorias"},
		{http.MethodGet, "/api/retiradas"},
		{http.MethodPost, "/api/retiradas/:id/devolucao"},
		{http.MethodPost, "/api/solicitacoes"},
		{http.MethodPost, "/api/solicitacoes/:id/aprovar"},
		{http.MethodPost, "/api/solicitacoes/:id/recusar"},
		{http.MethodPost, "/api/solicitacoes/:id/atender"},
		{http.MethodGet, "/api/fornecedores"},
	}
	for _, c := range casos {
		assert.True(t, rotaRegistrada(app, c.method, c.path),
			"rota %s %s deve estar registrada", c.method, c.path)
	}
}
