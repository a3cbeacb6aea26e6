package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rlourenzo/almoxarifado-api/internal/application/auth"
	"github.com/rlourenzo/almoxarifado-api/internal/application/estoque"
	"github.com/rlourenzo/almoxarifado-api/internal/application/usecase"
	"github.com/rlourenzo/almoxarifado-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ItemUC         *usecase.ItemUseCase
	FornecedorUC   *usecase.FornecedorUseCase
	MovimentacaoUC *estoque.MovimentacaoUseCase
	StatusUC       *estoque.StatusUseCase
	RelatorioUC    *estoque.RelatorioUseCase
	RetiradaUC     *estoque.RetiradaUseCase
	SolicitacaoUC  *estoque.SolicitacaoUseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	gestor := RequireRole(entity.RoleGestor)

	// Itens (leitura para todos; escrita só gestor)
	itens := protected.Group("/itens")
	itemHandler := NewItemHandler(deps.ItemUC)
	itens.Get("/", itemHandler.List)
	itens.Get("/:id", itemHandler.GetByID)
	itens.Post("/", gestor, itemHandler.Create)
	itens.Put("/:id", gestor, itemHandler.Update)
	itens.Delete("/:id", gestor, itemHandler.Delete)

	// Operações por item que moram em outros casos de uso
	estoqueHandler := NewEstoqueHandler(deps.StatusUC)
	movimentacaoHandler := NewMovimentacaoHandler(deps.MovimentacaoUC)
	itens.Get("/:id/status", estoqueHandler.StatusItem)
	itens.Post("/:id/recalcular", gestor, movimentacaoHandler.Recalcular)

	// Fornecedores (só gestor)
	fornecedores := protected.Group("/fornecedores", gestor)
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	// Movimentações (só gestor)
	movimentacoes := protected.Group("/movimentacoes", gestor)
	movimentacoes.Post("/", movimentacaoHandler.Register)
	movimentacoes.Get("/", movimentacaoHandler.List)
	movimentacoes.Put("/:id", movimentacaoHandler.Update)
	movimentacoes.Delete("/:id", movimentacaoHandler.Delete)

	// Status de estoque (leitura para todos)
	statusGroup := protected.Group("/estoque")
	statusGroup.Get("/alertas", estoqueHandler.Alertas)
	statusGroup.Get("/criticos", estoqueHandler.Criticos)
	statusGroup.Get("/reposicao", estoqueHandler.Reposicao)

	// Relatórios (só gestor)
	relatorios := protected.Group("/relatorios", gestor)
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios.Get("/inventario-periodico", relatorioHandler.Inventario)
	relatorios.Get("/categorias", relatorioHandler.Categorias)

	// Retiradas temporárias (devolução só gestor)
	retiradas := protected.Group("/retiradas")
	retiradaHandler := NewRetiradaHandler(deps.RetiradaUC)
	retiradas.Get("/", retiradaHandler.List)
	retiradas.Get("/:id", retiradaHandler.GetByID)
	retiradas.Post("/:id/devolucao", gestor, retiradaHandler.Devolucao)

	// Solicitações (criar e consultar para todos; decidir e atender só gestor)
	solicitacoes := protected.Group("/solicitacoes")
	solicitacaoHandler := NewSolicitacaoHandler(deps.SolicitacaoUC)
	solicitacoes.Post("/", solicitacaoHandler.Create)
	solicitacoes.Get("/", solicitacaoHandler.List)
	solicitacoes.Get("/:id", solicitacaoHandler.GetByID)
	solicitacoes.Post("/:id/aprovar", gestor, solicitacaoHandler.Approve)
	solicitacoes.Post("/:id/recusar", gestor, solicitacaoHandler.Reject)
	solicitacoes.Post("/:id/atender", gestor, solicitacaoHandler.Fulfill)
}
