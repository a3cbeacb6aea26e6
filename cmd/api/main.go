package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rlourenzo/almoxarifado-api/internal/application/auth"
	appestoque "github.com/rlourenzo/almoxarifado-api/internal/application/estoque"
	"github.com/rlourenzo/almoxarifado-api/internal/application/usecase"
	domestoque "github.com/rlourenzo/almoxarifado-api/internal/domain/estoque"
	"github.com/rlourenzo/almoxarifado-api/internal/infrastructure/postgres"
	httpRouter "github.com/rlourenzo/almoxarifado-api/internal/interfaces/http"
	"github.com/rlourenzo/almoxarifado-api/pkg/config"
	"github.com/rlourenzo/almoxarifado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	retiradaRepo := postgres.NewRetiradaRepository(pool)
	solicitacaoRepo := postgres.NewSolicitacaoRepository(pool)
	valoracaoRepo := postgres.NewValoracaoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	limites := domestoque.Limites{
		MinimoPadrao:  cfg.Estoque.MinimoPadrao,
		MaximoPadrao:  cfg.Estoque.MaximoPadrao,
		FracaoCritica: cfg.Estoque.FracaoCritica,
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := usecase.NewItemUseCase(itemRepo, fornecedorRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	movimentacaoUC := appestoque.NewMovimentacaoUseCase(txRunner, itemRepo, movRepo)
	statusUC := appestoque.NewStatusUseCase(itemRepo, limites)
	relatorioUC := appestoque.NewRelatorioUseCase(valoracaoRepo, itemRepo)
	retiradaUC := appestoque.NewRetiradaUseCase(txRunner, retiradaRepo)
	solicitacaoUC := appestoque.NewSolicitacaoUseCase(txRunner, solicitacaoRepo, itemRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ItemUC:         itemUC,
		FornecedorUC:   fornecedorUC,
		MovimentacaoUC: movimentacaoUC,
		StatusUC:       statusUC,
		RelatorioUC:    relatorioUC,
		RetiradaUC:     retiradaUC,
		SolicitacaoUC:  solicitacaoUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

// runMigrations aplica as migrações pendentes com goose antes de abrir o pool.
func runMigrations(dsn string) error {
	db, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return goose.Up(db, "migrations")
}
