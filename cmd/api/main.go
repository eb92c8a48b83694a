package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appbrew "github.com/jhoicas/brewme-api/internal/application/brewing"
	"github.com/jhoicas/brewme-api/internal/application/usecase"
	"github.com/jhoicas/brewme-api/internal/infrastructure/beerxml"
	infrapdf "github.com/jhoicas/brewme-api/internal/infrastructure/pdf"
	"github.com/jhoicas/brewme-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/brewme-api/internal/interfaces/http"
	"github.com/jhoicas/brewme-api/pkg/config"
	"github.com/jhoicas/brewme-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	brewCfg := appbrew.Config{
		MinVolumeBBL: cfg.Brewing.MinVolumeBBL,
		MarkupFactor: cfg.Brewing.MarkupFactor,
	}

	ingredientRepo := postgres.NewIngredientRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	batchRepo := postgres.NewBatchLogRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	scaleUC := appbrew.NewScaleRecipeUseCase(recipeRepo, ingredientRepo, brewCfg)
	costUC := appbrew.NewCostEstimator(ingredientRepo, brewCfg)
	commitUC := appbrew.NewCommitBatchUseCase(txRunner)

	xmlBuilder := beerxml.NewBuilder()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo, txRunner)
	movementUC := usecase.NewMovementHistoryUseCase(movementRepo)
	recipeUC := usecase.NewRecipeUseCase(recipeRepo, ingredientRepo, txRunner, xmlBuilder, brewCfg)
	batchLogUC := usecase.NewBatchLogUseCase(batchRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BrewMe API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		IngredientUC: ingredientUC,
		MovementUC:   movementUC,
		RecipeUC:     recipeUC,
		BatchLogUC:   batchLogUC,
		ScaleUC:      scaleUC,
		CostUC:       costUC,
		CommitUC:     commitUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
