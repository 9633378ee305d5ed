package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/ports"
	"github.com/jhoicas/fiyatvizyon-api/internal/application/usecase"
	infraai "github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/ai"
	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/excel"
	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/fiyatvizyon-api/internal/interfaces/http"
	"github.com/jhoicas/fiyatvizyon-api/pkg/config"
	"github.com/jhoicas/fiyatvizyon-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeStore, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStore()

	var appMetrics ports.Metrics = ports.NopMetrics{}
	var prom *metrics.Prometheus
	if cfg.Metrics.Enabled {
		prom = metrics.New()
		appMetrics = prom
	}

	ws := usecase.NewWorkspaceUseCase(repo, appMetrics, log)
	if err := ws.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar documento")
	}

	marginUC := usecase.NewMarginUseCase(ws)
	pricingUC := usecase.NewPricingUseCase(ws)
	exportUC := usecase.NewExportUseCase(pricingUC, excel.NewExporter(), infrapdf.NewMarotoPriceList())

	var suggester ports.MarginSuggester
	switch cfg.AI.Provider {
	case "anthropic":
		if cfg.AI.AnthropicAPIKey != "" {
			suggester = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
		}
	case "gemini":
		if cfg.AI.GeminiAPIKey != "" {
			suggester = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		}
	}
	if suggester == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("sugerencia de margen deshabilitada (sin API key)")
	}
	aiUC := usecase.NewAIUseCase(suggester, marginUC, appMetrics, log, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FiyatVizyon API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})
	if prom != nil {
		app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		DocumentUC:   usecase.NewDocumentUseCase(ws),
		IngredientUC: usecase.NewIngredientUseCase(ws),
		ProductUC:    usecase.NewProductUseCase(ws),
		CategoryUC:   usecase.NewCategoryUseCase(ws),
		MarginUC:     marginUC,
		PricingUC:    pricingUC,
		ExportUC:     exportUC,
		AIUC:         aiUC,
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
