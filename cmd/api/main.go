package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tapquote_backend/internal/adapters"
	"tapquote_backend/internal/catalog"
	apphttp "tapquote_backend/internal/http"
	"tapquote_backend/internal/http/router"
	"tapquote_backend/internal/pdf"
	"tapquote_backend/internal/quotes"
	"tapquote_backend/internal/quotes/domain"
	"tapquote_backend/platform/ai"
	"tapquote_backend/platform/config"
	"tapquote_backend/platform/logger"
	"tapquote_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Shared validator instance for dependency injection
	val := validator.New()

	llm, err := ai.NewModel(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize language model", "error", err)
		panic("failed to initialize language model: " + err.Error())
	}
	if llm == nil {
		log.Warn("LLM_API_KEY not configured; using rule-based quote drafting")
	} else {
		log.Info("language model initialized", "provider", cfg.GetLLMProvider(), "model", llm.Name())
	}

	documents := pdf.NewServiceFromConfig(cfg, cfg, cfg.GetTaxRate(), log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	catalogModule, err := catalog.NewModule(cfg, val, log)
	if err != nil {
		log.Error("failed to initialize catalog module", "error", err)
		panic("failed to initialize catalog module: " + err.Error())
	}

	// Anti-Corruption Layer: quotes only sees its own MaterialSearcher port
	materialSearcher := adapters.NewCatalogMaterialSearcher(catalogModule.Service())

	provider := ""
	if llm != nil {
		provider = cfg.GetLLMProvider()
	}
	quotesModule, err := quotes.NewModule(quotes.Dependencies{
		Searcher: materialSearcher,
		LLM:      llm,
		Provider: provider,
		Pricing: domain.PricingConfig{
			LaborRate:      cfg.GetLaborRate(),
			MaterialMarkup: cfg.GetMaterialMarkup(),
			TaxRate:        cfg.GetTaxRate(),
		},
		Timeout:   cfg.GetLLMTimeout(),
		Validator: val,
		Logger:    log,
	})
	if err != nil {
		log.Error("failed to initialize quotes module", "error", err)
		panic("failed to initialize quotes module: " + err.Error())
	}
	quotesModule.SetRenderer(documents)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Version: version,
		Modules: []apphttp.Module{
			catalogModule,
			quotesModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
