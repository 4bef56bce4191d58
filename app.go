package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stylecurator/internal/catalog"
	"stylecurator/internal/config"
	"stylecurator/internal/handlers"
	"stylecurator/internal/logger"
	"stylecurator/internal/middleware"
	"stylecurator/internal/recommend"
	"stylecurator/internal/services"
	"stylecurator/pkg/rabbitmq"
)

// appContext is everything a command needs, built once per invocation.
type appContext struct {
	viper   *viper.Viper
	cfg     *config.Config
	log     *logger.Logger
	catalog catalog.Catalog
	offline bool

	mq        *rabbitmq.Client
	publisher services.EventPublisher

	browse          *services.BrowseService
	detail          *services.DetailService
	trending        *services.TrendingService
	recommendations *services.RecommendationService
}

// newAppContext loads the configuration and wires the services. Commands
// that publish events pass withEvents; the broker is only dialled then.
func newAppContext(cmd *cobra.Command, flags *rootFlags, withEvents bool) (*appContext, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.HumanReadableLogs(),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &appContext{viper: v, cfg: cfg, log: log, offline: flags.offline}
	if flags.offline {
		a.catalog = catalog.NewMemoryCatalog(catalog.SeedProducts()...)
		log.Debug("using the built-in offline catalog")
	} else {
		a.catalog = catalog.NewHTTPClient(cfg.CatalogBaseURL, catalog.WithTimeout(cfg.CatalogTimeout))
	}

	if withEvents && cfg.EventsEnabled() {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.EventsExchange}, log)
		if err != nil {
			// events are optional; the front-end works without them
			log.Error(err, "interaction events disabled")
		} else {
			a.mq = mq
			a.publisher = mq
		}
	}

	var generator *recommend.Generator
	if flags.seed != 0 {
		generator = recommend.NewGenerator(recommend.WithSource(recommend.NewSeededSource(flags.seed)))
	}

	a.browse = services.NewBrowseService(a.catalog, log)
	a.detail = services.NewDetailService(a.catalog, a.publisher, log)
	a.trending = services.NewTrendingService(a.catalog, log)
	a.recommendations = services.NewRecommendationService(a.catalog, generator, a.publisher, log)
	return a, nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		"CATALOG_BASE_URL": "catalog-url",
		"LOG_LEVEL":        "log-level",
		"CONFIG_FILE":      "config",
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}
	return nil
}

// Close releases the broker connection, if any.
func (a *appContext) Close() {
	if a.mq == nil {
		return
	}
	if err := a.mq.Close(); err != nil {
		a.log.Error(err, "failed to close rabbitmq client")
	}
}

// newApp builds the HTTP front-end.
func newApp(a *appContext) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "StyleCurator",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(a.log))
	app.Use(cors.New(cors.Config{AllowOrigins: a.cfg.AllowOrigins}))

	app.Get("/health", func(c *fiber.Ctx) error {
		catalogSource := a.cfg.CatalogBaseURL
		if a.offline {
			catalogSource = "offline"
		}
		events := "disabled"
		if a.publisher != nil {
			events = "enabled"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"catalog": catalogSource,
			"events":  events,
		})
	})

	apiV1 := app.Group("/api/v1")
	handlers.NewProductHandler(a.browse, a.detail).RegisterRoutes(apiV1)
	handlers.NewTrendingHandler(a.trending).RegisterRoutes(apiV1)
	handlers.NewRecommendationHandler(a.recommendations).RegisterRoutes(apiV1)

	return app
}
