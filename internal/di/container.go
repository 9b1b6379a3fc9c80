package di

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/adapters/httpapi"
	"github.com/shieldsms/smishing-filter/internal/config"
	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/factory"
	"github.com/shieldsms/smishing-filter/internal/logging"
	"github.com/shieldsms/smishing-filter/internal/rules"
	"github.com/shieldsms/smishing-filter/internal/telemetry"
	"github.com/shieldsms/smishing-filter/internal/urlcheck"
	"github.com/shieldsms/smishing-filter/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register telemetry
	if err := container.Provide(func() *telemetry.Provider {
		return telemetry.NewProvider(prometheus.DefaultRegisterer)
	}); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register rule scorer with the configured threshold
	if err := container.Provide(func(cfg *config.Config) *rules.Scorer {
		weights := rules.DefaultWeights()
		if threshold := cfg.GetFloat64("scoring.threshold"); threshold > 0 {
			weights.Threshold = threshold
		}
		return rules.NewScorer(weights)
	}); err != nil {
		return nil, err
	}

	// Register URL analyzer
	if err := container.Provide(func(cfg *config.Config, tp *telemetry.Provider) *urlcheck.Analyzer {
		return urlcheck.NewAnalyzer(cfg.GetInt("urlcheck.cache_capacity"), tp)
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewStrategyFactory); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register strategy chain
	if err := container.Provide(func(f *factory.StrategyFactory) ([]core.TextClassifier, error) {
		return f.CreateStrategies()
	}); err != nil {
		return nil, err
	}

	// Register classifier service
	if err := container.Provide(func(
		strategies []core.TextClassifier,
		cache core.CacheRepository,
		logger *zap.Logger,
		tp *telemetry.Provider,
		f *factory.CacheFactory,
	) (*core.ClassifierService, error) {
		ttl, err := f.GetCacheTTL()
		if err != nil {
			return nil, err
		}
		return core.NewClassifierService(strategies, cache, logger, tp, f.IsCacheEnabled(), ttl), nil
	}); err != nil {
		return nil, err
	}

	// Register API handler
	if err := container.Provide(func(
		service *core.ClassifierService,
		scorer *rules.Scorer,
		analyzer *urlcheck.Analyzer,
		logger *zap.Logger,
		cfg *config.Config,
	) *httpapi.Handler {
		return httpapi.NewHandler(service, scorer, analyzer, logger, cfg.GetInt("server.max_text_length"))
	}); err != nil {
		return nil, err
	}

	// Register HTTP server
	if err := container.Provide(func(handler *httpapi.Handler, cfg *config.Config, logger *zap.Logger) (*httpapi.Server, error) {
		readTimeout, err := cfg.GetDuration("server.read_timeout")
		if err != nil {
			return nil, err
		}
		writeTimeout, err := cfg.GetDuration("server.write_timeout")
		if err != nil {
			return nil, err
		}
		idleTimeout, err := cfg.GetDuration("server.idle_timeout")
		if err != nil {
			return nil, err
		}
		return httpapi.NewServer(handler, httpapi.ServerConfig{
			ListenAddress: cfg.GetString("server.listen_address"),
			ReadTimeout:   readTimeout,
			WriteTimeout:  writeTimeout,
			IdleTimeout:   idleTimeout,
			Debug:         cfg.GetBool("server.debug"),
			AllowOrigins:  cfg.GetStringSlice("server.cors_allow_origins"),
		}, logger), nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}
