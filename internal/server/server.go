package server

import (
	"context"
	"log/slog"
	"net/http"

	"injury-report-service/internal/config"
	"injury-report-service/internal/domain"
	"injury-report-service/internal/engine"
	"injury-report-service/internal/httpapi"
	"injury-report-service/internal/logging"
	"injury-report-service/internal/metrics"
	"injury-report-service/internal/normalize"
	"injury-report-service/internal/poller"
	"injury-report-service/internal/schedule"
	"injury-report-service/internal/schedule/shipp"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	engine        *engine.Engine
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default engine and poller wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	eng, err := BuildEngine(cfg, logger, recorder)
	if err != nil {
		return nil, err
	}

	plr := poller.New(eng, logger, cfg.PollInterval, cfg.RunTimeout)
	httpSrv := buildHTTPServer(cfg, plr, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		engine:        eng,
		poller:        plr,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// BuildEngine wires an aggregation engine from configuration. It is
// shared by serve mode and the one-shot CLI path.
func BuildEngine(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*engine.Engine, error) {
	srcCfg, err := config.LoadSources(cfg.SourcesFile)
	if err != nil {
		return nil, err
	}

	var sports []domain.Sport
	for _, raw := range cfg.Sports {
		if sport, ok := domain.ParseSport(raw); ok {
			sports = append(sports, sport)
		}
	}

	return engine.New(engine.Options{
		Sports:       sports,
		Sources:      buildSources(cfg, srcCfg, logger),
		Normalizer:   normalize.NewNormalizer(srcCfg.StatusAliases, logger),
		Schedule:     buildSchedule(cfg.Schedule),
		Store:        buildStore(cfg.State, logger),
		Metrics:      recorder,
		Logger:       logger,
		FetchTimeout: cfg.FetchTimeout,
	}), nil
}

// buildSchedule returns nil when no schedule API is configured; runs
// then skip game annotations entirely.
func buildSchedule(cfg config.ScheduleConfig) schedule.Provider {
	if cfg.BaseURL == "" {
		return nil
	}
	return shipp.NewClient(shipp.Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
}

func buildHTTPServer(cfg config.Config, plr *poller.Poller, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpapi.NewHandler(plr, logger)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	return newAPIServer(":"+cfg.Port, httpapi.LoggingMiddleware(logger, recorder, handler))
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
