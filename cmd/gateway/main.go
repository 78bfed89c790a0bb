package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/steeplehq/gateway/pkg/config"
	"github.com/steeplehq/gateway/pkg/directory"
	"github.com/steeplehq/gateway/pkg/gateway"
	"github.com/steeplehq/gateway/pkg/hostname"
	"github.com/steeplehq/gateway/pkg/httpserver"
	"github.com/steeplehq/gateway/pkg/logger"
	"github.com/steeplehq/gateway/pkg/metrics"
	"github.com/steeplehq/gateway/pkg/ratelimit"
	"github.com/steeplehq/gateway/pkg/requestid"
	"github.com/steeplehq/gateway/pkg/tenant"
)

type appConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"gateway"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	UpstreamURL string `env:"UPSTREAM_URL,required"` // UpstreamURL is the application origin requests are forwarded to.
	RedisURL    string `env:"REDIS_URL"`             // RedisURL enables the shared rate-limit counter; empty selects the in-process store.
}

func main() {
	var (
		appCfg  appConfig
		httpCfg httpserver.Config
		rlCfg   ratelimit.Config
		dirCfg  directory.Config
		gwCfg   gateway.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&rlCfg)
	config.MustLoad(&dirCfg)
	config.MustLoad(&gwCfg)

	log := logger.New(
		logger.WithService(appCfg.ServiceName, appCfg.Environment),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			tenant.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	ctx := context.Background()

	upstream, err := url.Parse(appCfg.UpstreamURL)
	if err != nil {
		log.Error("invalid upstream url", slog.String("url", appCfg.UpstreamURL), slog.Any("error", err))
		os.Exit(1)
	}

	var store ratelimit.Store
	if appCfg.RedisURL != "" {
		opt, err := redis.ParseURL(appCfg.RedisURL)
		if err != nil {
			log.Error("invalid redis url", slog.Any("error", err))
			os.Exit(1)
		}
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Error("redis unreachable", slog.Any("error", err))
			os.Exit(1)
		}
		defer client.Close()
		store = ratelimit.NewRedisStore(client, "gw:rl:")
		log.Info("rate limiting on shared redis counter")
	} else {
		memStore := ratelimit.NewMemoryStore()
		defer memStore.Close()
		store = memStore
		log.Info("rate limiting on in-process counter; limits are per instance")
	}

	limiter, err := ratelimit.NewFixedWindow(store, rlCfg)
	if err != nil {
		log.Error("invalid rate limit config", slog.Any("error", err))
		os.Exit(1)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	dir := directory.NewCached(
		directory.NewHTTPDirectory(dirCfg.BaseURL, dirCfg.Timeout),
		dirCfg,
	)

	classifier := hostname.NewClassifier(gwCfg.MainDomains, gwCfg.DevHosts)
	orchestrator := tenant.NewOrchestrator(classifier, dir, log,
		tenant.WithEventHook(func(event string) {
			switch event {
			case "unrecognized_hostname":
				m.UnrecognizedHostsTotal.Inc()
			case "domain_lookup_failed":
				m.LookupFailuresTotal.WithLabelValues("domain").Inc()
			}
		}),
	)

	pipeline := gateway.New(gwCfg, limiter, orchestrator, dir,
		gateway.WithLogger(log),
		gateway.WithMetrics(m),
	)

	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "upstream unreachable", slog.Any("error", err))
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}

	router := chi.NewRouter()
	router.Use(requestid.Middleware)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/*", pipeline.Handler(proxy))

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
