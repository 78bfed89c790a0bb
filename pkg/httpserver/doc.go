// Package httpserver wraps net/http.Server with graceful shutdown, signal
// handling, and env-driven configuration.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server exited", slog.Any("error", err))
//	}
package httpserver
